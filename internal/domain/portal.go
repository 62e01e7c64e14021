package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Portal is a publishing channel a ficha may be associated with.
type Portal struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Clave  string    `gorm:"column:clave;not null;uniqueIndex" json:"clave"`
	Nombre string    `gorm:"column:nombre;not null" json:"nombre"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Portal) TableName() string { return "portal" }
