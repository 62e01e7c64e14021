package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tematica is a subject-matter topic a ficha may be associated with.
type Tematica struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Clave  string    `gorm:"column:clave;not null;uniqueIndex" json:"clave"`
	Nombre string    `gorm:"column:nombre;not null" json:"nombre"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Tematica) TableName() string { return "tematica" }
