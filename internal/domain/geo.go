package domain

import (
	"time"

	"github.com/google/uuid"
)

// CCAA is an administrative region (comunidad autonoma).
type CCAA struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Codigo string    `gorm:"column:codigo;not null;uniqueIndex" json:"codigo"`
	Nombre string    `gorm:"column:nombre;not null" json:"nombre"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (CCAA) TableName() string { return "ccaa" }

// Provincia belongs to exactly one CCAA.
type Provincia struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CCAAID uuid.UUID `gorm:"column:ccaa_id;type:uuid;not null;index" json:"ccaa_id"`
	CCAA   *CCAA     `gorm:"constraint:OnDelete:CASCADE;foreignKey:CCAAID;references:ID" json:"ccaa,omitempty"`
	Codigo string    `gorm:"column:codigo;not null;uniqueIndex" json:"codigo"`
	Nombre string    `gorm:"column:nombre;not null" json:"nombre"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Provincia) TableName() string { return "provincia" }
