package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Ficha struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Titulo      string         `gorm:"column:titulo;not null" json:"titulo"`
	Descripcion string         `gorm:"column:descripcion" json:"descripcion"`
	Contenido   string         `gorm:"column:contenido" json:"contenido"`
	Ambito      Ambito         `gorm:"column:ambito;not null;index" json:"ambito"`
	CCAAID      *uuid.UUID     `gorm:"column:ccaa_id;type:uuid;index" json:"ccaa_id,omitempty"`
	CCAA        *CCAA          `gorm:"constraint:OnDelete:SET NULL;foreignKey:CCAAID;references:ID" json:"ccaa,omitempty"`
	ProvinciaID *uuid.UUID     `gorm:"column:provincia_id;type:uuid;index" json:"provincia_id,omitempty"`
	Provincia   *Provincia     `gorm:"constraint:OnDelete:SET NULL;foreignKey:ProvinciaID;references:ID" json:"provincia,omitempty"`
	Tramite     Tramite        `gorm:"column:tramite;not null;default:no" json:"tramite"`
	Complejidad Complejidad    `gorm:"column:complejidad;not null;default:media" json:"complejidad"`

	// Two independent highlight slots. Either may be empty; nothing in the
	// schema prevents both holding the same label.
	DestaquePrincipal  *Destaque `gorm:"column:destaque_principal" json:"destaque_principal,omitempty"`
	DestaqueSecundario *Destaque `gorm:"column:destaque_secundario" json:"destaque_secundario,omitempty"`

	CreadoPor uuid.UUID      `gorm:"column:creado_por;type:uuid;not null;index" json:"creado_por"`
	Metadatos datatypes.JSON `gorm:"column:metadatos;type:jsonb" json:"metadatos,omitempty"`

	Portales  []Portal   `gorm:"many2many:ficha_portal;" json:"portales,omitempty"`
	Tematicas []Tematica `gorm:"many2many:ficha_tematica;" json:"tematicas,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now();index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Ficha) TableName() string { return "ficha" }

type FichaPortal struct {
	FichaID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"ficha_id"`
	PortalID uuid.UUID `gorm:"type:uuid;primaryKey" json:"portal_id"`
}

func (FichaPortal) TableName() string { return "ficha_portal" }

type FichaTematica struct {
	FichaID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"ficha_id"`
	TematicaID uuid.UUID `gorm:"type:uuid;primaryKey" json:"tematica_id"`
}

func (FichaTematica) TableName() string { return "ficha_tematica" }
