package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/adminportal/fichas-backend/internal/domain"
)

func SeedCCAA(tb testing.TB, ctx context.Context, tx *gorm.DB, codigo, nombre string) *types.CCAA {
	tb.Helper()
	c := &types.CCAA{
		ID:     uuid.New(),
		Codigo: codigo,
		Nombre: nombre,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed ccaa: %v", err)
	}
	return c
}

func SeedProvincia(tb testing.TB, ctx context.Context, tx *gorm.DB, ccaaID uuid.UUID, codigo, nombre string) *types.Provincia {
	tb.Helper()
	p := &types.Provincia{
		ID:     uuid.New(),
		CCAAID: ccaaID,
		Codigo: codigo,
		Nombre: nombre,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed provincia: %v", err)
	}
	return p
}

func SeedPortal(tb testing.TB, ctx context.Context, tx *gorm.DB, clave, nombre string) *types.Portal {
	tb.Helper()
	p := &types.Portal{
		ID:     uuid.New(),
		Clave:  clave,
		Nombre: nombre,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed portal: %v", err)
	}
	return p
}

func SeedTematica(tb testing.TB, ctx context.Context, tx *gorm.DB, clave, nombre string) *types.Tematica {
	tb.Helper()
	t := &types.Tematica{
		ID:     uuid.New(),
		Clave:  clave,
		Nombre: nombre,
	}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed tematica: %v", err)
	}
	return t
}

// FichaSeed drives SeedFicha; zero values get sensible defaults.
type FichaSeed struct {
	Titulo             string
	Descripcion        string
	Contenido          string
	Ambito             types.Ambito
	CCAAID             *uuid.UUID
	ProvinciaID        *uuid.UUID
	Tramite            types.Tramite
	Complejidad        types.Complejidad
	DestaquePrincipal  *types.Destaque
	DestaqueSecundario *types.Destaque
	CreadoPor          uuid.UUID
	CreatedAt          time.Time
}

func SeedFicha(tb testing.TB, ctx context.Context, tx *gorm.DB, seed FichaSeed) *types.Ficha {
	tb.Helper()
	if seed.Titulo == "" {
		seed.Titulo = "ficha"
	}
	if seed.Ambito == "" {
		seed.Ambito = types.AmbitoEstado
	}
	if seed.Tramite == "" {
		seed.Tramite = types.TramiteNo
	}
	if seed.Complejidad == "" {
		seed.Complejidad = types.ComplejidadMedia
	}
	if seed.CreadoPor == uuid.Nil {
		seed.CreadoPor = uuid.New()
	}
	if seed.CreatedAt.IsZero() {
		seed.CreatedAt = time.Now().UTC()
	}
	f := &types.Ficha{
		ID:                 uuid.New(),
		Titulo:             seed.Titulo,
		Descripcion:        seed.Descripcion,
		Contenido:          seed.Contenido,
		Ambito:             seed.Ambito,
		CCAAID:             seed.CCAAID,
		ProvinciaID:        seed.ProvinciaID,
		Tramite:            seed.Tramite,
		Complejidad:        seed.Complejidad,
		DestaquePrincipal:  seed.DestaquePrincipal,
		DestaqueSecundario: seed.DestaqueSecundario,
		CreadoPor:          seed.CreadoPor,
		CreatedAt:          seed.CreatedAt,
		UpdatedAt:          seed.CreatedAt,
	}
	if err := tx.WithContext(ctx).Create(f).Error; err != nil {
		tb.Fatalf("seed ficha: %v", err)
	}
	return f
}

func LinkPortal(tb testing.TB, ctx context.Context, tx *gorm.DB, fichaID, portalID uuid.UUID) {
	tb.Helper()
	link := &types.FichaPortal{FichaID: fichaID, PortalID: portalID}
	if err := tx.WithContext(ctx).Create(link).Error; err != nil {
		tb.Fatalf("link ficha-portal: %v", err)
	}
}

func LinkTematica(tb testing.TB, ctx context.Context, tx *gorm.DB, fichaID, tematicaID uuid.UUID) {
	tb.Helper()
	link := &types.FichaTematica{FichaID: fichaID, TematicaID: tematicaID}
	if err := tx.WithContext(ctx).Create(link).Error; err != nil {
		tb.Fatalf("link ficha-tematica: %v", err)
	}
}

func Ptr[T any](v T) *T { return &v }
