package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/adminportal/fichas-backend/internal/data/repos/catalog"
	types "github.com/adminportal/fichas-backend/internal/domain"
	"github.com/adminportal/fichas-backend/internal/platform/apierr"
	"github.com/adminportal/fichas-backend/internal/platform/logger"
)

type CatalogoService interface {
	Portales(ctx context.Context) ([]*types.Portal, error)
	Tematicas(ctx context.Context) ([]*types.Tematica, error)
}

type catalogoService struct {
	db           *gorm.DB
	log          *logger.Logger
	portalRepo   catalog.PortalRepo
	tematicaRepo catalog.TematicaRepo
}

func NewCatalogoService(db *gorm.DB, baseLog *logger.Logger, portalRepo catalog.PortalRepo, tematicaRepo catalog.TematicaRepo) CatalogoService {
	return &catalogoService{
		db:           db,
		log:          baseLog.With("service", "CatalogoService"),
		portalRepo:   portalRepo,
		tematicaRepo: tematicaRepo,
	}
}

func (cs *catalogoService) Portales(ctx context.Context) ([]*types.Portal, error) {
	portales, err := cs.portalRepo.List(ctx, nil)
	if err != nil {
		return nil, apierr.Store(err)
	}
	return portales, nil
}

func (cs *catalogoService) Tematicas(ctx context.Context) ([]*types.Tematica, error) {
	tematicas, err := cs.tematicaRepo.List(ctx, nil)
	if err != nil {
		return nil, apierr.Store(err)
	}
	return tematicas, nil
}
