package catalog

import (
	"context"

	"gorm.io/gorm"

	redisc "github.com/adminportal/fichas-backend/internal/clients/redis"
	types "github.com/adminportal/fichas-backend/internal/domain"
	"github.com/adminportal/fichas-backend/internal/platform/logger"
)

type TematicaRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.Tematica, error)
}

type tematicaRepo struct {
	db    *gorm.DB
	log   *logger.Logger
	cache redisc.Cache
}

func NewTematicaRepo(db *gorm.DB, baseLog *logger.Logger, cache redisc.Cache) TematicaRepo {
	return &tematicaRepo{
		db:    db,
		log:   baseLog.With("repo", "TematicaRepo"),
		cache: cache,
	}
}

func (tr *tematicaRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Tematica, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	useCache := tx == nil && tr.cache != nil

	var results []*types.Tematica
	if useCache && tr.cache.GetJSON(ctx, "tematicas", &results) {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Order("nombre").
		Find(&results).Error; err != nil {
		return nil, err
	}
	if useCache {
		tr.cache.SetJSON(ctx, "tematicas", results)
	}
	return results, nil
}
