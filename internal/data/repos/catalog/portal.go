package catalog

import (
	"context"

	"gorm.io/gorm"

	redisc "github.com/adminportal/fichas-backend/internal/clients/redis"
	types "github.com/adminportal/fichas-backend/internal/domain"
	"github.com/adminportal/fichas-backend/internal/platform/logger"
)

type PortalRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.Portal, error)
}

type portalRepo struct {
	db    *gorm.DB
	log   *logger.Logger
	cache redisc.Cache
}

func NewPortalRepo(db *gorm.DB, baseLog *logger.Logger, cache redisc.Cache) PortalRepo {
	return &portalRepo{
		db:    db,
		log:   baseLog.With("repo", "PortalRepo"),
		cache: cache,
	}
}

func (pr *portalRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Portal, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	// The caller passes a tx only in tests; cache is bypassed so the read
	// sees uncommitted fixtures.
	useCache := tx == nil && pr.cache != nil

	var results []*types.Portal
	if useCache && pr.cache.GetJSON(ctx, "portales", &results) {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Order("clave").
		Find(&results).Error; err != nil {
		return nil, err
	}
	if useCache {
		pr.cache.SetJSON(ctx, "portales", results)
	}
	return results, nil
}
