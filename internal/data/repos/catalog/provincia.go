package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redisc "github.com/adminportal/fichas-backend/internal/clients/redis"
	types "github.com/adminportal/fichas-backend/internal/domain"
	"github.com/adminportal/fichas-backend/internal/platform/logger"
)

// ProvinciaRepo is the single-row provincia -> parent CCAA lookup the
// geographic scope expansion depends on.
type ProvinciaRepo interface {
	ParentCCAA(ctx context.Context, provinciaID uuid.UUID) (uuid.UUID, bool, error)
}

type provinciaRepo struct {
	db    *gorm.DB
	log   *logger.Logger
	cache redisc.Cache
	tx    *gorm.DB
}

func NewProvinciaRepo(db *gorm.DB, baseLog *logger.Logger, cache redisc.Cache) ProvinciaRepo {
	return &provinciaRepo{
		db:    db,
		log:   baseLog.With("repo", "ProvinciaRepo"),
		cache: cache,
	}
}

// NewProvinciaRepoTx returns a repo bound to the given transaction, cache
// bypassed.
// The ParentCCAA signature has no tx parameter because it doubles as the
// stats engine's RegionLookup.
func NewProvinciaRepoTx(tx *gorm.DB, baseLog *logger.Logger) ProvinciaRepo {
	return &provinciaRepo{
		db:  tx,
		log: baseLog.With("repo", "ProvinciaRepo"),
	}
}

func (pr *provinciaRepo) ParentCCAA(ctx context.Context, provinciaID uuid.UUID) (uuid.UUID, bool, error) {
	key := "provincia_ccaa:" + provinciaID.String()
	if pr.cache != nil {
		var cached uuid.UUID
		if pr.cache.GetJSON(ctx, key, &cached) && cached != uuid.Nil {
			return cached, true, nil
		}
	}

	var p types.Provincia
	err := pr.db.WithContext(ctx).
		Select("ccaa_id").
		Where("id = ?", provinciaID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}

	if pr.cache != nil {
		pr.cache.SetJSON(ctx, key, p.CCAAID)
	}
	return p.CCAAID, true, nil
}
