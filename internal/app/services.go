package app

import (
	"gorm.io/gorm"

	"github.com/adminportal/fichas-backend/internal/platform/logger"
	"github.com/adminportal/fichas-backend/internal/services"
	"github.com/adminportal/fichas-backend/internal/stats"
)

type Services struct {
	Auth     services.AuthService
	Stats    services.StatsService
	Catalogo services.CatalogoService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos) (Services, error) {
	log.Info("Wiring services...")

	priority, err := stats.LoadPortalPriority(cfg.PortalPriorityPath)
	if err != nil {
		log.Warn("portal priority config unreadable, using defaults", "path", cfg.PortalPriorityPath, "error", err)
		priority = stats.DefaultPortalPriority
	}

	return Services{
		Auth:     services.NewAuthService(log, cfg.JWTSecretKey),
		Stats:    services.NewStatsService(db, log, repos.Stats, repos.Portal, repos.Tematica, repos.Provincia, priority),
		Catalogo: services.NewCatalogoService(db, log, repos.Portal, repos.Tematica),
	}, nil
}
