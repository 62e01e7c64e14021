package app

import (
	"gorm.io/gorm"

	"github.com/adminportal/fichas-backend/internal/data/repos/catalog"
	"github.com/adminportal/fichas-backend/internal/data/repos/fichas"
	"github.com/adminportal/fichas-backend/internal/platform/logger"
)

type Repos struct {
	Portal    catalog.PortalRepo
	Tematica  catalog.TematicaRepo
	Provincia catalog.ProvinciaRepo
	Stats     fichas.StatsRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger, clients Clients) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Portal:    catalog.NewPortalRepo(db, log, clients.Cache),
		Tematica:  catalog.NewTematicaRepo(db, log, clients.Cache),
		Provincia: catalog.NewProvinciaRepo(db, log, clients.Cache),
		Stats:     fichas.NewStatsRepo(db, log),
	}
}
