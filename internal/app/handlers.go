package app

import (
	"github.com/adminportal/fichas-backend/internal/http/handlers"
	"github.com/adminportal/fichas-backend/internal/platform/logger"
)

type Handlers struct {
	Health       *handlers.HealthHandler
	Estadisticas *handlers.EstadisticasHandler
	Catalogo     *handlers.CatalogoHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:       handlers.NewHealthHandler(),
		Estadisticas: handlers.NewEstadisticasHandler(log, services.Stats),
		Catalogo:     handlers.NewCatalogoHandler(log, services.Catalogo),
	}
}
