package app

import (
	"github.com/gin-gonic/gin"

	internalhttp "github.com/adminportal/fichas-backend/internal/http"
	"github.com/adminportal/fichas-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, handlers Handlers, mw Middleware) *gin.Engine {
	log.Info("Wiring router...")
	return internalhttp.NewRouter(internalhttp.RouterConfig{
		Log:            log,
		AuthMiddleware: mw.Auth,

		HealthHandler:       handlers.Health,
		EstadisticasHandler: handlers.Estadisticas,
		CatalogoHandler:     handlers.Catalogo,
	})
}
