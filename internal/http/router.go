package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/adminportal/fichas-backend/internal/http/handlers"
	httpMW "github.com/adminportal/fichas-backend/internal/http/middleware"
	"github.com/adminportal/fichas-backend/internal/platform/logger"
	"github.com/adminportal/fichas-backend/internal/services"
)

type RouterConfig struct {
	Log            *logger.Logger
	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler       *httpH.HealthHandler
	EstadisticasHandler *httpH.EstadisticasHandler
	CatalogoHandler     *httpH.CatalogoHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("fichas-backend"))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	if cfg.AuthMiddleware != nil {
		api.Use(cfg.AuthMiddleware.RequireAuth())
	}

	// Estadisticas
	if cfg.EstadisticasHandler != nil {
		est := api.Group("/estadisticas")
		if cfg.AuthMiddleware != nil {
			est.Use(cfg.AuthMiddleware.RequirePermiso(services.RecursoEstadisticas, services.AccionRead))
		}
		est.GET("/portales", cfg.EstadisticasHandler.PorPortal)
		est.GET("/ambitos", cfg.EstadisticasHandler.PorAmbito)
		est.GET("/tematicas", cfg.EstadisticasHandler.PorTematica)
		est.GET("/tramites", cfg.EstadisticasHandler.PorTramite)
		est.GET("/series", cfg.EstadisticasHandler.SeriePorMes)
		est.GET("/series/portales", cfg.EstadisticasHandler.SeriePorMesYPortal)
	}

	// Catalogo
	if cfg.CatalogoHandler != nil {
		cat := api.Group("/catalogo")
		if cfg.AuthMiddleware != nil {
			cat.Use(cfg.AuthMiddleware.RequirePermiso(services.RecursoCatalogo, services.AccionRead))
		}
		cat.GET("/portales", cfg.CatalogoHandler.ListPortales)
		cat.GET("/tematicas", cfg.CatalogoHandler.ListTematicas)
	}

	return r
}
