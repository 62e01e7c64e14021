package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/adminportal/fichas-backend/internal/http/response"
	"github.com/adminportal/fichas-backend/internal/platform/logger"
	"github.com/adminportal/fichas-backend/internal/services"
)

// filterParams are the query parameters the engine understands; anything
// else on the URL is ignored.
var filterParams = []string{
	"q",
	"ambito",
	"ccaa_id",
	"provincia_id",
	"creado_por",
	"tramite",
	"complejidad",
	"destaque",
	"anio",
	"mes",
	"desde",
	"hasta",
	"portal_ids",
	"granularidad",
}

type EstadisticasHandler struct {
	log          *logger.Logger
	statsService services.StatsService
}

func NewEstadisticasHandler(log *logger.Logger, statsService services.StatsService) *EstadisticasHandler {
	return &EstadisticasHandler{
		log:          log.With("handler", "EstadisticasHandler"),
		statsService: statsService,
	}
}

func collectParams(c *gin.Context) map[string]string {
	params := make(map[string]string, len(filterParams))
	for _, key := range filterParams {
		if v := c.Query(key); v != "" {
			params[key] = v
		}
	}
	return params
}

func (h *EstadisticasHandler) PorPortal(c *gin.Context) {
	res, err := h.statsService.PorPortal(c.Request.Context(), collectParams(c))
	if err != nil {
		h.log.Error("PorPortal failed", "error", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, res)
}

func (h *EstadisticasHandler) PorAmbito(c *gin.Context) {
	res, err := h.statsService.PorAmbito(c.Request.Context(), collectParams(c))
	if err != nil {
		h.log.Error("PorAmbito failed", "error", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, res)
}

func (h *EstadisticasHandler) PorTematica(c *gin.Context) {
	res, err := h.statsService.PorTematica(c.Request.Context(), collectParams(c))
	if err != nil {
		h.log.Error("PorTematica failed", "error", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, res)
}

func (h *EstadisticasHandler) PorTramite(c *gin.Context) {
	res, err := h.statsService.PorTramite(c.Request.Context(), collectParams(c))
	if err != nil {
		h.log.Error("PorTramite failed", "error", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, res)
}

func (h *EstadisticasHandler) SeriePorMes(c *gin.Context) {
	res, err := h.statsService.SeriePorMes(c.Request.Context(), collectParams(c))
	if err != nil {
		h.log.Error("SeriePorMes failed", "error", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, res)
}

func (h *EstadisticasHandler) SeriePorMesYPortal(c *gin.Context) {
	res, err := h.statsService.SeriePorMesYPortal(c.Request.Context(), collectParams(c))
	if err != nil {
		h.log.Error("SeriePorMesYPortal failed", "error", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, res)
}
