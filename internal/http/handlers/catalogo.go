package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/adminportal/fichas-backend/internal/http/response"
	"github.com/adminportal/fichas-backend/internal/platform/logger"
	"github.com/adminportal/fichas-backend/internal/services"
)

type CatalogoHandler struct {
	log             *logger.Logger
	catalogoService services.CatalogoService
}

func NewCatalogoHandler(log *logger.Logger, catalogoService services.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{
		log:             log.With("handler", "CatalogoHandler"),
		catalogoService: catalogoService,
	}
}

func (h *CatalogoHandler) ListPortales(c *gin.Context) {
	portales, err := h.catalogoService.Portales(c.Request.Context())
	if err != nil {
		h.log.Error("ListPortales failed", "error", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"portales": portales})
}

func (h *CatalogoHandler) ListTematicas(c *gin.Context) {
	tematicas, err := h.catalogoService.Tematicas(c.Request.Context())
	if err != nil {
		h.log.Error("ListTematicas failed", "error", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"tematicas": tematicas})
}
