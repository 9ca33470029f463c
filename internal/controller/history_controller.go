package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tarsier/internal/service"
)

type HistoryController struct {
	historySvc service.HistoryService
}

func NewHistoryController(historySvc service.HistoryService) *HistoryController {
	return &HistoryController{historySvc: historySvc}
}

// GetHistory godoc
// @Summary List the session's saved answers
// @Description Returns the session's unexpired answer records, most recent first. Unknown or fully-expired sessions yield an empty array, never an error.
// @Tags History
// @Produce json
// @Param X-Session-Id header string false "Opaque session identifier"
// @Success 200 {array} dto.HistoryEntryResponse
// @Router /api/history [get]
func (c *HistoryController) GetHistory(ctx *gin.Context) {
	entries := c.historySvc.List(ctx.Request.Context(), sessionID(ctx))
	ctx.JSON(http.StatusOK, entries)
}
