package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Tarsier/internal/dto"
)

// fallbackSessionID is the partition used when the client sends no
// X-Session-Id header. The id is an unauthenticated cache key, not a
// credential, so absence is not an error.
const fallbackSessionID = "anonymous"

const sessionHeader = "X-Session-Id"

func sessionID(ctx *gin.Context) string {
	sid := strings.TrimSpace(ctx.GetHeader(sessionHeader))
	if sid == "" {
		return fallbackSessionID
	}
	return sid
}

// HealthCheck godoc
// @Summary Health probe
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
