package http

import (
	"agenda-bff/pkg/response"

	"github.com/gin-gonic/gin"
)

// Summary - Dashboard counters
// @Summary Dashboard summary
// @Description Totals of cadastros and agendamentos. "atividade" is null when the backend cannot provide activity counts.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} summaryResp
// @Failure 502 {object} response.Resp
// @Router /api/v1/dashboard [get]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Summary(ctx)
	if err != nil {
		h.l.Errorf(ctx, "dashboard.delivery.http.Summary: usecase Summary failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSummaryResp(s))
}
