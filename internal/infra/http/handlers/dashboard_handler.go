package handlers

import (
	"net/http"

	"github.com/aurumprivate/aurum-leads/internal/usecase"
)

type DashboardHandler struct {
	dashboard *usecase.DashboardUseCase
}

func NewDashboardHandler(dashboard *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Handle trata GET /dashboard: agregados da base no momento da chamada.
func (h *DashboardHandler) Handle(w http.ResponseWriter, r *http.Request) {
	output, err := h.dashboard.Execute(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to aggregate dashboard")
		return
	}

	writeJSON(w, http.StatusOK, output)
}
