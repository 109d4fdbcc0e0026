package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/admin-dashboard-api/internal/config"
	"github.com/vfg2006/admin-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/admin-dashboard-api/pkg/apiErrors"
)

// GetDashboardStats aceita ?date=AAAA-MM-DD; sem ele vale a data padrão do serviço
func GetDashboardStats(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var date time.Time
		if raw := strings.TrimSpace(r.URL.Query().Get("date")); raw != "" {
			parsed, err := time.Parse(config.DateLayout, raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date deve estar no formato "+config.DateLayout, raw)
				return
			}
			date = parsed
		}

		stats, err := service.GetDashboardStats(r.Context(), date)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, stats)
	}
}
