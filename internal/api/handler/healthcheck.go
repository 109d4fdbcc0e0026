package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/admin-dashboard-api/internal/scheduler"
)

// StoreHealthReporter expõe a última verificação do banco
type StoreHealthReporter interface {
	GetStatus() scheduler.StoreHealthStatus
}

type healthcheckResponse struct {
	Status string                       `json:"status"`
	Time   time.Time                    `json:"time"`
	Store  *scheduler.StoreHealthStatus `json:"store,omitempty"`
}

// HealthcheckHandler responde 200 enquanto o processo está vivo. O estado do
// banco é informativo, vindo do monitor agendado.
func HealthcheckHandler(reporter StoreHealthReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := healthcheckResponse{
			Status: "ok",
			Time:   time.Now(),
		}

		if reporter != nil {
			status := reporter.GetStatus()
			response.Store = &status
			if status.Checked && !status.Healthy {
				response.Status = "degraded"
			}
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}
