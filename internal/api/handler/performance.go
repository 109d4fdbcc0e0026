package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/admin-dashboard-api/internal/usecases/performance"
	"github.com/vfg2006/admin-dashboard-api/pkg/apiErrors"
)

// GetUserPerformance responde GET /management/performance/:id
func GetUserPerformance(service performance.PerformanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
			return
		}

		result, err := service.GetUserPerformance(r.Context(), id)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}
