package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/admin-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/admin-dashboard-api/internal/usecases/listing"
	"github.com/vfg2006/admin-dashboard-api/internal/usecases/performance"
	"github.com/vfg2006/admin-dashboard-api/internal/usecases/transacting"
	"github.com/vfg2006/admin-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/admin-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeUsecaseError traduz os erros tipados dos casos de uso para a resposta
// padronizada; qualquer outro erro vira SRV_001
func writeUsecaseError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		txErr   *transacting.TransactionError
		perfErr *performance.PerformanceError
		listErr *listing.ListingError
		dashErr *dashboarding.DashboardError
	)

	switch {
	case errors.As(err, &txErr):
		apiErrors.WriteError(w, txErr.Code, txErr.Err.Error(), txErr.Details)
	case errors.As(err, &perfErr):
		apiErrors.WriteError(w, perfErr.Code, perfErr.Err.Error(), perfErr.Details)
	case errors.As(err, &listErr):
		apiErrors.WriteError(w, listErr.Code, listErr.Err.Error(), listErr.Details)
	case errors.As(err, &dashErr):
		apiErrors.WriteError(w, dashErr.Code, dashErr.Err.Error(), dashErr.Details)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro não mapeado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}
