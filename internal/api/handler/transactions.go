package handler

import (
	"net/http"

	"github.com/vfg2006/admin-dashboard-api/internal/usecases/transacting"
)

// ListTransactions responde GET /client/transactions?page=&pageSize=&sort=&search=
func ListTransactions(service transacting.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := transacting.NormalizeRequest(r.URL.Query())
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		page, err := service.ListTransactions(r.Context(), *query)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, page)
	}
}
