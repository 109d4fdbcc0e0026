package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/admin-dashboard-api/internal/usecases/listing"
	"github.com/vfg2006/admin-dashboard-api/pkg/apiErrors"
)

func GetUser(service listing.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
			return
		}

		user, err := service.GetUser(r.Context(), id)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}

func ListCustomers(service listing.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customers, err := service.ListCustomers(r.Context())
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, customers)
	}
}

func ListAdmins(service listing.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admins, err := service.ListAdmins(r.Context())
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, admins)
	}
}

// GetSales devolve o overall stat sem transformação
func GetSales(service listing.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stat, err := service.GetSales(r.Context())
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, stat)
	}
}

// GetGeography devolve a contagem de usuários por país
func GetGeography(service listing.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		geography, err := service.GetGeography(r.Context())
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, geography)
	}
}
