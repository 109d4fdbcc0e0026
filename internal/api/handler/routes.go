package handler

import (
	"net/http"

	"github.com/vfg2006/admin-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/admin-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/admin-dashboard-api/internal/usecases/listing"
	"github.com/vfg2006/admin-dashboard-api/internal/usecases/performance"
	"github.com/vfg2006/admin-dashboard-api/internal/usecases/transacting"
)

func Healthcheck(reporter StoreHealthReporter) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(reporter),
		},
	}
}

func Transactions(service transacting.TransactionService) []router.Route {
	return []router.Route{
		{
			Path:    "/client/transactions",
			Method:  http.MethodGet,
			Handler: ListTransactions(service),
		},
	}
}

func Performance(service performance.PerformanceService) []router.Route {
	return []router.Route{
		{
			Path:    "/management/performance/:id",
			Method:  http.MethodGet,
			Handler: GetUserPerformance(service),
		},
	}
}

func Listing(service listing.Lister) []router.Route {
	return []router.Route{
		{
			Path:    "/general/user/:id",
			Method:  http.MethodGet,
			Handler: GetUser(service),
		},
		{
			Path:    "/client/geography",
			Method:  http.MethodGet,
			Handler: GetGeography(service),
		},
		{
			Path:    "/client/customers",
			Method:  http.MethodGet,
			Handler: ListCustomers(service),
		},
		{
			Path:    "/management/admins",
			Method:  http.MethodGet,
			Handler: ListAdmins(service),
		},
		{
			Path:    "/sales/sales",
			Method:  http.MethodGet,
			Handler: GetSales(service),
		},
	}
}

func Dashboard(service dashboarding.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/general/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboardStats(service),
		},
	}
}
