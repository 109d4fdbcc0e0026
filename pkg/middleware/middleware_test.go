package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/admin-dashboard-api/pkg/log"
)

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := Cors([]string{"http://localhost:3000"})(next)

	tests := []struct {
		name           string
		method         string
		origin         string
		expectedStatus int
		expectedOrigin string
	}{
		{name: "Origem liberada", method: http.MethodGet, origin: "http://localhost:3000", expectedStatus: http.StatusTeapot, expectedOrigin: "http://localhost:3000"},
		{name: "Origem desconhecida", method: http.MethodGet, origin: "http://evil.example", expectedStatus: http.StatusTeapot},
		{name: "Preflight responde sem chamar o handler", method: http.MethodOptions, origin: "http://localhost:3000", expectedStatus: http.StatusOK, expectedOrigin: "http://localhost:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/client/transactions", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	log.SetupTestLogger()

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/general/user/1", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(CorrelationIDHeader))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sales/sales", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
