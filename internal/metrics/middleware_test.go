package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_RecordsRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Post("/listings/{listingID}/buy", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/listings/{listingID}/buy", "201"))

	for _, id := range []string{"1", "2", "3"} {
		req := httptest.NewRequest(http.MethodPost, "/listings/"+id+"/buy", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/listings/{listingID}/buy", "201"))
	assert.Equal(t, 3.0, after-before)
}

func TestMiddleware_UnmatchedRoute(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, PathUnmatched, "404"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, PathUnmatched, "404"))
	assert.Equal(t, 1.0, after-before)
	assert.Equal(t, 0.0, testutil.ToFloat64(HTTPRequestsInFlight))
}
