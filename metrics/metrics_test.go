package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMiddlewareUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMiddleware)
	r.Get("/api/admin/projects/{projectID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/admin/projects/{projectID}", "418"))
	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/projects/"+id, nil))
		require.Equal(t, http.StatusTeapot, rec.Code)
	}
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/admin/projects/{projectID}", "418"))
	assert.Equal(t, before+2, after)
}

func TestBusinessCounters(t *testing.T) {
	before := testutil.ToFloat64(inquirySubmissionsTotal.WithLabelValues("form"))
	RecordInquirySubmission("form")
	assert.Equal(t, before+1, testutil.ToFloat64(inquirySubmissionsTotal.WithLabelValues("form")))

	failures := testutil.ToFloat64(authAttemptsTotal.WithLabelValues("failure"))
	RecordAuthAttempt(false)
	assert.Equal(t, failures+1, testutil.ToFloat64(authAttemptsTotal.WithLabelValues("failure")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordNotificationFailure()
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "inquiry_notification_failures_total"))
}
