package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordsCounters(t *testing.T) {
	reg := NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPRequest("GET", "/mealplan", 200, 15*time.Millisecond)
	c.RecordAggregateWrite("mealplan", "create", nil)
	c.RecordAggregateWrite("mealplan", "create", errors.New("boom"))
	c.RecordReconcile(true, nil)
	c.RecordReconcile(false, nil)
	c.RecordRateLimited("/auth/login")

	assert.InDelta(t, 1, testutil.ToFloat64(c.httpRequests.WithLabelValues("GET", "/mealplan", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.aggregateWrites.WithLabelValues("mealplan", "create", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.aggregateWrites.WithLabelValues("mealplan", "create", "error")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.reconciles.WithLabelValues("corrected")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.reconciles.WithLabelValues("unchanged")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.rateLimited.WithLabelValues("/auth/login")), 0)
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := NewRegistry()
	c := NewCollector(reg)
	c.RecordReconcile(false, nil)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "planner_ledger_reconciles_total")
	assert.Contains(t, string(body), "go_goroutines")
}
