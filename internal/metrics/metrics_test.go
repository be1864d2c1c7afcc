package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordBet(t *testing.T) {
	before := testutil.ToFloat64(betTotal.WithLabelValues("words", "success"))
	beforeCents := testutil.ToFloat64(wageredCents.WithLabelValues("words"))

	RecordBet("words", "success", 250)
	RecordBet("words", "weird", 250)

	assert.Equal(t, before+1, testutil.ToFloat64(betTotal.WithLabelValues("words", "success")))
	assert.Equal(t, beforeCents+250, testutil.ToFloat64(wageredCents.WithLabelValues("words")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(betTotal.WithLabelValues("words", "fail")), 1.0)
}

func TestRecordSettlement(t *testing.T) {
	before := testutil.ToFloat64(payoutCents.WithLabelValues("blackjack"))

	RecordSettlement("blackjack", "WIN", 400, time.Now())
	RecordSettlement("blackjack", "LOSE", 0, time.Now())

	assert.Equal(t, before+400, testutil.ToFloat64(payoutCents.WithLabelValues("blackjack")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(settlementTotal.WithLabelValues("blackjack", "LOSE")), 1.0)
}

func TestRecordRefillAndReconcile(t *testing.T) {
	RecordRefill(false)
	assert.GreaterOrEqual(t, testutil.ToFloat64(refillTotal.WithLabelValues("cooldown")), 1.0)

	RecordReconcile("expire", errors.New("boom"))
	assert.GreaterOrEqual(t, testutil.ToFloat64(reconcileTotal.WithLabelValues("expire", "fail")), 1.0)

	SetStaleRounds(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(staleRounds))
}

func TestHTTPMiddleware(t *testing.T) {
	r := chi.NewRouter()
	r.Use(HTTPMiddleware)
	r.Get("/api/rounds/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpReqTotal.WithLabelValues("/api/rounds/{id}", "GET", "404"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/rounds/abc", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(httpReqTotal.WithLabelValues("/api/rounds/{id}", "GET", "404")))
}
