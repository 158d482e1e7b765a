package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.AuthAttempt("login", nil)
	m.AuthAttempt("login", errors.New("wrong password"))
	m.AuthAttempt("login", errors.New("wrong password"))
	m.Purchase("order")
	m.Notification("success")
	m.StateOpened()
	m.StateOpened()
	m.StateClosed()
	m.ObserveRequest("GET", "/api/v1/state", 200, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthAttempts.WithLabelValues("login", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuthAttempts.WithLabelValues("login", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Purchases.WithLabelValues("order")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActiveStates))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.AuthAttempt("register", nil)
		m.Purchase("redeem")
		m.Notification("error")
		m.Support(nil)
		m.StateOpened()
		m.StateClosed()
	})
}
