package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	//HTTP request duration with method, route and status labels
	RequestDuration *prometheus.HistogramVec
	//Login and registration attempts by outcome
	AuthAttempts *prometheus.CounterVec
	//Simulated purchases and key redemptions
	Purchases *prometheus.CounterVec
	//Notifications pushed, by type
	Notifications *prometheus.CounterVec
	//Support form submissions by outcome
	SupportSubmissions *prometheus.CounterVec
	//Devices with a live session state
	ActiveStates prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "rockstar_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds."},
			[]string{"method", "route", "status"},
		),
		AuthAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rockstar_auth_attempts_total",
			Help: "Login and registration attempts.",
		},
			[]string{"action", "status"},
		),
		Purchases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rockstar_purchases_total",
			Help: "Products granted to users.",
		},
			[]string{"source"},
		),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rockstar_notifications_total",
			Help: "Notifications queued for display.",
		},
			[]string{"type"},
		),
		SupportSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rockstar_support_submissions_total",
			Help: "Support form submissions.",
		},
			[]string{"status"},
		),
		ActiveStates: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rockstar_active_states",
			Help: "Device session states held in memory.",
		}),
	}
	reg.MustRegister(m.RequestDuration)
	reg.MustRegister(m.AuthAttempts)
	reg.MustRegister(m.Purchases)
	reg.MustRegister(m.Notifications)
	reg.MustRegister(m.SupportSubmissions)
	reg.MustRegister(m.ActiveStates)
	return m
}

func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// The helpers below are nil-safe so callers can run without metrics.

func (m *Metrics) AuthAttempt(action string, err error) {
	if m == nil {
		return
	}
	m.AuthAttempts.WithLabelValues(action, outcome(err)).Inc()
}

func (m *Metrics) Purchase(source string) {
	if m == nil {
		return
	}
	m.Purchases.WithLabelValues(source).Inc()
}

func (m *Metrics) Notification(kind string) {
	if m == nil {
		return
	}
	m.Notifications.WithLabelValues(kind).Inc()
}

func (m *Metrics) Support(err error) {
	if m == nil {
		return
	}
	m.SupportSubmissions.WithLabelValues(outcome(err)).Inc()
}

func (m *Metrics) StateOpened() {
	if m == nil {
		return
	}
	m.ActiveStates.Inc()
}

func (m *Metrics) StateClosed() {
	if m == nil {
		return
	}
	m.ActiveStates.Dec()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
