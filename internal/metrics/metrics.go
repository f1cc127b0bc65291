package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "futanalise_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "futanalise_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	MovementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "futanalise_bankroll_movements_total",
			Help: "Total number of bankroll movements",
		},
		[]string{"direction"},
	)

	BankrollBalance = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "futanalise_bankroll_balance",
			Help: "Current bankroll balance",
		},
		[]string{"bankroll_id"},
	)

	BetsRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "futanalise_bets_registered_total",
			Help: "Total number of bets registered",
		},
	)

	SettlementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "futanalise_bet_settlements_total",
			Help: "Total number of bet settlements",
		},
		[]string{"result"},
	)

	RejectedSettlementsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "futanalise_bet_settlements_rejected_total",
			Help: "Settlement attempts rejected because the bet was already settled",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordMovement(direction string) {
	MovementsTotal.WithLabelValues(direction).Inc()
}

func SetBankrollBalance(bankrollID string, balance float64) {
	BankrollBalance.WithLabelValues(bankrollID).Set(balance)
}

func RecordBetRegistered() {
	BetsRegisteredTotal.Inc()
}

func RecordSettlement(result string) {
	SettlementsTotal.WithLabelValues(result).Inc()
}

func RecordRejectedSettlement() {
	RejectedSettlementsTotal.Inc()
}
