package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewCourierRequestsTotal returns a Prometheus counter vector for outbound courier API requests by operation and status code
func NewCourierRequestsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "courier_requests_total",
		Help: "Total number of outbound courier API requests",
	}, []string{"op", "code"})
}

// NewTokenExchangesTotal returns a Prometheus counter for courier OAuth token exchanges
func NewTokenExchangesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "courier_token_exchanges_total",
		Help: "Total number of courier OAuth client-credentials exchanges",
	})
}

// NewWaybillMergeFallbacksTotal returns a Prometheus counter for waybill merges that fell back to a single document
func NewWaybillMergeFallbacksTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "waybill_merge_fallbacks_total",
		Help: "Total number of waybill merges that fell back to the first fetched document",
	})
}

// NewWhatsAppSendFailuresTotal returns a Prometheus counter for failed WhatsApp notification sends
func NewWhatsAppSendFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "whatsapp_send_failures_total",
		Help: "Total number of failed WhatsApp notification sends",
	})
}
