// Package metrics expone los contadores Prometheus de la aplicación.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal peticiones HTTP por método, ruta y status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spazamanager_http_requests_total",
			Help: "Total de peticiones HTTP",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration duración de peticiones HTTP en segundos.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "spazamanager_http_request_duration_seconds",
			Help:    "Duración de peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// SalesRecorded ventas confirmadas en el ledger.
	SalesRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "spazamanager_sales_recorded_total",
			Help: "Total de ventas registradas",
		},
	)

	// SalesRejectedStock ventas rechazadas por stock insuficiente.
	SalesRejectedStock = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "spazamanager_sales_rejected_stock_total",
			Help: "Total de ventas rechazadas por stock insuficiente",
		},
	)

	// RestocksRecorded reposiciones confirmadas en el ledger.
	RestocksRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "spazamanager_restocks_recorded_total",
			Help: "Total de reposiciones registradas",
		},
	)
)
