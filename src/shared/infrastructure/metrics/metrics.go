package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores de negocio expuestos en /metrics
var (
	SalesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_sales_created_total",
		Help: "Total de ventas creadas",
	})

	SalesVoided = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_sales_voided_total",
		Help: "Total de ventas anuladas",
	})

	SalesInsufficientStock = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_sales_insufficient_stock_total",
		Help: "Total de ventas rechazadas por stock insuficiente",
	})
)
