// Package metrics expone contadores Prometheus del motor de custodia.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var productsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "trazabilidad_products_created_total",
	Help: "Total de productos creados en el ledger",
})

var transitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "trazabilidad_transitions_total",
	Help: "Total de transiciones de custodia por etapa y resultado",
}, []string{"transition", "outcome"})

// ProductCreated incrementa el contador de productos creados.
func ProductCreated() {
	productsCreated.Inc()
}

// TransitionObserved registra el resultado de una operación del motor
// (create, to_distributor, to_retailer) con outcome ok o error. Los rechazos
// de validación y las fallas de infraestructura cuentan igual: lo que importa
// operativamente es la tasa de operaciones que no mutaron el ledger.
func TransitionObserved(transition string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	transitions.WithLabelValues(transition, outcome).Inc()
}
