// Package metrics defines and registers all custom Prometheus metrics for the
// commerce API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at package
// init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce"

// RequestErrorsTotal counts error responses produced by the central error
// handler, labelled by the wire error name (e.g. "notAuthenticated",
// "notFoundProduct", "InternalServerError").
var RequestErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_errors_total",
		Help:      "Total number of error responses, by error name.",
	},
	[]string{"name"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "invalid"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ResourcesCreatedTotal counts successfully created resources.
// Label:
//   - resource: "product", "category", or "user"
var ResourcesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resources_created_total",
		Help:      "Total number of resources created, by resource type.",
	},
	[]string{"resource"},
)
