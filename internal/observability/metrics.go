// Package observability регистрирует метрики Prometheus приложения.
package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	usersRegisteredCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "propulse",
		Subsystem: "auth",
		Name:      "users_registered_total",
		Help:      "Number of successfully registered users.",
	})
	ordersCompletedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "propulse",
		Subsystem: "shop",
		Name:      "orders_completed_total",
		Help:      "Number of successfully completed (simulated) checkouts.",
	})
	activitiesStoredCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "propulse",
		Subsystem: "dashboard",
		Name:      "activities_stored_total",
		Help:      "Number of activity records stored.",
	})
)

func init() {
	prometheus.MustRegister(usersRegisteredCounter, ordersCompletedCounter, activitiesStoredCounter)
}

// RecordUserRegistered увеличивает счётчик регистраций.
func RecordUserRegistered() { usersRegisteredCounter.Inc() }

// RecordOrderCompleted увеличивает счётчик оформленных заказов.
func RecordOrderCompleted() { ordersCompletedCounter.Inc() }

// RecordActivityStored увеличивает счётчик сохранённых активностей.
func RecordActivityStored() { activitiesStoredCounter.Inc() }
