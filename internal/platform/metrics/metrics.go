package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	DetectedByGuard      = "guard"
	DetectedByConstraint = "constraint"
)

var (
	// AppointmentConflicts cuenta dobles reservas rechazadas, separadas por quién las detectó.
	// Si crece "constraint" hay carreras reales entre requests.
	AppointmentConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clinic_appointment_conflicts_total",
		Help: "Total number of rejected double bookings",
	}, []string{"detected_by"})

	AppointmentChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clinic_appointment_changes_total",
		Help: "Total number of appointment change events published",
	}, []string{"source"})

	NotificationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clinic_notifications_created_total",
		Help: "Total number of notifications persisted",
	})

	// NotifierFailures: stage = resolve|persist|push|panic
	NotifierFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clinic_notifier_failures_total",
		Help: "Total number of swallowed notifier failures by stage",
	}, []string{"stage"})

	RealtimePushes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clinic_realtime_pushes_total",
		Help: "Total number of real-time pushes by result",
	}, []string{"result"})

	RealtimeConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "clinic_realtime_connections",
		Help: "Current number of open websocket connections",
	})
)
