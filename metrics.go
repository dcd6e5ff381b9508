package vlc

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records instance lifecycle and log routing counters. A nil
// *Metrics is valid and records nothing.
//
// Counter children are bound up front so the log callback path only does
// atomic increments.
type Metrics struct {
	logRecords [4]prometheus.Counter // indexed by severityIndex

	createdOK     prometheus.Counter
	createdFailed prometheus.Counter
	released      prometheus.Counter
	active        prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	logRecords := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vlc",
		Name:      "log_records_total",
		Help:      "Native log records forwarded to the host, by severity.",
	}, []string{"severity"})
	created := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vlc",
		Name:      "instance_created_total",
		Help:      "libvlc_new calls, by result.",
	}, []string{"result"})
	released := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vlc",
		Name:      "instance_released_total",
		Help:      "Native instances released.",
	})
	active := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "vlc",
		Name:      "instance_active",
		Help:      "1 while a valid native instance is held.",
	})

	for _, c := range []prometheus.Collector{logRecords, created, released, active} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}

	m := &Metrics{
		createdOK:     created.WithLabelValues("ok"),
		createdFailed: created.WithLabelValues("failed"),
		released:      released,
		active:        active,
	}
	for _, s := range []Severity{SeverityDebug, SeverityNotice, SeverityWarning, SeverityError} {
		m.logRecords[severityIndex(s)] = logRecords.WithLabelValues(s.String())
	}
	return m, nil
}

func severityIndex(s Severity) int {
	switch s {
	case SeverityDebug:
		return 0
	case SeverityNotice:
		return 1
	case SeverityWarning:
		return 2
	default:
		return 3
	}
}

func (m *Metrics) logRecord(s Severity) {
	if m == nil || !s.Known() {
		return
	}
	m.logRecords[severityIndex(s)].Inc()
}

func (m *Metrics) instanceCreated(ok bool) {
	if m == nil {
		return
	}
	if !ok {
		m.createdFailed.Inc()
		return
	}
	m.createdOK.Inc()
	m.active.Set(1)
}

func (m *Metrics) instanceReleased() {
	if m == nil {
		return
	}
	m.released.Inc()
	m.active.Set(0)
}
