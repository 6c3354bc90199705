package metrics

import (
	"database/sql"
	"errors"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	queriesTotalName  = "shopping_list_queries_total"
	queryDurationName = "shopping_list_query_duration_seconds"
)

// QueryMetrics holds the prometheus collectors for store queries.
type QueryMetrics struct {
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewQueryMetrics creates the collectors and registers them with reg.
func NewQueryMetrics(reg prometheus.Registerer) (*QueryMetrics, error) {
	m := &QueryMetrics{
		queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: queriesTotalName,
				Help: "Total number of shopping_list queries by operation and outcome.",
			},
			[]string{"operation", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    queryDurationName,
				Help:    "Latency of shopping_list queries.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}

	if err := reg.Register(m.queries); err != nil {
		return nil, err
	}
	if err := reg.Register(m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

// Observe records one query of the given operation that started at start.
func (m *QueryMetrics) Observe(operation string, start time.Time, err error) {
	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	m.queries.WithLabelValues(operation, status(err)).Inc()
}

func status(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, sql.ErrNoRows):
		return "not_found"
	default:
		return "error"
	}
}

// QueryCount is one row of a query counter snapshot.
type QueryCount struct {
	Operation string
	Status    string
	Count     float64
}

// Snapshot reads the query counter back from g, sorted by operation then status.
func Snapshot(g prometheus.Gatherer) ([]QueryCount, error) {
	mfs, err := g.Gather()
	if err != nil {
		return nil, err
	}

	var out []QueryCount
	for _, mf := range mfs {
		if mf.GetName() != queriesTotalName {
			continue
		}
		for _, metric := range mf.GetMetric() {
			qc := QueryCount{Count: metric.GetCounter().GetValue()}
			for _, lp := range metric.GetLabel() {
				switch lp.GetName() {
				case "operation":
					qc.Operation = lp.GetValue()
				case "status":
					qc.Status = lp.GetValue()
				}
			}
			out = append(out, qc)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Operation != out[j].Operation {
			return out[i].Operation < out[j].Operation
		}
		return out[i].Status < out[j].Status
	})
	return out, nil
}
