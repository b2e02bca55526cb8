package metrics

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/samber/lo"
)

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Registry holds the application metrics. Nothing is served over HTTP; the
// shell reads it through Snapshot.
var Registry = prometheus.NewRegistry()

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobsearch_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	ActionsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobsearch_actions_total",
			Help: "Total number of form actions by outcome.",
		},
		[]string{"action", "outcome"},
	)
	ReloadDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "jobsearch_list_reload_duration_seconds",
			Help:       "Duration of list reloads in seconds.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"list"},
	)
)

func init() {
	Registry.MustRegister(ErrorsCounter)
	Registry.MustRegister(ActionsCounter)
	Registry.MustRegister(ReloadDuration)
}

type Sample struct {
	Name   string
	Labels string
	Value  float64
}

// Snapshot flattens the registry into one sample per series. Summaries are
// reported by their observation count.
func Snapshot() ([]Sample, error) {
	families, err := Registry.Gather()
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := lo.Map(metric.GetLabel(), func(label *dto.LabelPair, _ int) string {
				return label.GetName() + "=" + label.GetValue()
			})
			sort.Strings(labels)

			sample := Sample{Name: family.GetName(), Labels: strings.Join(labels, ",")}
			switch family.GetType() {
			case dto.MetricType_COUNTER:
				sample.Value = metric.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				sample.Value = metric.GetGauge().GetValue()
			case dto.MetricType_SUMMARY:
				sample.Value = float64(metric.GetSummary().GetSampleCount())
			default:
				continue
			}
			samples = append(samples, sample)
		}
	}
	return samples, nil
}
