package metrics

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Sample is one flattened counter or gauge value
type Sample struct {
	Name  string
	Value float64
}

// Summarize gathers counters and gauges as name{label="value"} samples
// sorted by name. Histograms are reported by their sample count.
func Summarize(gatherer prometheus.Gatherer) ([]Sample, error) {
	families, err := gatherer.Gather()
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, family := range families {
		for _, m := range family.GetMetric() {
			name := family.GetName() + formatLabels(m.GetLabel())

			switch family.GetType() {
			case dto.MetricType_COUNTER:
				samples = append(samples, Sample{Name: name, Value: m.GetCounter().GetValue()})
			case dto.MetricType_GAUGE:
				samples = append(samples, Sample{Name: name, Value: m.GetGauge().GetValue()})
			case dto.MetricType_HISTOGRAM:
				samples = append(samples, Sample{
					Name:  name + "_count",
					Value: float64(m.GetHistogram().GetSampleCount()),
				})
			}
		}
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i].Name < samples[j].Name })
	return samples, nil
}

func formatLabels(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}

	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = l.GetName() + `="` + l.GetValue() + `"`
	}
	return "{" + strings.Join(parts, ",") + "}"
}
