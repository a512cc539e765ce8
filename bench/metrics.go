package bench

import "time"

import "github.com/prometheus/client_golang/prometheus"
import dto "github.com/prometheus/client_model/go"

func newmetrics() (*prometheus.Registry, *prometheus.HistogramVec) {
	registry := prometheus.NewRegistry()
	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "search_structure_duration_seconds",
		Help:    "Time taken to build and search each structure",
		Buckets: prometheus.ExponentialBuckets(0.000001, 4, 14),
	}, []string{"structure", "op"})
	registry.MustRegister(durations)
	return registry, durations
}

func (b *Bench) observe(structure, op string, d time.Duration) {
	b.durations.WithLabelValues(structure, op).Observe(d.Seconds())
}

// Stats gather the duration histograms recorded so far, keyed by
// "<structure>.<op>", each with sample count and total seconds.
func (b *Bench) Stats() (map[string]interface{}, error) {
	families, err := b.registry.Gather()
	if err != nil {
		return nil, err
	}
	stats := make(map[string]interface{})
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			key := labelkey(metric)
			histogram := metric.GetHistogram()
			stats[key] = map[string]interface{}{
				"samples": histogram.GetSampleCount(),
				"seconds": histogram.GetSampleSum(),
			}
		}
	}
	return stats, nil
}

func labelkey(metric *dto.Metric) string {
	var structure, op string
	for _, pair := range metric.GetLabel() {
		switch pair.GetName() {
		case "structure":
			structure = pair.GetValue()
		case "op":
			op = pair.GetValue()
		}
	}
	return structure + "." + op
}
