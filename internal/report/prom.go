package report

import (
	"fmt"
	"io"
	"strconv"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"

	"github.com/julianknutsen/oddsight/internal/analysis"
)

const metricPrefix = "oddsight_"

// promSink writes the Prometheus text exposition format, suitable for the
// node_exporter textfile collector.
type promSink struct {
	w io.Writer
}

func (s *promSink) Write(r *analysis.Report) error {
	for _, mf := range families(r) {
		if _, err := expfmt.MetricFamilyToText(s.w, mf); err != nil {
			return fmt.Errorf("encoding %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// families builds the metric families for r in a fixed order.
func families(r *analysis.Report) []*dto.MetricFamily {
	a := r.Analysis
	info := gaugeFamily("info", "Analyzed hash.")
	info.Metric = append(info.Metric, gauge(1, "hash", a.Hash.String()))

	summary := []*dto.MetricFamily{
		single("entropy_bits", "Shannon entropy of the hash characters.", a.Entropy),
		single("variance", "Population variance of the hash digits.", a.Variance),
		single("score", "Weighted sampled-digit score.", float64(a.Score)),
		single("checksum", "Sum of all 128 hex digit values.", float64(a.Checksum)),
	}

	patterns := gaugeFamily("pattern", "Pattern flags, 1 when present.")
	a.Patterns.Each(func(name string, set bool) {
		v := 0.0
		if set {
			v = 1
		}
		patterns.Metric = append(patterns.Metric, gauge(v, "pattern", name))
	})

	confidence := gaugeFamily("confidence_percent", "Confidence per target.")
	delay := gaugeFamily("delay_seconds", "Suggested delay per target.")
	for _, sc := range r.Scores {
		label := strconv.Itoa(int(sc.Target))
		confidence.Metric = append(confidence.Metric, gauge(float64(sc.Confidence), "target", label))
		delay.Metric = append(delay.Metric, gauge(float64(sc.Delay), "target", label))
	}

	safety := gaugeFamily("safety_score", "Safety score per target.")
	risk := gaugeFamily("risk_adjusted_score", "Risk-adjusted score per target.")
	success := gaugeFamily("success_rate_percent", "Estimated success rate per target.")
	for _, rec := range r.Ranking {
		label := strconv.Itoa(int(rec.Target))
		safety.Metric = append(safety.Metric, gauge(float64(rec.SafetyScore), "target", label))
		risk.Metric = append(risk.Metric, gauge(rec.RiskAdjustedScore, "target", label))
		success.Metric = append(success.Metric, gauge(float64(rec.SuccessRate), "target", label))
	}

	out := append([]*dto.MetricFamily{info}, summary...)
	out = append(out, patterns, confidence, delay, safety, risk, success)
	if best, ok := r.Ranking.Best(); ok {
		out = append(out, single("recommended_target", "Multiplier of the top-ranked target.", float64(best.Target)))
	}
	return out
}

func gaugeFamily(name, help string) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name: proto.String(metricPrefix + name),
		Help: proto.String(help),
		Type: dto.MetricType_GAUGE.Enum(),
	}
}

func single(name, help string, v float64) *dto.MetricFamily {
	mf := gaugeFamily(name, help)
	mf.Metric = []*dto.Metric{gauge(v)}
	return mf
}

// gauge builds a gauge sample; labels are name/value pairs.
func gauge(v float64, labels ...string) *dto.Metric {
	m := &dto.Metric{Gauge: &dto.Gauge{Value: proto.Float64(v)}}
	for i := 0; i+1 < len(labels); i += 2 {
		m.Label = append(m.Label, &dto.LabelPair{
			Name:  proto.String(labels[i]),
			Value: proto.String(labels[i+1]),
		})
	}
	return m
}
