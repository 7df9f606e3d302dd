package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestQuoteMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewQuoteMetrics(reg)

	metrics.ObserveDuration("quote", 150*time.Millisecond)
	metrics.AddValidItems(3)
	metrics.AddInvalidItems(2)
	metrics.IncRejection("PRODUCT_NOT_FOUND")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "quote_items_total", "outcome", "valid"); err != nil {
		t.Fatalf("fetch valid: %v", err)
	} else if got != 3 {
		t.Fatalf("expected valid=3, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "quote_items_total", "outcome", "invalid"); err != nil {
		t.Fatalf("fetch invalid: %v", err)
	} else if got != 2 {
		t.Fatalf("expected invalid=2, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "quote_rejections_total", "reason", "PRODUCT_NOT_FOUND"); err != nil {
		t.Fatalf("fetch rejection: %v", err)
	} else if got != 1 {
		t.Fatalf("expected rejection=1, got %f", got)
	}

	if got, err := fetchHistogramSum(mfs, "quote_duration_seconds", "operation", "quote"); err != nil {
		t.Fatalf("fetch duration: %v", err)
	} else if got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}
}

func TestQuoteMetricsNilRegistererIsNoop(t *testing.T) {
	metrics := NewQuoteMetrics(nil)
	metrics.ObserveDuration("quote", time.Second)
	metrics.AddValidItems(1)
	metrics.AddInvalidItems(1)
	metrics.IncRejection("QTY_OUT_OF_RANGE")
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetHistogram().GetSampleSum(), nil
		}
	}
	return 0, fmt.Errorf("histogram %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
