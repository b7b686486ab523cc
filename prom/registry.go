package prom

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/staticvec"
)

// RegistryCollector is a prometheus.Collector reporting the regions of a
// staticvec.Registry each time it is scraped.
type RegistryCollector struct {
	reg *staticvec.Registry

	bytes *prometheus.Desc
	held  *prometheus.Desc
	usage *prometheus.Desc
	limit *prometheus.Desc
}

// NewRegistryCollector creates a collector for reg. Register it with
// prometheus.Registerer.Register.
func NewRegistryCollector(reg *staticvec.Registry) *RegistryCollector {
	labels := []string{"region", "id", "backing"}
	return &RegistryCollector{
		reg: reg,
		bytes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "region", "bytes"),
			"Storage size of the region.", labels, nil),
		held: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "region", "held"),
			"1 if the region has a live handle.", labels, nil),
		usage: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "registry", "memory_bytes"),
			"Bytes of region storage declared in the registry.", nil, nil),
		limit: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "registry", "memory_limit_bytes"),
			"Memory budget of the registry (0 if unlimited).", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *RegistryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.bytes
	ch <- c.held
	ch <- c.usage
	ch <- c.limit
}

// Collect implements prometheus.Collector.
func (c *RegistryCollector) Collect(ch chan<- prometheus.Metric) {
	for _, s := range c.reg.Slots() {
		labels := []string{s.Name, strconv.FormatUint(uint64(s.ID), 10), s.Backing.String()}
		held := 0.0
		if s.Held {
			held = 1
		}
		ch <- prometheus.MustNewConstMetric(c.bytes, prometheus.GaugeValue, float64(s.Bytes), labels...)
		ch <- prometheus.MustNewConstMetric(c.held, prometheus.GaugeValue, held, labels...)
	}
	ch <- prometheus.MustNewConstMetric(c.usage, prometheus.GaugeValue, float64(c.reg.MemoryUsage()))
	ch <- prometheus.MustNewConstMetric(c.limit, prometheus.GaugeValue, float64(c.reg.MemoryLimit()))
}

var _ prometheus.Collector = (*RegistryCollector)(nil)
