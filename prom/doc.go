// Package prom exports staticvec metrics to Prometheus.
//
// Collector implements staticvec.MetricsCollector:
//
//	c := prom.NewCollector(prometheus.DefaultRegisterer)
//	reg := staticvec.NewRegistry(staticvec.RegistryConfig{Metrics: c})
//
// RegistryCollector exports the state of a staticvec.Registry (declared bytes,
// held regions) at scrape time.
//
// Both take locks inside the Prometheus client and are not meant for
// interrupt-like contexts.
package prom
