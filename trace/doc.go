// Package trace keeps a bounded history of region events in memory.
//
// A Recorder implements staticvec.MetricsCollector and retains the most recent
// events, dropping the oldest once full. It is meant for post-mortem inspection
// of a contended or leaking region, for example when a bounds violation
// panics:
//
//	rec := trace.NewRecorder(256)
//	r := staticvec.MustAlloc[uint32]("frames", 64, 0, staticvec.WithMetrics(rec))
//	...
//	for _, e := range rec.Events() {
//	    fmt.Println(e)
//	}
package trace
