package trace

import (
	"fmt"
	"sync"
	"time"

	"github.com/eapache/queue"

	"github.com/hupe1980/staticvec"
)

// DefaultCapacity is used when NewRecorder is given a non-positive capacity.
const DefaultCapacity = 1024

// Kind identifies the type of an Event.
type Kind uint8

const (
	KindAcquire Kind = iota
	KindLocked
	KindRelease
	KindLeak
	KindViolation
)

func (k Kind) String() string {
	switch k {
	case KindAcquire:
		return "acquire"
	case KindLocked:
		return "locked"
	case KindRelease:
		return "release"
	case KindLeak:
		return "leak"
	case KindViolation:
		return "violation"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Event is one recorded region event.
type Event struct {
	Seq    uint64
	Time   time.Time
	Kind   Kind
	Region string
	Op     string        // violations only
	Err    error         // locked error or violation kind
	Held   time.Duration // releases only
}

func (e Event) String() string {
	s := fmt.Sprintf("#%d %s %s %q", e.Seq, e.Time.Format(time.RFC3339Nano), e.Kind, e.Region)
	switch e.Kind {
	case KindRelease:
		s += fmt.Sprintf(" held=%s", e.Held)
	case KindViolation:
		s += fmt.Sprintf(" op=%s err=%v", e.Op, e.Err)
	case KindLocked:
		s += fmt.Sprintf(" err=%v", e.Err)
	}
	return s
}

// Recorder is a staticvec.MetricsCollector keeping the last N events.
type Recorder struct {
	mu       sync.Mutex
	q        *queue.Queue
	capacity int
	seq      uint64
	dropped  uint64
	now      func() time.Time
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock replaces time.Now as the event time source.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		r.now = now
	}
}

// NewRecorder creates a Recorder retaining up to capacity events.
func NewRecorder(capacity int, opts ...Option) *Recorder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	r := &Recorder{
		q:        queue.New(),
		capacity: capacity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Recorder) record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	e.Seq = r.seq
	e.Time = r.now()

	if r.q.Length() == r.capacity {
		r.q.Remove()
		r.dropped++
	}
	r.q.Add(e)
}

// RecordAcquire implements staticvec.MetricsCollector.
func (r *Recorder) RecordAcquire(region string, err error) {
	if err != nil {
		r.record(Event{Kind: KindLocked, Region: region, Err: err})
		return
	}
	r.record(Event{Kind: KindAcquire, Region: region})
}

// RecordRelease implements staticvec.MetricsCollector.
func (r *Recorder) RecordRelease(region string, held time.Duration) {
	r.record(Event{Kind: KindRelease, Region: region, Held: held})
}

// RecordLeak implements staticvec.MetricsCollector.
func (r *Recorder) RecordLeak(region string) {
	r.record(Event{Kind: KindLeak, Region: region})
}

// RecordViolation implements staticvec.MetricsCollector.
func (r *Recorder) RecordViolation(region, op string, kind error) {
	r.record(Event{Kind: KindViolation, Region: region, Op: op, Err: kind})
}

// Events returns the retained events, oldest first.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, r.q.Length())
	for i := range out {
		out[i] = r.q.Get(i).(Event)
	}
	return out
}

// Last returns the most recent event, if any.
func (r *Recorder) Last() (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.q.Length()
	if n == 0 {
		return Event{}, false
	}
	return r.q.Get(n - 1).(Event), true
}

// Len returns the number of retained events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.q.Length()
}

// Dropped returns how many events were evicted to make room.
func (r *Recorder) Dropped() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

// Reset discards all retained events. Sequence numbers keep increasing.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.q = queue.New()
	r.dropped = 0
}

var _ staticvec.MetricsCollector = (*Recorder)(nil)
