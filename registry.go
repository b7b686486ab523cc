package staticvec

import (
	"fmt"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/staticvec/internal/resource"
)

// Default is the registry regions are declared in unless WithRegistry is given.
var Default = NewRegistry(RegistryConfig{})

// RegistryConfig configures a Registry.
type RegistryConfig struct {
	// MemoryLimitBytes caps the total storage of all regions declared in the
	// registry. If 0, storage is only tracked.
	MemoryLimitBytes int64

	// Logger is the default logger of regions declared in the registry.
	// Defaults to NoopLogger.
	Logger *Logger

	// Metrics is the default collector of regions declared in the registry.
	// Defaults to NoopMetricsCollector.
	Metrics MetricsCollector
}

// SlotInfo describes a region declared in a registry.
type SlotInfo struct {
	ID       uint32
	Name     string
	Type     string // element type, as printed by %T
	Backing  Backing
	Cap      int
	ElemSize uintptr
	Bytes    int64
	Held     bool
}

// slot is the type-erased view of a *Region[T].
type slot interface {
	info() SlotInfo
	isHeld() bool
	setID(id uint32)
}

// Registry owns the names and memory budget of a set of regions.
//
// Registry methods take a lock and are meant for declaration and introspection.
// Acquire and Release never touch the registry.
type Registry struct {
	mu     sync.RWMutex
	slots  []slot // indexed by slot ID; nil for declarations that failed
	byName map[string]uint32

	rc      *resource.Controller
	logger  *Logger
	metrics MetricsCollector
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg RegistryConfig) *Registry {
	if cfg.Logger == nil {
		cfg.Logger = NoopLogger()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = NoopMetricsCollector{}
	}
	return &Registry{
		byName:  make(map[string]uint32),
		rc:      resource.NewController(resource.Config{MemoryLimitBytes: cfg.MemoryLimitBytes}),
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}
}

// add reserves the name and memory of s and assigns its ID.
func (reg *Registry) add(name string, bytes int64, s slot) (uint32, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, ok := reg.byName[name]; ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	if err := reg.rc.AcquireMemory(bytes); err != nil {
		return 0, fmt.Errorf("region %q needs %d bytes (limit %d, in use %d): %w",
			name, bytes, reg.rc.MemoryLimit(), reg.rc.MemoryUsage(), err)
	}

	id := uint32(len(reg.slots))
	s.setID(id)
	reg.slots = append(reg.slots, s)
	reg.byName[name] = id
	return id, nil
}

// remove rolls back add after a failed declaration. The ID is not reused.
func (reg *Registry) remove(id uint32, name string, bytes int64) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	reg.slots[id] = nil
	delete(reg.byName, name)
	reg.rc.ReleaseMemory(bytes)
}

// Lookup returns the slot declared under name.
func (reg *Registry) Lookup(name string) (SlotInfo, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	id, ok := reg.byName[name]
	if !ok {
		return SlotInfo{}, false
	}
	return reg.slots[id].info(), true
}

// Slots returns all declared slots in ID order.
func (reg *Registry) Slots() []SlotInfo {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	out := make([]SlotInfo, 0, len(reg.byName))
	for _, s := range reg.slots {
		if s != nil {
			out = append(out, s.info())
		}
	}
	return out
}

// Held returns the IDs of the slots that currently have a live handle.
// The result is a snapshot; holders may change right after it is taken.
func (reg *Registry) Held() *roaring.Bitmap {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	bm := roaring.New()
	for id, s := range reg.slots {
		if s != nil && s.isHeld() {
			bm.Add(uint32(id))
		}
	}
	return bm
}

// Len returns the number of declared regions.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.byName)
}

// MemoryUsage returns the bytes of region storage declared in the registry.
func (reg *Registry) MemoryUsage() int64 {
	return reg.rc.MemoryUsage()
}

// MemoryLimit returns the configured memory limit (0 if unlimited).
func (reg *Registry) MemoryLimit() int64 {
	return reg.rc.MemoryLimit()
}
