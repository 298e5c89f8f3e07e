package routerconfig

import (
	"sort"
	"sync"
)

// Operation labels a long-running router action.
type Operation string

const (
	OpConnect   Operation = "connect"
	OpApplyWiFi Operation = "apply-wifi"
)

// InFlight is the set of operations currently pending.
// Operations with different labels never block each other.
type InFlight struct {
	mu  sync.Mutex
	ops map[Operation]struct{}
}

// NewInFlight creates an empty set
func NewInFlight() *InFlight {
	return &InFlight{ops: make(map[Operation]struct{})}
}

// Begin adds op to the set. It returns false if op was already pending.
func (f *InFlight) Begin(op Operation) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ops == nil {
		f.ops = make(map[Operation]struct{})
	}
	if _, busy := f.ops[op]; busy {
		return false
	}
	f.ops[op] = struct{}{}
	return true
}

// End removes op from the set
func (f *InFlight) End(op Operation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.ops, op)
}

// Contains reports whether op is pending
func (f *InFlight) Contains(op Operation) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.ops[op]
	return ok
}

// List returns the pending operations in sorted order
func (f *InFlight) List() []Operation {
	f.mu.Lock()
	defer f.mu.Unlock()

	ops := make([]Operation, 0, len(f.ops))
	for op := range f.ops {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// Len returns the number of pending operations
func (f *InFlight) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ops)
}
