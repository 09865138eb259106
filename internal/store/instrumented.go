package store

import (
	"sync/atomic"
	"time"

	"github.com/heysubinoy/notedb/pkg/kv"
)

// Op identifies a store operation for metrics.
type Op int

const (
	OpInsert Op = iota
	OpUpdate
	OpRemove
	OpFind
	OpList
	numOps
)

var opNames = [numOps]string{"insert", "update", "remove", "find", "list"}

func (o Op) String() string {
	if o < 0 || o >= numOps {
		return "unknown"
	}
	return opNames[o]
}

type opStats struct {
	count atomic.Uint64
	// cumulative latency in nanoseconds
	latencyNs atomic.Uint64
}

// InstrumentedStore wraps any kv.Store implementation with timing metrics.
type InstrumentedStore struct {
	store kv.Store
	stats [numOps]opStats
}

// Compile-time check to ensure InstrumentedStore implements kv.Store.
var _ kv.Store = (*InstrumentedStore)(nil)

// NewInstrumentedStore wraps a store with instrumentation.
func NewInstrumentedStore(store kv.Store) *InstrumentedStore {
	return &InstrumentedStore{store: store}
}

func (s *InstrumentedStore) record(op Op, start time.Time) {
	st := &s.stats[op]
	st.count.Add(1)
	st.latencyNs.Add(uint64(time.Since(start).Nanoseconds()))
}

func (s *InstrumentedStore) Insert(key, value string) {
	defer s.record(OpInsert, time.Now())
	s.store.Insert(key, value)
}

func (s *InstrumentedStore) Update(key, value string) bool {
	defer s.record(OpUpdate, time.Now())
	return s.store.Update(key, value)
}

func (s *InstrumentedStore) Remove(key string) bool {
	defer s.record(OpRemove, time.Now())
	return s.store.Remove(key)
}

func (s *InstrumentedStore) Find(substr string) []kv.Entry {
	defer s.record(OpFind, time.Now())
	return s.store.Find(substr)
}

func (s *InstrumentedStore) List() []kv.Entry {
	defer s.record(OpList, time.Now())
	return s.store.List()
}

// Len is not instrumented.
func (s *InstrumentedStore) Len() int {
	return s.store.Len()
}

// GetMetrics returns a snapshot of current metrics, one element per Op.
// Operations that were never called are left out.
func (s *InstrumentedStore) GetMetrics() []OpMetrics {
	var res []OpMetrics
	for op := Op(0); op < numOps; op++ {
		count := s.stats[op].count.Load()
		if count == 0 {
			continue
		}
		res = append(res, OpMetrics{
			Op:         op,
			Count:      count,
			AvgLatency: time.Duration(s.stats[op].latencyNs.Load() / count),
		})
	}
	return res
}

// OpMetrics is a point-in-time view of one operation's metrics.
type OpMetrics struct {
	Op         Op
	Count      uint64
	AvgLatency time.Duration
}
