package handler

import "sync/atomic"

// Stats tracks handler statistics
type Stats struct {
	// DroppedTotal counts lines dropped because the async queue was full
	DroppedTotal uint64
	// ProcessedTotal counts lines successfully written
	ProcessedTotal uint64
	// WriteErrorsTotal counts failed writes to the underlying writer
	WriteErrorsTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped atomically increments the dropped counter
func (s *Stats) IncrementDropped() {
	atomic.AddUint64(&s.DroppedTotal, 1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// IncrementWriteErrors atomically increments the write-error counter
func (s *Stats) IncrementWriteErrors() {
	atomic.AddUint64(&s.WriteErrorsTotal, 1)
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	Dropped     uint64
	Processed   uint64
	WriteErrors uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Dropped:     atomic.LoadUint64(&s.DroppedTotal),
		Processed:   atomic.LoadUint64(&s.ProcessedTotal),
		WriteErrors: atomic.LoadUint64(&s.WriteErrorsTotal),
	}
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.DroppedTotal, 0)
	atomic.StoreUint64(&s.ProcessedTotal, 0)
	atomic.StoreUint64(&s.WriteErrorsTotal, 0)
}
