package handler

import (
	"sync/atomic"

	"github.com/philipp01105/logchain/core"
)

// Stats tracks the routing decisions of one chain node
type Stats struct {
	// AcceptedTotal counts messages the node's handler accepted
	AcceptedTotal uint64
	// ForwardedTotal counts messages passed on to the successor
	ForwardedTotal uint64
	// UnmatchedTotal counts messages that ended the chain at this node
	UnmatchedTotal uint64
	// FailedTotal counts accepted messages whose Handle returned an error
	FailedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementAccepted atomically increments the accepted counter
func (s *Stats) IncrementAccepted() {
	atomic.AddUint64(&s.AcceptedTotal, 1)
}

// IncrementForwarded atomically increments the forwarded counter
func (s *Stats) IncrementForwarded() {
	atomic.AddUint64(&s.ForwardedTotal, 1)
}

// IncrementUnmatched atomically increments the unmatched counter
func (s *Stats) IncrementUnmatched() {
	atomic.AddUint64(&s.UnmatchedTotal, 1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.AcceptedTotal, 0)
	atomic.StoreUint64(&s.ForwardedTotal, 0)
	atomic.StoreUint64(&s.UnmatchedTotal, 0)
	atomic.StoreUint64(&s.FailedTotal, 0)
}

// NodeSnapshot is a point-in-time copy of one node's counters
type NodeSnapshot struct {
	Position  int
	Severity  core.Severity
	Accepted  uint64
	Forwarded uint64
	Unmatched uint64
	Failed    uint64
}

// snapshot returns a copy of the counters for the node at position
func (s *Stats) snapshot(position int, severity core.Severity) NodeSnapshot {
	return NodeSnapshot{
		Position:  position,
		Severity:  severity,
		Accepted:  atomic.LoadUint64(&s.AcceptedTotal),
		Forwarded: atomic.LoadUint64(&s.ForwardedTotal),
		Unmatched: atomic.LoadUint64(&s.UnmatchedTotal),
		Failed:    atomic.LoadUint64(&s.FailedTotal),
	}
}
