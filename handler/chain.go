package handler

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/philipp01105/logchain/core"
)

// node is one link of a Chain. It owns its successor exclusively.
type node struct {
	handler  Handler
	next     *node
	position int
	stats    *Stats
}

// Chain is a fixed, singly-linked sequence of handlers. A message
// entering the chain is offered to each handler in order until one
// accepts it.
type Chain struct {
	head   *node
	length int
	log    *zap.Logger
	closed bool
}

// ChainConfig holds configuration for a chain
type ChainConfig struct {
	// Logger receives a Debug record for every routing step (default: no-op)
	Logger *zap.Logger
}

// NewChain links handlers in the given order, the first becoming the
// head. Each severity may be handled by at most one handler. If the
// chain cannot be built, every non-nil handler passed in is closed.
func NewChain(cfg ChainConfig, handlers ...Handler) (*Chain, error) {
	if err := validate(handlers); err != nil {
		for _, h := range handlers {
			if h != nil {
				err = multierr.Append(err, h.Close())
			}
		}
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	// Link from the tail so each node is created owning its successor
	var next *node
	for i := len(handlers) - 1; i >= 0; i-- {
		next = &node{
			handler:  handlers[i],
			next:     next,
			position: i + 1,
			stats:    NewStats(),
		}
	}

	c := &Chain{head: next, length: len(handlers), log: cfg.Logger}
	c.log.Debug("chain assembled", zap.Stringers("order", c.Severities()))
	return c, nil
}

func validate(handlers []Handler) error {
	if len(handlers) == 0 {
		return ErrEmptyChain
	}
	seen := make(map[core.Severity]int, len(handlers))
	for i, h := range handlers {
		if h == nil {
			return fmt.Errorf("%w at position %d", ErrNilHandler, i+1)
		}
		if prev, ok := seen[h.Severity()]; ok {
			return fmt.Errorf("%w %s at positions %d and %d", ErrDuplicateHandler, h.Severity(), prev, i+1)
		}
		seen[h.Severity()] = i + 1
	}
	return nil
}

// Dispatch offers msg to the chain. It returns whatever the accepting
// handler's Handle returns, or core.ErrNoHandler if no handler accepts.
// Errors are returned unwrapped.
func (c *Chain) Dispatch(msg core.Message) error {
	_, err := c.DispatchHops(msg)
	return err
}

// DispatchHops is Dispatch that also reports how many times the message
// was delegated to a successor. For an accepting node at position p the
// result is p-1; when no node accepts it is Len()-1.
func (c *Chain) DispatchHops(msg core.Message) (int, error) {
	if c.closed {
		return 0, ErrHandlerClosed
	}
	return c.head.dispatch(c.log, msg, 0)
}

func (n *node) dispatch(log *zap.Logger, msg core.Message, hops int) (int, error) {
	if n.handler.Accepts(msg) {
		n.stats.IncrementAccepted()
		log.Debug("handled",
			zap.Stringer("severity", msg.Severity()),
			zap.Int("position", n.position),
			zap.Int("hops", hops))
		err := n.handler.Handle(msg)
		if err != nil {
			n.stats.IncrementFailed()
		}
		return hops, err
	}

	if n.next == nil {
		n.stats.IncrementUnmatched()
		log.Debug("no handler",
			zap.Stringer("severity", msg.Severity()),
			zap.Int("position", n.position),
			zap.Int("hops", hops))
		return hops, core.ErrNoHandler
	}

	n.stats.IncrementForwarded()
	log.Debug("forwarding",
		zap.Stringer("severity", msg.Severity()),
		zap.Int("position", n.position),
		zap.Int("hops", hops))
	return n.next.dispatch(log, msg, hops+1)
}

// Len returns the number of handlers in the chain
func (c *Chain) Len() int {
	return c.length
}

// Severities returns the severity of each node in chain order
func (c *Chain) Severities() []core.Severity {
	out := make([]core.Severity, 0, c.length)
	for n := c.head; n != nil; n = n.next {
		out = append(out, n.handler.Severity())
	}
	return out
}

// Stats returns a snapshot of every node's counters in chain order
func (c *Chain) Stats() []NodeSnapshot {
	out := make([]NodeSnapshot, 0, c.length)
	for n := c.head; n != nil; n = n.next {
		out = append(out, n.stats.snapshot(n.position, n.handler.Severity()))
	}
	return out
}

// Close releases every handler, head first. All close errors are
// returned combined. Calling Close more than once is a no-op.
func (c *Chain) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	err := c.head.close()
	if err != nil {
		c.log.Debug("chain closed with errors", zap.Error(err))
	}
	return err
}

// close releases the node's handler and then its successor
func (n *node) close() error {
	if n == nil {
		return nil
	}
	return multierr.Append(n.handler.Close(), n.next.close())
}
