package view

import "sync/atomic"

// Gate orders overlapping refreshes of a single view. Each fetch takes a
// ticket from Next before starting; when it completes, the result is
// applied only if Accept(ticket) still holds. A slow response from an
// older refresh can therefore never overwrite the result of a newer one,
// regardless of completion order.
type Gate struct {
	seq atomic.Uint64
}

// Next issues a new ticket, invalidating all previously issued ones.
func (g *Gate) Next() uint64 {
	return g.seq.Add(1)
}

// Accept reports whether ticket is still the most recently issued one.
func (g *Gate) Accept(ticket uint64) bool {
	return g.seq.Load() == ticket
}
