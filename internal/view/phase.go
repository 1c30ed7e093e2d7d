// Package view builds immutable per-page snapshots from backend responses.
// Every load or mutation produces a fresh snapshot that replaces the prior
// one wholesale; nothing is mutated in place. Every snapshot is in a
// terminal renderable phase, including after failures: a page may show an
// error or "no data", but it is never left loading.
package view

// Phase is the terminal render state of a snapshot.
type Phase int

const (
	PhaseLoading Phase = iota // initial placeholder before the first load
	PhaseReady                // data present
	PhaseEmpty                // loaded fine, nothing to show
	PhaseFailed               // backend error, message in Err
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseEmpty:
		return "empty"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}
