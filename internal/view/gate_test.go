package view

import "testing"

func TestGateLatestTicketWins(t *testing.T) {
	var g Gate

	t1 := g.Next()
	if !g.Accept(t1) {
		t.Error("freshly issued ticket must be accepted")
	}

	// A second refresh starts before the first completes.
	t2 := g.Next()
	if g.Accept(t1) {
		t.Error("stale ticket accepted after a newer refresh was issued")
	}
	if !g.Accept(t2) {
		t.Error("latest ticket must be accepted")
	}

	// The slow first fetch finally lands: still rejected.
	if g.Accept(t1) {
		t.Error("out-of-order completion must be dropped")
	}
}

func TestGateZeroValue(t *testing.T) {
	var g Gate
	// Before any Next, ticket 0 matches the zero sequence; views call Next
	// before every fetch so this state carries no result.
	if !g.Accept(0) {
		t.Error("zero-value gate should accept the zero ticket")
	}
	g.Next()
	if g.Accept(0) {
		t.Error("zero ticket accepted after first refresh")
	}
}
