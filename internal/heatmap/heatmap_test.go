package heatmap

import (
	"math"
	"strings"
	"testing"

	"hotboard/internal/board"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMustSchemePresets(t *testing.T) {
	cases := []struct {
		name  string
		color Metric
		size  Metric
	}{
		{"change", MetricChange, MetricFlow},
		{"flow", MetricFlow, MetricChange},
		{"composite", MetricComposite, MetricFlow},
	}
	for _, c := range cases {
		s := MustScheme(c.name)
		if s.ColorMetric != c.color || s.SizeMetric != c.size {
			t.Errorf("MustScheme(%q) = {color:%v size:%v}, want {color:%v size:%v}",
				c.name, s.ColorMetric, s.SizeMetric, c.color, c.size)
		}
	}
}

func TestMustSchemeUnknownPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustScheme(\"volume\") did not panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "volume") {
			t.Errorf("panic value %v does not name the bad scheme", r)
		}
	}()
	MustScheme("volume")
}

func TestSchemeNamesResolvable(t *testing.T) {
	names := SchemeNames()
	if len(names) != 3 {
		t.Fatalf("len(SchemeNames()) = %d, want 3", len(names))
	}
	for _, n := range names {
		if got := MustScheme(n); got.Name != n {
			t.Errorf("MustScheme(%q).Name = %q", n, got.Name)
		}
	}
}

func TestBuildFlowScheme(t *testing.T) {
	records := []board.Record{
		{BoardCode: "BK1001", BoardName: "人工智能", NetInflow: board.Ptr(5e8), PctChg: board.Ptr(2.1)},
		{BoardCode: "BK1002", BoardName: "房地产", NetInflow: board.Ptr(-3e8), PctChg: board.Ptr(-1.4)},
	}
	s := Build(records, MustScheme("flow"), 0.5)

	if len(s.Points) != 2 {
		t.Fatalf("len(points) = %d, want 2", len(s.Points))
	}
	if !almostEqual(s.Points[0].Area, 2.1+1e-6) {
		t.Errorf("points[0].Area = %v, want 2.1+1e-6", s.Points[0].Area)
	}
	if !almostEqual(s.Points[1].Area, 1.4+1e-6) {
		t.Errorf("points[1].Area = %v, want 1.4+1e-6", s.Points[1].Area)
	}
	if s.Points[0].ColorValue != 5e8 || s.Points[1].ColorValue != -3e8 {
		t.Errorf("colors = [%v, %v], want [5e8, -3e8]", s.Points[0].ColorValue, s.Points[1].ColorValue)
	}
	if s.Bounds.MaxAbs != 5e8 {
		t.Errorf("MaxAbs = %v, want 5e8", s.Bounds.MaxAbs)
	}
}

func TestBuildPreservesOrder(t *testing.T) {
	records := []board.Record{
		{BoardCode: "BK3", BoardName: "证券", NetInflow: board.Ptr(1e7)},
		{BoardCode: "BK1", BoardName: "白酒", NetInflow: board.Ptr(9e8)},
		{BoardCode: "BK2", BoardName: "军工", NetInflow: board.Ptr(-4e8)},
	}
	s := Build(records, MustScheme("change"), 0)
	if len(s.Points) != len(records) {
		t.Fatalf("len(points) = %d, want %d", len(s.Points), len(records))
	}
	for i := range records {
		if s.Points[i].BoardCode != records[i].BoardCode {
			t.Errorf("points[%d].BoardCode = %q, want %q (input order must hold)",
				i, s.Points[i].BoardCode, records[i].BoardCode)
		}
	}
}

func TestBuildAreasStrictlyPositive(t *testing.T) {
	// Zero metrics and all-nil records must still get a visible cell.
	records := []board.Record{
		{BoardCode: "BK1", PctChg: board.Ptr(0), NetInflow: board.Ptr(0)},
		{BoardCode: "BK2"},
	}
	for _, name := range SchemeNames() {
		s := Build(records, MustScheme(name), 0.5)
		for i, p := range s.Points {
			if p.Area <= 0 {
				t.Errorf("scheme %q points[%d].Area = %v, want > 0", name, i, p.Area)
			}
		}
		if s.Bounds.MaxAbs < 1 {
			t.Errorf("scheme %q MaxAbs = %v, want >= 1", name, s.Bounds.MaxAbs)
		}
	}
}

func TestBuildEmptyInput(t *testing.T) {
	s := Build(nil, MustScheme("change"), 0.5)
	if len(s.Points) != 0 {
		t.Errorf("len(points) = %d, want 0", len(s.Points))
	}
	if s.Bounds.MaxAbs != 1 {
		t.Errorf("MaxAbs = %v, want 1", s.Bounds.MaxAbs)
	}
}

func TestBuildCompositeUsesScore(t *testing.T) {
	// Composite color must come from the pre-blended score, never from a
	// client-side mix of the raw metrics.
	records := []board.Record{
		{BoardCode: "BK1", Score: board.Ptr(1.5), NetInflow: board.Ptr(7e8), PctChg: board.Ptr(-9.9)},
	}
	s := Build(records, MustScheme("composite"), 0.3)
	if s.Points[0].ColorValue != 1.5 {
		t.Errorf("ColorValue = %v, want score 1.5", s.Points[0].ColorValue)
	}
	if !almostEqual(s.Points[0].Area, 7e8+1e-6) {
		t.Errorf("Area = %v, want |net inflow|+epsilon", s.Points[0].Area)
	}
	if s.Alpha != 0.3 {
		t.Errorf("Alpha = %v, want 0.3", s.Alpha)
	}
}

func TestStats(t *testing.T) {
	records := []board.Record{
		{BoardCode: "BK1", Turnover: board.Ptr(1.0)},
		{BoardCode: "BK2", Turnover: board.Ptr(2.0)},
		{BoardCode: "BK3"}, // no data, skipped
		{BoardCode: "BK4", Turnover: board.Ptr(4.0)},
		{BoardCode: "BK5", Turnover: board.Ptr(8.0)},
	}
	st := Stats(records)
	if !almostEqual(st.TurnoverP50, 3.0) {
		t.Errorf("TurnoverP50 = %v, want 3.0", st.TurnoverP50)
	}
	if !almostEqual(st.TurnoverP90, 6.8) {
		t.Errorf("TurnoverP90 = %v, want 6.8", st.TurnoverP90)
	}
	if st.TurnoverMax != 8.0 {
		t.Errorf("TurnoverMax = %v, want 8.0", st.TurnoverMax)
	}

	if got := Stats(nil); got != (BoardStats{}) {
		t.Errorf("Stats(nil) = %+v, want zero stats", got)
	}
}
