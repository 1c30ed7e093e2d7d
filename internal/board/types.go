// Package board defines the sector board records shared by the heatmap
// pipeline, the API client and the views. Numeric fields the backend may
// omit are pointers: nil means "no data" and must stay distinguishable
// from a literal zero when rendered.
package board

// Record is one sector/concept board row from the realtime endpoint.
type Record struct {
	BoardCode   string   `json:"board_code"`
	BoardName   string   `json:"board_name"`
	CateType    Category `json:"cate_type"`
	PctChg      *float64 `json:"pct_chg,omitempty"`      // day change %
	Amount      *float64 `json:"amount,omitempty"`       // trading amount (CNY)
	NetInflow   *float64 `json:"net_inflow,omitempty"`   // main-capital net inflow (CNY)
	Turnover    *float64 `json:"turnover,omitempty"`     // turnover rate %
	RatioAmount *float64 `json:"ratio_amount,omitempty"` // share of market amount
	Score       *float64 `json:"score,omitempty"`        // composite heat score
}

// Constituent is one stock inside a board.
type Constituent struct {
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	PctChg    *float64 `json:"pct_chg,omitempty"`
	Amount    *float64 `json:"amount,omitempty"`
	NetInflow *float64 `json:"net_inflow,omitempty"`
}

// HistoryDay is one trading day in a board's history.
type HistoryDay struct {
	Date      string   `json:"date"`
	PctChg    *float64 `json:"pct_chg,omitempty"`
	Amount    *float64 `json:"amount,omitempty"`
	NetInflow *float64 `json:"net_inflow,omitempty"`
	Turnover  *float64 `json:"turnover,omitempty"`
}

// Value reads an optional field for computation, treating absent as 0.
func Value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// Ptr wraps a literal for optional fields.
func Ptr(v float64) *float64 { return &v }
