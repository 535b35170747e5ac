package fundtrack

import "github.com/shopspring/decimal"

// Tone hints at how a recommendation should be presented.
type Tone string

const (
	Neutral Tone = "neutral"
	Success Tone = "success"
	Warning Tone = "warning"
	Danger  Tone = "danger"
)

// Advice is a coarse action recommendation derived from a fund's metrics.
type Advice struct {
	Text string
	Tone Tone
}

// Return-percentage bands, compared strictly. A return of exactly 15% is
// still "hold", exactly -5% is still "stable".
var (
	sellAbove    = decimal.NewFromInt(15)
	holdAbove    = decimal.NewFromInt(8)
	buyMoreBelow = decimal.NewFromInt(-5)
)

// Advise maps metrics to a recommendation. The rules are evaluated in order
// and the first match wins; a fund with no invested capital is always told
// to start investing, regardless of its ledger.
func Advise(m Metrics) Advice {
	switch {
	case m.Invested.IsZero():
		return Advice{Text: "Start Investing", Tone: Neutral}
	case m.ReturnPct.GreaterThan(sellAbove):
		return Advice{Text: "Sell Profits", Tone: Danger}
	case m.ReturnPct.GreaterThan(holdAbove):
		return Advice{Text: "Hold & Continue", Tone: Warning}
	case m.ReturnPct.LessThan(buyMoreBelow):
		return Advice{Text: "Buy More", Tone: Success}
	default:
		return Advice{Text: "Stable", Tone: Neutral}
	}
}
