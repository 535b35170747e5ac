package renderer

import (
	"strconv"

	"github.com/okasha/fundtrack"
)

// summaryView is the pre-formatted data handed to the summary templates.
type summaryView struct {
	Label    string
	Date     string
	Units    string
	AvgPrice string
	Price    string
	Value    string
	Invested string
	Profit   string
	Return   string
	Advice   string
	Tone     string
}

// SummaryMarkdown renders the current position of one fund, with its
// recommendation, as a markdown report. Amounts are formatted in the given
// display currency.
func SummaryMarkdown(f *fundtrack.Fund, currency string) string {
	m := f.Metrics()
	advice := fundtrack.Advise(m)

	v := summaryView{
		Label:    f.Label(),
		Date:     fundtrack.Today().String(),
		Units:    strconv.FormatInt(m.Units, 10),
		AvgPrice: fundtrack.M(m.AvgPrice, currency).String(),
		Price:    fundtrack.M(f.Price, currency).String(),
		Value:    fundtrack.M(m.Value, currency).String(),
		Invested: fundtrack.M(m.Invested, currency).String(),
		Profit:   fundtrack.M(m.Profit, currency).SignedString(),
		Return:   m.Return().SignedString(),
		Advice:   advice.Text,
		Tone:     string(advice.Tone),
	}

	partials := map[string]string{
		"summary_title":    "summary_title.md",
		"summary_position": "summary_position.md",
		"summary_advice":   "summary_advice.md",
	}
	return renderTemplate("summary", "summary.md", partials, v)
}
