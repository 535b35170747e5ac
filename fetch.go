package fundtrack

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// FetchPrice retrieves a fund price from a remote JSON endpoint: the
// document at addr is fetched and the value at the jsonpath expression is
// read as the price. The value may be a JSON number or a numeric string,
// providers disagree on this.
func FetchPrice(client *http.Client, addr, path string) (decimal.Decimal, error) {
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("error fetching %q: %w", addr, err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error evaluating %q on %q: %w", path, addr, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer: keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	switch v := jval.(type) {
	case float64:
		price := decimal.NewFromFloat(v)
		if !price.IsPositive() {
			return decimal.Zero, fmt.Errorf("%q yields a non-positive price %s", path, price)
		}
		return price, nil
	case string:
		s := strings.ReplaceAll(v, ",", ".")
		s = strings.ReplaceAll(s, " ", "")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%q yields an invalid price string %q: %w", path, v, err)
		}
		price := decimal.NewFromFloat(f)
		if !price.IsPositive() {
			return decimal.Zero, fmt.Errorf("%q yields a non-positive price %s", path, price)
		}
		return price, nil
	default:
		return decimal.Zero, fmt.Errorf("%q yields %v, neither a number nor a string", path, jval)
	}
}
