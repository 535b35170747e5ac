package fundtrack

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fund is a tracked investment vehicle: a fee schedule, a transaction
// ledger and a dated price history.
//
// The ledger is kept in insertion order, which is the order the valuation
// engine replays it in. That order is not necessarily chronological.
type Fund struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Code            string          `json:"code"`
	Price           decimal.Decimal `json:"price"`
	SubscriptionFee decimal.Decimal `json:"subscriptionFee"`
	RedemptionFee   decimal.Decimal `json:"redemptionFee"`
	Transactions    []Transaction   `json:"transactions"`
	PriceHistory    []PricePoint    `json:"priceHistory"`
}

// NewFund creates a fund with a fresh unique id, an empty ledger and a single
// seed price point dated today. The code is upper-cased; fees are percentages
// and may be zero.
func NewFund(name, code string, price, subscriptionFee, redemptionFee decimal.Decimal) (*Fund, error) {
	name = strings.TrimSpace(name)
	code = strings.ToUpper(strings.TrimSpace(code))
	if name == "" {
		return nil, errors.New("fund name is missing")
	}
	if code == "" {
		return nil, errors.New("fund code is missing")
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("fund price must be positive, got %s", price)
	}
	if subscriptionFee.IsNegative() {
		return nil, fmt.Errorf("subscription fee cannot be negative, got %s", subscriptionFee)
	}
	if redemptionFee.IsNegative() {
		return nil, fmt.Errorf("redemption fee cannot be negative, got %s", redemptionFee)
	}
	return &Fund{
		ID:              uuid.NewString(),
		Name:            name,
		Code:            code,
		Price:           price,
		SubscriptionFee: subscriptionFee,
		RedemptionFee:   redemptionFee,
		Transactions:    []Transaction{},
		PriceHistory:    []PricePoint{{Date: Today(), Price: price}},
	}, nil
}

// Label returns the display label "Name (CODE)".
func (f *Fund) Label() string { return fmt.Sprintf("%s (%s)", f.Name, f.Code) }

// AddTransaction appends a transaction to the ledger.
func (f *Fund) AddTransaction(tx Transaction) {
	f.Transactions = append(f.Transactions, tx)
}

// DeleteTransaction removes the transaction at the given ledger index.
func (f *Fund) DeleteTransaction(i int) error {
	if i < 0 || i >= len(f.Transactions) {
		return fmt.Errorf("no transaction at index %d, ledger has %d", i, len(f.Transactions))
	}
	f.Transactions = append(f.Transactions[:i], f.Transactions[i+1:]...)
	return nil
}

// SetPrice records a price observation for a day and makes it the fund's
// current price. If the day already has an entry it is overwritten in place,
// keeping one point per distinct date.
func (f *Fund) SetPrice(day Date, price decimal.Decimal) error {
	if day.IsZero() {
		day = Today()
	}
	if !price.IsPositive() {
		return fmt.Errorf("price must be positive, got %s", price)
	}
	f.Price = price
	for i, p := range f.PriceHistory {
		if p.Date == day {
			log.Printf("%v: update %v price from %s with %s", day, f.Code, p.Price, price)
			f.PriceHistory[i].Price = price
			return nil
		}
	}
	f.PriceHistory = append(f.PriceHistory, PricePoint{Date: day, Price: price})
	return nil
}

// Fee returns the fee charged on a transaction per the fund's schedule:
// the subscription percentage on buys, the redemption percentage on sells.
func (f *Fund) Fee(tx Transaction) decimal.Decimal {
	pct := f.SubscriptionFee
	if tx.Type == Sell {
		pct = f.RedemptionFee
	}
	return tx.Gross().Mul(pct).Div(hundred)
}

// Net returns the transaction amount after fees.
func (f *Fund) Net(tx Transaction) decimal.Decimal {
	return tx.Gross().Sub(f.Fee(tx))
}

// LatestPricePoint returns the most recently recorded price observation,
// or false when the history is empty.
func (f *Fund) LatestPricePoint() (PricePoint, bool) {
	if f == nil || len(f.PriceHistory) == 0 {
		return PricePoint{}, false
	}
	return f.PriceHistory[len(f.PriceHistory)-1], true
}
