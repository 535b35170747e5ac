package fundtrack

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TxType is a typed string identifying the side of a transaction.
type TxType string

const (
	// Buy adds units to the position and capital to the fund.
	Buy TxType = "buy"
	// Sell removes units from the position and net proceeds from the invested capital.
	Sell TxType = "sell"
)

// Transaction is a single buy or sell event in a fund's ledger.
//
// A transaction is never mutated after creation; the only ledger
// mutation besides appending is index-based removal.
type Transaction struct {
	Date  Date            `json:"date"`
	Type  TxType          `json:"type"`
	Units int64           `json:"units"`
	Price decimal.Decimal `json:"price"`
}

// NewBuy creates a validated buy transaction.
func NewBuy(day Date, units int64, price decimal.Decimal) (Transaction, error) {
	return newTransaction(day, Buy, units, price)
}

// NewSell creates a validated sell transaction.
func NewSell(day Date, units int64, price decimal.Decimal) (Transaction, error) {
	return newTransaction(day, Sell, units, price)
}

func newTransaction(day Date, typ TxType, units int64, price decimal.Decimal) (Transaction, error) {
	if day.IsZero() {
		day = Today()
	}
	if typ != Buy && typ != Sell {
		return Transaction{}, fmt.Errorf("unknown transaction type %q", typ)
	}
	if units <= 0 {
		return Transaction{}, fmt.Errorf("%s transaction units must be positive, got %d", typ, units)
	}
	if !price.IsPositive() {
		return Transaction{}, fmt.Errorf("%s transaction price must be positive, got %s", typ, price)
	}
	return Transaction{Date: day, Type: typ, Units: units, Price: price}, nil
}

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(s) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Gross returns the transaction amount before fees: units times execution price.
func (t Transaction) Gross() decimal.Decimal {
	return t.Price.Mul(decimal.NewFromInt(t.Units))
}
