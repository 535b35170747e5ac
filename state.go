package fundtrack

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Sentinel errors for state operations.
var (
	// ErrLastFund is returned when deleting the only remaining fund.
	ErrLastFund = errors.New("cannot delete the last fund")
	// ErrNoSelection is returned when an operation needs a current fund
	// and none is selected.
	ErrNoSelection = errors.New("no fund selected")
	// ErrFundNotFound is returned when no fund matches the given id or code.
	ErrFundNotFound = errors.New("fund not found")
)

// State is the whole tracked dataset: every fund and the current selection.
// It is what gets persisted, as a single JSON document.
//
// State is not safe for concurrent use. The tool loads it, mutates it and
// saves it back within a single command.
type State struct {
	Funds         []*Fund `json:"funds"`
	CurrentFundID string  `json:"currentFundId"`
}

// NewState returns an empty state with no funds and no selection.
func NewState() *State {
	return &State{Funds: []*Fund{}}
}

// DefaultState returns the starter dataset a first run begins with: a single
// sample fund with one historical purchase, so every view has something to
// show before the user records their own data.
func DefaultState() *State {
	f := &Fund{
		ID:              "1",
		Name:            "Azimut Fund",
		Code:            "AZM",
		Price:           decimal.NewFromFloat(16.5),
		SubscriptionFee: decimal.NewFromInt(1),
		RedemptionFee:   decimal.NewFromInt(2),
		Transactions: []Transaction{
			{Date: NewDate(2025, 1, 15), Type: Buy, Units: 100, Price: decimal.NewFromFloat(15.5)},
		},
		PriceHistory: []PricePoint{
			{Date: NewDate(2025, 1, 15), Price: decimal.NewFromFloat(15.5)},
			{Date: Today(), Price: decimal.NewFromFloat(16.5)},
		},
	}
	return &State{Funds: []*Fund{f}, CurrentFundID: f.ID}
}

// AddFund appends a fund and makes it the current selection. The code must
// not collide with an existing fund's.
func (s *State) AddFund(f *Fund) error {
	for _, g := range s.Funds {
		if g.Code == f.Code {
			return fmt.Errorf("a fund with code %s already exists: %s", f.Code, g.Label())
		}
	}
	s.Funds = append(s.Funds, f)
	s.CurrentFundID = f.ID
	return nil
}

// DeleteFund removes the fund matching the id or code. The last remaining
// fund cannot be deleted; deleting the current fund moves the selection to
// the first remaining one.
func (s *State) DeleteFund(idOrCode string) error {
	if len(s.Funds) <= 1 {
		return ErrLastFund
	}
	i := s.index(idOrCode)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrFundNotFound, idOrCode)
	}
	deleted := s.Funds[i]
	s.Funds = append(s.Funds[:i], s.Funds[i+1:]...)
	if s.CurrentFundID == deleted.ID {
		s.CurrentFundID = s.Funds[0].ID
	}
	return nil
}

// SelectFund makes the fund matching the id or code the current selection.
func (s *State) SelectFund(idOrCode string) (*Fund, error) {
	i := s.index(idOrCode)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrFundNotFound, idOrCode)
	}
	s.CurrentFundID = s.Funds[i].ID
	return s.Funds[i], nil
}

// CurrentFund returns the currently selected fund, or ErrNoSelection.
func (s *State) CurrentFund() (*Fund, error) {
	if s.CurrentFundID == "" {
		return nil, ErrNoSelection
	}
	for _, f := range s.Funds {
		if f.ID == s.CurrentFundID {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: current fund %q", ErrFundNotFound, s.CurrentFundID)
}

// Fund returns the fund matching the id or code.
func (s *State) Fund(idOrCode string) (*Fund, error) {
	i := s.index(idOrCode)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrFundNotFound, idOrCode)
	}
	return s.Funds[i], nil
}

// index finds a fund by exact id, then by case-insensitive code.
func (s *State) index(idOrCode string) int {
	for i, f := range s.Funds {
		if f.ID == idOrCode {
			return i
		}
	}
	code := strings.ToUpper(strings.TrimSpace(idOrCode))
	for i, f := range s.Funds {
		if f.Code == code {
			return i
		}
	}
	return -1
}

// AddTransaction appends a transaction to the current fund's ledger.
func (s *State) AddTransaction(tx Transaction) error {
	f, err := s.CurrentFund()
	if err != nil {
		return err
	}
	f.AddTransaction(tx)
	return nil
}

// DeleteTransaction removes a transaction from the current fund's ledger by
// its index.
func (s *State) DeleteTransaction(i int) error {
	f, err := s.CurrentFund()
	if err != nil {
		return err
	}
	return f.DeleteTransaction(i)
}

// SetPrice records a price observation on the current fund.
func (s *State) SetPrice(day Date, price decimal.Decimal) error {
	f, err := s.CurrentFund()
	if err != nil {
		return err
	}
	return f.SetPrice(day, price)
}

// Clear resets the state to empty, dropping every fund and the selection.
func (s *State) Clear() {
	s.Funds = []*Fund{}
	s.CurrentFundID = ""
}
