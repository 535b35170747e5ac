package fundtrack

import (
	"errors"
	"testing"
)

func twoFundState(t *testing.T) *State {
	t.Helper()
	s := NewState()
	a, err := NewFund("Azimut Fund", "AZM", dec("16.5"), dec("1"), dec("2"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewFund("Beltone Fund", "BTE", dec("12"), dec("0.5"), dec("1"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AddFund(a); err != nil {
		t.Fatal(err)
	}
	if err := s.AddFund(b); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestState_AddFundSelects(t *testing.T) {
	s := twoFundState(t)

	f, err := s.CurrentFund()
	if err != nil {
		t.Fatal(err)
	}
	if f.Code != "BTE" {
		t.Errorf("CurrentFund() = %s, want the last added BTE", f.Code)
	}
}

func TestState_AddFundRejectsDuplicateCode(t *testing.T) {
	s := twoFundState(t)
	dup, err := NewFund("Another", "azm", dec("10"), dec("0"), dec("0"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AddFund(dup); err == nil {
		t.Error("AddFund() accepted a duplicate code")
	}
}

func TestState_SelectFundByCode(t *testing.T) {
	s := twoFundState(t)

	f, err := s.SelectFund("azm")
	if err != nil {
		t.Fatal(err)
	}
	if f.Code != "AZM" {
		t.Errorf("SelectFund(azm) = %s, want AZM", f.Code)
	}
	if s.CurrentFundID != f.ID {
		t.Errorf("CurrentFundID = %q, want %q", s.CurrentFundID, f.ID)
	}

	if _, err := s.SelectFund("nope"); !errors.Is(err, ErrFundNotFound) {
		t.Errorf("SelectFund(nope) = %v, want ErrFundNotFound", err)
	}
}

func TestState_DeleteFund(t *testing.T) {
	s := twoFundState(t)

	// deleting the current fund moves the selection to the first remaining one
	if err := s.DeleteFund("BTE"); err != nil {
		t.Fatal(err)
	}
	f, err := s.CurrentFund()
	if err != nil {
		t.Fatal(err)
	}
	if f.Code != "AZM" {
		t.Errorf("CurrentFund() = %s after delete, want AZM", f.Code)
	}

	// the last fund cannot be deleted
	if err := s.DeleteFund("AZM"); !errors.Is(err, ErrLastFund) {
		t.Errorf("DeleteFund(last) = %v, want ErrLastFund", err)
	}
}

func TestState_CurrentFundNoSelection(t *testing.T) {
	s := NewState()
	if _, err := s.CurrentFund(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("CurrentFund() = %v, want ErrNoSelection", err)
	}
}

func TestState_RoutesThroughSelection(t *testing.T) {
	s := twoFundState(t)

	tx, err := NewBuy(MustParse("2025-01-15"), 10, dec("12"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AddTransaction(tx); err != nil {
		t.Fatal(err)
	}
	if err := s.SetPrice(MustParse("2025-01-20"), dec("12.5")); err != nil {
		t.Fatal(err)
	}

	f, _ := s.CurrentFund()
	if len(f.Transactions) != 1 {
		t.Fatalf("current fund has %d transactions, want 1", len(f.Transactions))
	}
	if !f.Price.Equal(dec("12.5")) {
		t.Errorf("current fund price = %s, want 12.5", f.Price)
	}

	if err := s.DeleteTransaction(0); err != nil {
		t.Fatal(err)
	}
	if len(f.Transactions) != 0 {
		t.Errorf("current fund has %d transactions after delete, want 0", len(f.Transactions))
	}

	// without a selection every routed operation fails the same way
	empty := NewState()
	if err := empty.AddTransaction(tx); !errors.Is(err, ErrNoSelection) {
		t.Errorf("AddTransaction = %v, want ErrNoSelection", err)
	}
	if err := empty.SetPrice(Date{}, dec("1")); !errors.Is(err, ErrNoSelection) {
		t.Errorf("SetPrice = %v, want ErrNoSelection", err)
	}
	if err := empty.DeleteTransaction(0); !errors.Is(err, ErrNoSelection) {
		t.Errorf("DeleteTransaction = %v, want ErrNoSelection", err)
	}
}

func TestState_Clear(t *testing.T) {
	s := twoFundState(t)
	s.Clear()
	if len(s.Funds) != 0 || s.CurrentFundID != "" {
		t.Errorf("Clear() left %d funds, selection %q", len(s.Funds), s.CurrentFundID)
	}
}

func TestDefaultState(t *testing.T) {
	s := DefaultState()

	f, err := s.CurrentFund()
	if err != nil {
		t.Fatal(err)
	}
	if f.Code != "AZM" {
		t.Errorf("sample fund code = %s, want AZM", f.Code)
	}
	if len(f.Transactions) != 1 {
		t.Fatalf("sample fund has %d transactions, want 1", len(f.Transactions))
	}

	m := f.Metrics()
	if got, want := m.Invested, dec("1534.5"); !got.Equal(want) {
		t.Errorf("sample fund Invested = %s, want %s", got, want)
	}
	if got := Advise(m).Text; got != "Stable" {
		t.Errorf("sample fund advice = %q, want %q", got, "Stable")
	}
}
