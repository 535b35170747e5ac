package fundtrack

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// testFund returns a fund with a 1% subscription fee, a 2% redemption fee
// and a current price of 16.5.
func testFund(t *testing.T) *Fund {
	t.Helper()
	f, err := NewFund("Azimut Fund", "AZM", dec("16.5"), dec("1"), dec("2"))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func buy(t *testing.T, f *Fund, day string, units int64, price string) {
	t.Helper()
	tx, err := NewBuy(MustParse(day), units, dec(price))
	if err != nil {
		t.Fatal(err)
	}
	f.AddTransaction(tx)
}

func sell(t *testing.T, f *Fund, day string, units int64, price string) {
	t.Helper()
	tx, err := NewSell(MustParse(day), units, dec(price))
	if err != nil {
		t.Fatal(err)
	}
	f.AddTransaction(tx)
}

func TestMetrics_SingleBuy(t *testing.T) {
	f := testFund(t)
	buy(t, f, "2025-01-15", 100, "15.5")

	m := f.Metrics()

	if got, want := m.Units, int64(100); got != want {
		t.Errorf("Units = %d, want %d", got, want)
	}
	// gross 1550, 1% fee 15.5, net 1534.5
	if got, want := m.Invested, dec("1534.5"); !got.Equal(want) {
		t.Errorf("Invested = %s, want %s", got, want)
	}
	if got, want := m.AvgPrice, dec("15.345"); !got.Equal(want) {
		t.Errorf("AvgPrice = %s, want %s", got, want)
	}
	if got, want := m.Value, dec("1650"); !got.Equal(want) {
		t.Errorf("Value = %s, want %s", got, want)
	}
	if got, want := m.Profit, dec("115.5"); !got.Equal(want) {
		t.Errorf("Profit = %s, want %s", got, want)
	}
	// 115.5 / 1534.5 * 100
	if got, want := m.ReturnPct, dec("7.5268"); got.Sub(want).Abs().GreaterThan(dec("0.0001")) {
		t.Errorf("ReturnPct = %s, want about %s", got, want)
	}
}

func TestMetrics_SellSubtractsNetProceeds(t *testing.T) {
	f := testFund(t)
	buy(t, f, "2025-01-15", 100, "15.5")
	sell(t, f, "2025-03-01", 50, "17")

	m := f.Metrics()

	if got, want := m.Units, int64(50); got != want {
		t.Errorf("Units = %d, want %d", got, want)
	}
	// sale gross 850, 2% fee 17, net proceeds 833: invested 1534.5 - 833
	if got, want := m.Invested, dec("701.5"); !got.Equal(want) {
		t.Errorf("Invested = %s, want %s", got, want)
	}
	// average buy price only reflects buys
	if got, want := m.AvgPrice, dec("15.345"); !got.Equal(want) {
		t.Errorf("AvgPrice = %s, want %s", got, want)
	}
	if got, want := m.Value, dec("825"); !got.Equal(want) {
		t.Errorf("Value = %s, want %s", got, want)
	}
	if got, want := m.Profit, dec("123.5"); !got.Equal(want) {
		t.Errorf("Profit = %s, want %s", got, want)
	}
}

func TestMetrics_EmptyLedger(t *testing.T) {
	f := testFund(t)
	m := f.Metrics()

	if m.Units != 0 || !m.Invested.IsZero() || !m.AvgPrice.IsZero() || !m.Profit.IsZero() || !m.ReturnPct.IsZero() {
		t.Errorf("empty ledger metrics not zero: %+v", m)
	}
	if !m.Value.IsZero() {
		t.Errorf("Value = %s, want 0", m.Value)
	}
}

func TestMetrics_NilFund(t *testing.T) {
	var f *Fund
	m := f.Metrics()
	if m.Units != 0 || !m.Value.IsZero() || !m.Invested.IsZero() {
		t.Errorf("nil fund metrics not zero: %+v", m)
	}
}

func TestMetrics_OversellGoesNegative(t *testing.T) {
	f := testFund(t)
	sell(t, f, "2025-01-15", 10, "16")

	m := f.Metrics()
	if got, want := m.Units, int64(-10); got != want {
		t.Errorf("Units = %d, want %d", got, want)
	}
	// negative invested capital: return stays zero
	if !m.Invested.IsNegative() {
		t.Errorf("Invested = %s, want negative", m.Invested)
	}
	if !m.ReturnPct.IsZero() {
		t.Errorf("ReturnPct = %s, want 0 on non-positive invested capital", m.ReturnPct)
	}
}

func TestMetrics_ReplaysLedgerInInsertionOrder(t *testing.T) {
	// a sell recorded before a backdated buy still replays in insertion order
	f := testFund(t)
	buy(t, f, "2025-02-01", 100, "16")
	sell(t, f, "2025-01-10", 40, "16.2")
	buy(t, f, "2025-03-01", 10, "16.4")

	m := f.Metrics()
	if got, want := m.Units, int64(70); got != want {
		t.Errorf("Units = %d, want %d", got, want)
	}
}

func TestFund_FeeSchedule(t *testing.T) {
	f := testFund(t)

	btx, err := NewBuy(MustParse("2025-01-15"), 100, dec("15.5"))
	if err != nil {
		t.Fatal(err)
	}
	stx, err := NewSell(MustParse("2025-01-20"), 100, dec("15.5"))
	if err != nil {
		t.Fatal(err)
	}

	if got, want := f.Fee(btx), dec("15.5"); !got.Equal(want) {
		t.Errorf("buy Fee = %s, want %s", got, want)
	}
	if got, want := f.Fee(stx), dec("31"); !got.Equal(want) {
		t.Errorf("sell Fee = %s, want %s", got, want)
	}
	if got, want := f.Net(btx), dec("1534.5"); !got.Equal(want) {
		t.Errorf("buy Net = %s, want %s", got, want)
	}
}
