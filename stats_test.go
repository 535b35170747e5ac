package fundtrack

import "testing"

func TestComputeStats_Totals(t *testing.T) {
	s := twoFundState(t)
	azm, _ := s.Fund("AZM")
	bte, _ := s.Fund("BTE")
	buy(t, azm, "2025-01-15", 100, "15.5")
	buy(t, bte, "2025-01-20", 10, "12")
	sell(t, azm, "2025-02-01", 20, "17")

	st := s.ComputeStats()

	if got, want := st.FundCount, 2; got != want {
		t.Errorf("FundCount = %d, want %d", got, want)
	}
	if got, want := st.TotalTx, 3; got != want {
		t.Errorf("TotalTx = %d, want %d", got, want)
	}
	// 80 * 16.5 + 10 * 12
	if got, want := st.TotalValue, dec("1440"); !got.Equal(want) {
		t.Errorf("TotalValue = %s, want %s", got, want)
	}
	if len(st.Distribution) != 2 {
		t.Errorf("len(Distribution) = %d, want 2", len(st.Distribution))
	}
}

func TestComputeStats_BestWorst(t *testing.T) {
	s := twoFundState(t)
	azm, _ := s.Fund("AZM")
	bte, _ := s.Fund("BTE")
	// AZM gains: bought at 15.5, now 16.5. BTE is flat minus fees.
	buy(t, azm, "2025-01-15", 100, "15.5")
	buy(t, bte, "2025-01-20", 10, "12")

	st := s.ComputeStats()
	if st.Best == nil || st.Worst == nil {
		t.Fatal("Best or Worst is nil")
	}
	if st.Best.Fund.Code != "AZM" {
		t.Errorf("Best = %s, want AZM", st.Best.Fund.Code)
	}
	if st.Worst.Fund.Code != "BTE" {
		t.Errorf("Worst = %s, want BTE", st.Worst.Fund.Code)
	}
}

func TestComputeStats_TieKeepsFirstFund(t *testing.T) {
	s := twoFundState(t)
	// both funds have no transactions: every return is zero

	st := s.ComputeStats()
	if st.Best == nil || st.Worst == nil {
		t.Fatal("Best or Worst is nil")
	}
	if st.Best.Fund.Code != "AZM" {
		t.Errorf("Best on tie = %s, want the first fund AZM", st.Best.Fund.Code)
	}
	if st.Worst.Fund.Code != "AZM" {
		t.Errorf("Worst on tie = %s, want the first fund AZM", st.Worst.Fund.Code)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	s := NewState()
	st := s.ComputeStats()
	if st.Best != nil || st.Worst != nil {
		t.Error("Best/Worst not nil on empty state")
	}
	if st.FundCount != 0 || st.TotalTx != 0 {
		t.Errorf("counts not zero: %+v", st)
	}
}

func TestComputeStats_MonthlyFlows(t *testing.T) {
	s := twoFundState(t)
	azm, _ := s.Fund("AZM")
	buy(t, azm, "2025-01-15", 100, "15.5") // net 1534.5
	sell(t, azm, "2025-01-20", 10, "16")   // net 156.8, same month, adds positively
	buy(t, azm, "2025-03-01", 10, "16")    // net 158.4

	st := s.ComputeStats()
	if len(st.Flows) != 2 {
		t.Fatalf("len(Flows) = %d, want 2", len(st.Flows))
	}
	if st.Flows[0].Month != "2025-01" || st.Flows[1].Month != "2025-03" {
		t.Errorf("Flows months = %s, %s, want 2025-01, 2025-03", st.Flows[0].Month, st.Flows[1].Month)
	}
	// both buy and sell net amounts count toward the month's activity
	if got, want := st.Flows[0].Amount, dec("1691.3"); !got.Equal(want) {
		t.Errorf("Flows[0].Amount = %s, want %s", got, want)
	}
	if got, want := st.Flows[1].Amount, dec("158.4"); !got.Equal(want) {
		t.Errorf("Flows[1].Amount = %s, want %s", got, want)
	}
}
