package fundtrack

import (
	"bytes"
	"strings"
	"testing"
)

func TestExportImportJSON_RoundTrip(t *testing.T) {
	s := twoFundState(t)
	f, _ := s.Fund("AZM")
	buy(t, f, "2025-01-15", 100, "15.5")

	var buf bytes.Buffer
	if err := ExportJSON(&buf, s); err != nil {
		t.Fatal(err)
	}

	funds, err := ImportJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(funds) != 2 {
		t.Fatalf("imported %d funds, want 2", len(funds))
	}
	var azm *Fund
	for _, g := range funds {
		if g.Code == "AZM" {
			azm = g
		}
	}
	if azm == nil {
		t.Fatal("AZM not imported")
	}
	if len(azm.Transactions) != 1 {
		t.Fatalf("AZM has %d transactions, want 1", len(azm.Transactions))
	}
	// JSON keeps the fee schedule
	if !azm.SubscriptionFee.Equal(dec("1")) {
		t.Errorf("SubscriptionFee = %s, want 1", azm.SubscriptionFee)
	}
}

func TestImportJSON_BareArray(t *testing.T) {
	doc := `[{"name":"Azimut Fund","code":"AZM","price":"16.5","subscriptionFee":"1","redemptionFee":"2"}]`

	funds, err := ImportJSON(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(funds) != 1 {
		t.Fatalf("imported %d funds, want 1", len(funds))
	}
	if funds[0].ID == "" {
		t.Error("imported fund did not get an id")
	}
}

func TestImportJSON_Malformed(t *testing.T) {
	tests := []struct{ name, doc string }{
		{"garbage", "not json"},
		{"empty", `{"funds":[]}`},
		{"missing code", `[{"name":"Azimut Fund"}]`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportJSON(strings.NewReader(tc.doc)); err == nil {
				t.Error("ImportJSON() accepted a malformed document")
			}
		})
	}
}

func TestExportImportCSV_RoundTrip(t *testing.T) {
	s := twoFundState(t)
	f, _ := s.Fund("AZM")
	buy(t, f, "2025-01-15", 100, "15.5")
	sell(t, f, "2025-02-01", 20, "17")

	var buf bytes.Buffer
	if err := ExportCSV(&buf, s); err != nil {
		t.Fatal(err)
	}

	funds, err := ImportCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}
	// rows group by fund name and code
	if len(funds) != 2 {
		t.Fatalf("imported %d funds, want 2", len(funds))
	}

	var azm *Fund
	for _, g := range funds {
		if g.Code == "AZM" {
			azm = g
		}
	}
	if azm == nil {
		t.Fatal("AZM not imported")
	}
	if len(azm.Transactions) != 2 {
		t.Fatalf("AZM has %d transactions, want 2", len(azm.Transactions))
	}
	if got := azm.Transactions[1].Type; got != Sell {
		t.Errorf("second transaction type = %s, want sell", got)
	}
	// the current price column survives
	if !azm.Price.Equal(dec("16.5")) {
		t.Errorf("Price = %s, want 16.5", azm.Price)
	}
	// the tabular layout carries no fee schedule
	if !azm.SubscriptionFee.IsZero() || !azm.RedemptionFee.IsZero() {
		t.Errorf("imported fees = %s/%s, want zero", azm.SubscriptionFee, azm.RedemptionFee)
	}
	// imported funds get fresh ids, not the exported ones
	orig, _ := s.Fund("AZM")
	if azm.ID == orig.ID {
		t.Error("imported fund kept the exported id")
	}
}

func TestImportCSV_FundWithoutTransactions(t *testing.T) {
	doc := "fund,code,date,type,units,price,amount,fee,current price\nAzimut Fund,AZM,,,,,,,16.5\n"

	funds, err := ImportCSV(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(funds) != 1 || len(funds[0].Transactions) != 0 {
		t.Fatalf("want 1 fund with no transactions, got %v", funds)
	}
	if !funds[0].Price.Equal(dec("16.5")) {
		t.Errorf("Price = %s, want 16.5", funds[0].Price)
	}
}

func TestImportCSV_Malformed(t *testing.T) {
	tests := []struct{ name, doc string }{
		{"header only", "fund,code,date,type,units,price,amount,fee,current price\n"},
		{"bad units", "fund,code,date,type,units,price\nAzimut Fund,AZM,2025-01-15,buy,ten,15.5\n"},
		{"bad type", "fund,code,date,type,units,price\nAzimut Fund,AZM,2025-01-15,transfer,10,15.5\n"},
		{"bad date", "fund,code,date,type,units,price\nAzimut Fund,AZM,someday,buy,10,15.5\n"},
		{"missing code", "fund,code,date,type,units,price\nAzimut Fund,,2025-01-15,buy,10,15.5\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportCSV(strings.NewReader(tc.doc)); err == nil {
				t.Error("ImportCSV() accepted a malformed document")
			}
		})
	}
}

func TestExportImportXLSX_RoundTrip(t *testing.T) {
	s := twoFundState(t)
	f, _ := s.Fund("AZM")
	buy(t, f, "2025-01-15", 100, "15.5")

	var buf bytes.Buffer
	if err := ExportXLSX(&buf, s); err != nil {
		t.Fatal(err)
	}

	funds, err := ImportXLSX(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(funds) != 2 {
		t.Fatalf("imported %d funds, want 2", len(funds))
	}
}

func TestImportFile_DispatchesOnExtension(t *testing.T) {
	if _, err := ImportFile("funds.pdf", strings.NewReader("")); err == nil {
		t.Error("ImportFile() accepted an unsupported extension")
	}

	doc := `[{"name":"Azimut Fund","code":"AZM","price":"16.5"}]`
	funds, err := ImportFile("backup.json", strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(funds) != 1 {
		t.Fatalf("imported %d funds, want 1", len(funds))
	}
}

func TestState_Replace(t *testing.T) {
	s := twoFundState(t)
	f, err := NewFund("Other", "OTH", dec("10"), dec("0"), dec("0"))
	if err != nil {
		t.Fatal(err)
	}

	s.Replace([]*Fund{f})
	if len(s.Funds) != 1 || s.CurrentFundID != f.ID {
		t.Errorf("Replace() left %d funds, selection %q", len(s.Funds), s.CurrentFundID)
	}

	s.Replace(nil)
	if s.CurrentFundID != "" {
		t.Errorf("Replace(nil) kept selection %q", s.CurrentFundID)
	}
}
