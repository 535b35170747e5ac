package fundtrack

import (
	"bytes"
	"testing"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G'}

func TestRenderPriceChart(t *testing.T) {
	f := testFund(t)
	f.PriceHistory = []PricePoint{
		{Date: MustParse("2025-01-15"), Price: dec("15.5")},
		{Date: MustParse("2025-02-01"), Price: dec("16.5")},
	}

	png, err := RenderPriceChart(f)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(png, pngSignature) {
		t.Error("RenderPriceChart() did not produce a PNG")
	}
}

func TestRenderPriceChart_NeedsTwoPoints(t *testing.T) {
	f := testFund(t)
	// NewFund seeds a single point
	if _, err := RenderPriceChart(f); err == nil {
		t.Error("RenderPriceChart() accepted a single point history")
	}

	var nilFund *Fund
	if _, err := RenderPriceChart(nilFund); err == nil {
		t.Error("RenderPriceChart(nil) did not fail")
	}
}

func TestRenderDistributionChart(t *testing.T) {
	s := twoFundState(t)
	azm, _ := s.Fund("AZM")
	bte, _ := s.Fund("BTE")
	buy(t, azm, "2025-01-15", 100, "15.5")
	buy(t, bte, "2025-01-20", 10, "12")

	png, err := RenderDistributionChart(s)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(png, pngSignature) {
		t.Error("RenderDistributionChart() did not produce a PNG")
	}
}

func TestRenderDistributionChart_NoValue(t *testing.T) {
	s := twoFundState(t)
	if _, err := RenderDistributionChart(s); err == nil {
		t.Error("RenderDistributionChart() accepted a portfolio with no positive value")
	}
}

func TestRenderMonthlyChart(t *testing.T) {
	s := twoFundState(t)
	azm, _ := s.Fund("AZM")
	buy(t, azm, "2025-01-15", 100, "15.5")

	png, err := RenderMonthlyChart(s)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(png, pngSignature) {
		t.Error("RenderMonthlyChart() did not produce a PNG")
	}

	if _, err := RenderMonthlyChart(NewState()); err == nil {
		t.Error("RenderMonthlyChart() accepted an empty state")
	}
}

func TestRenderReturnChart(t *testing.T) {
	s := twoFundState(t)
	azm, _ := s.Fund("AZM")
	buy(t, azm, "2025-01-15", 100, "15.5")

	png, err := RenderReturnChart(s)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(png, pngSignature) {
		t.Error("RenderReturnChart() did not produce a PNG")
	}

	if _, err := RenderReturnChart(NewState()); err == nil {
		t.Error("RenderReturnChart() accepted an empty state")
	}
}
