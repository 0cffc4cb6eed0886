package metrics

import (
	"testing"
	"time"

	"pukis-backend/internal/models"
)

func TestComputeSaleMetricsSumsAllChannels(t *testing.T) {
	s := models.Sale{Cash: 100, Qris: 200, Grab: 300, Gofood: 400, Shopee: 500, Tiktok: 600, TotalSold: 10}
	m := ComputeSaleMetrics(s, 50)

	if m.TotalRevenue != 2100 {
		t.Fatalf("TotalRevenue = %v, want 2100", m.TotalRevenue)
	}
	if m.CogsSold != 500 {
		t.Fatalf("CogsSold = %v, want 500", m.CogsSold)
	}
	if m.GrossMargin != 1600 {
		t.Fatalf("GrossMargin = %v, want 1600", m.GrossMargin)
	}
}

func TestComputeSaleMetricsZeroRevenue(t *testing.T) {
	s := models.Sale{TotalSold: 20}
	m := ComputeSaleMetrics(s, 1500)

	if m.TotalRevenue != 0 {
		t.Fatalf("TotalRevenue = %v, want 0", m.TotalRevenue)
	}
	if m.GrossMarginPercentage != 0 {
		t.Fatalf("GrossMarginPercentage = %v, want 0 when revenue is 0", m.GrossMarginPercentage)
	}
	if m.GrossMargin != -30000 {
		t.Fatalf("GrossMargin = %v, want -30000", m.GrossMargin)
	}
}

func TestComputeSaleMetricsPercentageRounding(t *testing.T) {
	tests := []struct {
		name    string
		sale    models.Sale
		cogs    float64
		wantPct float64
	}{
		// 400/600*100 = 66.666... -> 66.67
		{"repeating decimal rounds up", models.Sale{Cash: 600, TotalSold: 100}, 2, 66.67},
		// 200/600*100 = 33.333... -> 33.33
		{"repeating decimal rounds down", models.Sale{Cash: 600, TotalSold: 200}, 2, 33.33},
		// margin negatif: -50/100*100 = -50
		{"negative margin", models.Sale{Cash: 100, TotalSold: 150}, 1, -50},
		// 25/200*100 = 12.5, dua desimal pas
		{"exact two decimals", models.Sale{Cash: 200, TotalSold: 175}, 1, 12.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ComputeSaleMetrics(tt.sale, tt.cogs)
			if m.GrossMarginPercentage != tt.wantPct {
				t.Fatalf("GrossMarginPercentage = %v, want %v", m.GrossMarginPercentage, tt.wantPct)
			}
		})
	}
}

func TestMTDPeriod(t *testing.T) {
	tests := []struct {
		ref       string
		wantStart string
		wantEnd   string
	}{
		{"2024-03-05", "2024-02-11", "2024-03-10"},
		{"2024-03-15", "2024-03-11", "2024-04-10"},
		{"2024-01-05", "2023-12-11", "2024-01-10"}, // rollover mundur lewat tahun baru
		{"2024-12-15", "2024-12-11", "2025-01-10"}, // rollover maju lewat tahun baru
		{"2024-03-10", "2024-02-11", "2024-03-10"}, // tanggal 10 masih periode lama
		{"2024-03-11", "2024-03-11", "2024-04-10"}, // tanggal 11 membuka periode baru
		{"2024-01-10", "2023-12-11", "2024-01-10"},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			ref, err := time.Parse("2006-01-02", tt.ref)
			if err != nil {
				t.Fatalf("bad test date: %v", err)
			}
			start, end := MTDPeriod(ref)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Fatalf("MTDPeriod(%s) = (%s, %s), want (%s, %s)", tt.ref, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestComputeMTDSummary(t *testing.T) {
	sales := []models.Sale{
		{Cash: 500000, Qris: 100000, TotalSold: 300},
		{Gofood: 250000, TotalSold: 120},
	}
	expenses := []models.Expense{
		{Type: models.ExpenseHarian, Amount: 50000},
		{Type: models.ExpenseGaji, Amount: 200000}, // gaji ikut total agregat
	}

	sum := ComputeMTDSummary("o1", "Pukis Kota", sales, expenses, 1000)

	if sum.TotalRevenue != 850000 {
		t.Fatalf("TotalRevenue = %v, want 850000", sum.TotalRevenue)
	}
	if sum.TotalSold != 420 {
		t.Fatalf("TotalSold = %v, want 420", sum.TotalSold)
	}
	if sum.TotalCogs != 420000 {
		t.Fatalf("TotalCogs = %v, want 420000", sum.TotalCogs)
	}
	if sum.TotalExpenses != 250000 {
		t.Fatalf("TotalExpenses = %v, want 250000 (gaji included)", sum.TotalExpenses)
	}
	if sum.GrossProfit != 430000 {
		t.Fatalf("GrossProfit = %v, want 430000", sum.GrossProfit)
	}
	if sum.NetProfit != 180000 {
		t.Fatalf("NetProfit = %v, want 180000", sum.NetProfit)
	}
	if sum.DaysCount != 2 {
		t.Fatalf("DaysCount = %v, want 2 (count of sale rows, not calendar days)", sum.DaysCount)
	}
}

func TestComputeMTDSummaryEmpty(t *testing.T) {
	sum := ComputeMTDSummary("o1", "Pukis Kota", nil, nil, 1000)
	if sum.TotalRevenue != 0 || sum.NetProfit != 0 || sum.DaysCount != 0 {
		t.Fatalf("empty summary should be all zero, got %+v", sum)
	}
}
