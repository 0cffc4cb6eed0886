// Package metrics menghitung angka finansial turunan dari data penjualan
// dan pengeluaran. Semua fungsi deterministik dan tanpa efek samping;
// input berupa snapshot baris yang sudah diambil oleh caller.
package metrics

import (
	"math"
	"time"

	"pukis-backend/internal/models"
)

const dateLayout = "2006-01-02"

type SaleMetrics struct {
	TotalRevenue          float64
	CogsSold              float64
	GrossMargin           float64
	GrossMarginPercentage float64
}

// ComputeSaleMetrics menghitung metrik per-sale dari enam kanal omzet dan
// modal per biji outlet. Persentase margin 0 saat omzet 0.
func ComputeSaleMetrics(s models.Sale, cogsPerPiece float64) SaleMetrics {
	totalRevenue := float64(s.Cash + s.Qris + s.Grab + s.Gofood + s.Shopee + s.Tiktok)
	cogsSold := float64(s.TotalSold) * cogsPerPiece
	grossMargin := totalRevenue - cogsSold

	var pct float64
	if totalRevenue > 0 {
		pct = round2(grossMargin / totalRevenue * 100)
	}

	return SaleMetrics{
		TotalRevenue:          totalRevenue,
		CogsSold:              cogsSold,
		GrossMargin:           grossMargin,
		GrossMarginPercentage: pct,
	}
}

// round2 membulatkan ke 2 desimal, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MTDPeriod mengembalikan rentang inklusif [start, end] dari siklus
// "bulan berjalan" yang memuat ref. Siklus bisnis berjalan dari tanggal
// 11 suatu bulan sampai tanggal 10 bulan berikutnya, mengikuti siklus
// penagihan pertengahan bulan. Hasil berupa string "YYYY-MM-DD" karena
// tanggal disimpan dan dibandingkan sebagai string.
func MTDPeriod(ref time.Time) (string, string) {
	y, m, d := ref.Date()

	var start, end time.Time
	if d <= 10 {
		start = time.Date(y, m-1, 11, 0, 0, 0, 0, time.UTC)
		end = time.Date(y, m, 10, 0, 0, 0, 0, time.UTC)
	} else {
		start = time.Date(y, m, 11, 0, 0, 0, 0, time.UTC)
		end = time.Date(y, m+1, 10, 0, 0, 0, 0, time.UTC)
	}

	// time.Date menormalkan month 0 dan 13, jadi rollover tahun aman.
	return start.Format(dateLayout), end.Format(dateLayout)
}

type MTDSummary struct {
	OutletID      string  `json:"outlet_id"`
	OutletName    string  `json:"outlet_name"`
	PeriodStart   string  `json:"period_start"`
	PeriodEnd     string  `json:"period_end"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	TotalCogs     float64 `json:"total_cogs"`
	GrossProfit   float64 `json:"gross_profit"`
	NetProfit     float64 `json:"net_profit"`
	TotalSold     int     `json:"total_sold"`
	DaysCount     int     `json:"days_count"`
}

// ComputeMTDSummary mengagregasi sales dan expenses satu outlet untuk satu
// periode. Caller yang memfilter baris ke dalam periode; fungsi ini hanya
// menjumlahkan. Pengeluaran gaji ikut dihitung di total meskipun
// disembunyikan dari daftar untuk role non-owner: total agregat memang
// sengaja memuat semua tipe. DaysCount adalah jumlah baris sale, bukan
// jumlah hari kalender.
func ComputeMTDSummary(outletID, outletName string, sales []models.Sale, expenses []models.Expense, cogsPerPiece float64) MTDSummary {
	var totalRevenue float64
	var totalSold int
	for _, s := range sales {
		totalRevenue += float64(s.Cash + s.Qris + s.Grab + s.Gofood + s.Shopee + s.Tiktok)
		totalSold += s.TotalSold
	}

	var totalExpenses float64
	for _, e := range expenses {
		totalExpenses += e.Amount
	}

	totalCogs := float64(totalSold) * cogsPerPiece
	grossProfit := totalRevenue - totalCogs

	return MTDSummary{
		OutletID:      outletID,
		OutletName:    outletName,
		TotalRevenue:  totalRevenue,
		TotalExpenses: totalExpenses,
		TotalCogs:     totalCogs,
		GrossProfit:   grossProfit,
		NetProfit:     grossProfit - totalExpenses,
		TotalSold:     totalSold,
		DaysCount:     len(sales),
	}
}
