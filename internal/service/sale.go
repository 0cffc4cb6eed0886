package service

import (
	"context"
	"errors"
	"time"

	"pukis-backend/internal/metrics"
	"pukis-backend/internal/models"
	"pukis-backend/internal/policy"
	"pukis-backend/internal/store"
)

const dateLayout = "2006-01-02"

type Sales struct {
	store store.Store
}

func NewSales(s store.Store) *Sales {
	return &Sales{store: s}
}

// SaleView adalah satu baris penjualan beserta metrik turunannya dan
// konteks outlet. Metrik selalu dihitung ulang di server, tidak pernah
// dipercaya dari klien.
type SaleView struct {
	models.Sale
	metrics.SaleMetrics
	OutletName   string
	CogsPerPiece float64
}

func (s *Sales) view(sale models.Sale, outlet *models.Outlet) SaleView {
	var name string
	var cogs float64
	if outlet != nil {
		name = outlet.Name
		cogs = outlet.CogsPerPiece
	}
	return SaleView{
		Sale:         sale,
		SaleMetrics:  metrics.ComputeSaleMetrics(sale, cogs),
		OutletName:   name,
		CogsPerPiece: cogs,
	}
}

func (s *Sales) viewByID(ctx context.Context, sale models.Sale) (SaleView, error) {
	outlet, err := s.store.GetOutlet(ctx, sale.OutletID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return SaleView{}, err
	}
	return s.view(sale, outlet), nil
}

type ListSalesInput struct {
	OutletID  string
	StartDate string
	EndDate   string
}

// List mengembalikan penjualan terurut tanggal menurun, dengan metrik.
// Untuk admin_outlet, filter outlet dipaksa ke outlet tugasnya apapun
// yang diminta.
func (s *Sales) List(ctx context.Context, p models.Principal, in ListSalesInput) ([]SaleView, error) {
	f := store.SaleFilter{
		OutletID:  in.OutletID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	}
	if p.Role == models.RoleAdminOutlet {
		if p.AssignedOutletID == nil {
			return []SaleView{}, nil
		}
		f.OutletID = *p.AssignedOutletID
	}

	sales, err := s.store.ListSales(ctx, f)
	if err != nil {
		return nil, err
	}

	outlets, err := s.store.ListOutlets(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Outlet, len(outlets))
	for _, o := range outlets {
		byID[o.ID] = o
	}

	views := make([]SaleView, 0, len(sales))
	for _, sale := range sales {
		var outlet *models.Outlet
		if o, ok := byID[sale.OutletID]; ok {
			outlet = &o
		}
		views = append(views, s.view(sale, outlet))
	}
	return views, nil
}

func (s *Sales) Get(ctx context.Context, p models.Principal, id string) (SaleView, error) {
	sale, err := s.store.GetSale(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return SaleView{}, notFound("Data penjualan tidak ditemukan")
	}
	if err != nil {
		return SaleView{}, err
	}
	if !policy.CanReadSale(p.Role, p.AssignedOutletID, sale.OutletID) {
		return SaleView{}, forbidden("Anda tidak memiliki akses ke data ini")
	}
	return s.viewByID(ctx, *sale)
}

type CreateSaleInput struct {
	OutletID        string
	Date            string
	Cash            int
	Qris            int
	Grab            int
	Gofood          int
	Shopee          int
	Tiktok          int
	TotalSold       int
	Remaining       int
	Returned        int
	TotalProduction int
	SoldOutTime     *string
}

func (in CreateSaleInput) validate() error {
	if in.OutletID == "" {
		return invalid("outlet_id wajib diisi")
	}
	if _, err := time.Parse(dateLayout, in.Date); err != nil {
		return invalid("Format tanggal harus 'YYYY-MM-DD'")
	}
	for _, v := range []int{in.Cash, in.Qris, in.Grab, in.Gofood, in.Shopee, in.Tiktok} {
		if v < 0 {
			return invalid("Omzet per kanal tidak boleh negatif")
		}
	}
	for _, v := range []int{in.TotalSold, in.Remaining, in.Returned, in.TotalProduction} {
		if v < 0 {
			return invalid("Jumlah unit tidak boleh negatif")
		}
	}
	return nil
}

// Create menolak dengan conflict bila outlet sudah punya penjualan untuk
// tanggal yang sama. Pemeriksaan di sini hanya jalur cepat; unique index
// di store yang memutus balapan, dan ErrDuplicate dari sana juga
// diterjemahkan menjadi conflict.
func (s *Sales) Create(ctx context.Context, p models.Principal, in CreateSaleInput) (SaleView, error) {
	if err := in.validate(); err != nil {
		return SaleView{}, err
	}
	if !policy.CanWriteSale(p.Role, p.AssignedOutletID, in.OutletID) {
		return SaleView{}, forbidden("Anda tidak memiliki akses ke outlet ini")
	}

	outlet, err := s.store.GetOutlet(ctx, in.OutletID)
	if errors.Is(err, store.ErrNotFound) {
		return SaleView{}, notFound("Outlet tidak ditemukan")
	}
	if err != nil {
		return SaleView{}, err
	}

	if _, err := s.store.FindSaleByOutletAndDate(ctx, in.OutletID, in.Date); err == nil {
		return SaleView{}, conflict("Data penjualan untuk tanggal ini sudah ada")
	} else if !errors.Is(err, store.ErrNotFound) {
		return SaleView{}, err
	}

	sale := &models.Sale{
		OutletID:        in.OutletID,
		Date:            in.Date,
		Cash:            in.Cash,
		Qris:            in.Qris,
		Grab:            in.Grab,
		Gofood:          in.Gofood,
		Shopee:          in.Shopee,
		Tiktok:          in.Tiktok,
		TotalSold:       in.TotalSold,
		Remaining:       in.Remaining,
		Returned:        in.Returned,
		TotalProduction: in.TotalProduction,
		SoldOutTime:     in.SoldOutTime,
	}
	if err := s.store.CreateSale(ctx, sale); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return SaleView{}, conflict("Data penjualan untuk tanggal ini sudah ada")
		}
		return SaleView{}, err
	}
	return s.view(*sale, outlet), nil
}

type UpdateSaleInput struct {
	Cash            *int
	Qris            *int
	Grab            *int
	Gofood          *int
	Shopee          *int
	Tiktok          *int
	TotalSold       *int
	Remaining       *int
	Returned        *int
	TotalProduction *int
	SoldOutTime     *string
}

// Update menerapkan patch field-per-field: hanya field yang dikirim yang
// berubah, sisanya tidak disentuh.
func (s *Sales) Update(ctx context.Context, p models.Principal, id string, in UpdateSaleInput) (SaleView, error) {
	sale, err := s.store.GetSale(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return SaleView{}, notFound("Data penjualan tidak ditemukan")
	}
	if err != nil {
		return SaleView{}, err
	}
	if !policy.CanWriteSale(p.Role, p.AssignedOutletID, sale.OutletID) {
		return SaleView{}, forbidden("Anda tidak memiliki akses ke data ini")
	}

	for _, f := range []struct {
		src *int
		dst *int
	}{
		{in.Cash, &sale.Cash},
		{in.Qris, &sale.Qris},
		{in.Grab, &sale.Grab},
		{in.Gofood, &sale.Gofood},
		{in.Shopee, &sale.Shopee},
		{in.Tiktok, &sale.Tiktok},
		{in.TotalSold, &sale.TotalSold},
		{in.Remaining, &sale.Remaining},
		{in.Returned, &sale.Returned},
		{in.TotalProduction, &sale.TotalProduction},
	} {
		if f.src != nil {
			if *f.src < 0 {
				return SaleView{}, invalid("Nilai tidak boleh negatif")
			}
			*f.dst = *f.src
		}
	}
	if in.SoldOutTime != nil {
		sale.SoldOutTime = in.SoldOutTime
	}

	if err := s.store.SaveSale(ctx, sale); err != nil {
		return SaleView{}, err
	}
	return s.viewByID(ctx, *sale)
}

func (s *Sales) Delete(ctx context.Context, p models.Principal, id string) error {
	sale, err := s.store.GetSale(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return notFound("Data penjualan tidak ditemukan")
	}
	if err != nil {
		return err
	}
	if !policy.CanWriteSale(p.Role, p.AssignedOutletID, sale.OutletID) {
		return forbidden("Anda tidak memiliki akses ke data ini")
	}
	return s.store.DeleteSale(ctx, id)
}

// MTD mengembalikan penjualan di dalam siklus 11–10 yang memuat ref,
// dengan metrik, urut tanggal menurun.
func (s *Sales) MTD(ctx context.Context, p models.Principal, ref time.Time, outletID string) ([]SaleView, error) {
	start, end := metrics.MTDPeriod(ref)
	return s.List(ctx, p, ListSalesInput{OutletID: outletID, StartDate: start, EndDate: end})
}

// MTDSummaries menghitung satu ringkasan per outlet yang terlihat oleh
// caller untuk siklus 11–10 yang memuat ref. Total pengeluaran memuat
// SEMUA tipe termasuk gaji, untuk role apapun: agregat sengaja berbeda
// dari aturan visibilitas daftar.
func (s *Sales) MTDSummaries(ctx context.Context, p models.Principal, ref time.Time) ([]metrics.MTDSummary, error) {
	start, end := metrics.MTDPeriod(ref)

	var outlets []models.Outlet
	if p.Role == models.RoleAdminOutlet {
		if p.AssignedOutletID == nil {
			return []metrics.MTDSummary{}, nil
		}
		o, err := s.store.GetOutlet(ctx, *p.AssignedOutletID)
		if errors.Is(err, store.ErrNotFound) {
			return []metrics.MTDSummary{}, nil
		}
		if err != nil {
			return nil, err
		}
		outlets = []models.Outlet{*o}
	} else {
		var err error
		outlets, err = s.store.ListOutlets(ctx)
		if err != nil {
			return nil, err
		}
	}

	summaries := make([]metrics.MTDSummary, 0, len(outlets))
	for _, o := range outlets {
		sales, err := s.store.ListSales(ctx, store.SaleFilter{OutletID: o.ID, StartDate: start, EndDate: end})
		if err != nil {
			return nil, err
		}
		expenses, err := s.store.ListExpenses(ctx, store.ExpenseFilter{OutletID: o.ID, StartDate: start, EndDate: end})
		if err != nil {
			return nil, err
		}

		sum := metrics.ComputeMTDSummary(o.ID, o.Name, sales, expenses, o.CogsPerPiece)
		sum.PeriodStart = start
		sum.PeriodEnd = end
		summaries = append(summaries, sum)
	}
	return summaries, nil
}
