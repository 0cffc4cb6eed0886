package service

import (
	"context"
	"testing"

	"pukis-backend/internal/store"
)

func TestOutletWriteRestrictedToOwnerRoles(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	in := CreateOutletInput{Name: "Pukis Baru", CogsPerPiece: 1200}

	_, err := env.outlets.Create(ctx, finance(), in)
	wantKind(t, err, KindForbidden)

	_, err = env.outlets.Create(ctx, outletAdmin("o1"), in)
	wantKind(t, err, KindForbidden)

	o, err := env.outlets.Create(ctx, owner(), in)
	if err != nil {
		t.Fatalf("owner create: %v", err)
	}

	_, err = env.outlets.Update(ctx, finance(), o.ID, UpdateOutletInput{Name: strPtr("X")})
	wantKind(t, err, KindForbidden)

	err = env.outlets.Delete(ctx, outletAdmin(o.ID), o.ID)
	wantKind(t, err, KindForbidden)
}

func TestOutletValidation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.outlets.Create(ctx, owner(), CreateOutletInput{Name: "  "})
	wantKind(t, err, KindInvalid)

	_, err = env.outlets.Create(ctx, owner(), CreateOutletInput{Name: "Pukis", CogsPerPiece: -1})
	wantKind(t, err, KindInvalid)
}

func TestOutletPartialUpdate(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	o := env.mustOutlet(t, "Pukis Lama", 900)

	got, err := env.outlets.Update(ctx, superAdmin(), o.ID, UpdateOutletInput{CogsPerPiece: floatPtr(1100)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.CogsPerPiece != 1100 {
		t.Fatalf("CogsPerPiece = %v, want 1100", got.CogsPerPiece)
	}
	if got.Name != "Pukis Lama" {
		t.Fatalf("Name changed by partial update: %s", got.Name)
	}
}

func TestAdminOutletSeesOnlyAssignedOutlet(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	o1 := env.mustOutlet(t, "Pukis Alun-Alun", 1000)
	o2 := env.mustOutlet(t, "Pukis Stasiun", 1000)

	list, err := env.outlets.List(ctx, outletAdmin(o1.ID))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != o1.ID {
		t.Fatalf("admin outlet list = %d rows, want only assigned outlet", len(list))
	}

	_, err = env.outlets.Get(ctx, outletAdmin(o1.ID), o2.ID)
	wantKind(t, err, KindForbidden)

	all, err := env.outlets.List(ctx, finance())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("finance should see all outlets, got %d", len(all))
	}
}

func TestDeleteOutletCascades(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	o := env.mustOutlet(t, "Pukis Tutup", 1000)
	keep := env.mustOutlet(t, "Pukis Bertahan", 1000)

	for _, date := range []string{"2024-03-01", "2024-03-02"} {
		if _, err := env.sales.Create(ctx, owner(), CreateSaleInput{OutletID: o.ID, Date: date, Cash: 1000}); err != nil {
			t.Fatalf("create sale: %v", err)
		}
	}
	if _, err := env.sales.Create(ctx, owner(), CreateSaleInput{OutletID: keep.ID, Date: "2024-03-01", Cash: 1}); err != nil {
		t.Fatalf("create sale: %v", err)
	}
	if _, err := env.expenses.Create(ctx, owner(), CreateExpenseInput{
		OutletID: o.ID, Date: "2024-03-01", Description: "gas", Amount: 100,
	}); err != nil {
		t.Fatalf("create expense: %v", err)
	}

	if err := env.outlets.Delete(ctx, owner(), o.ID); err != nil {
		t.Fatalf("delete outlet: %v", err)
	}

	sales, err := env.store.ListSales(ctx, store.SaleFilter{OutletID: o.ID})
	if err != nil {
		t.Fatalf("list sales: %v", err)
	}
	if len(sales) != 0 {
		t.Fatalf("orphaned sales after outlet delete: %d", len(sales))
	}
	expenses, err := env.store.ListExpenses(ctx, store.ExpenseFilter{OutletID: o.ID})
	if err != nil {
		t.Fatalf("list expenses: %v", err)
	}
	if len(expenses) != 0 {
		t.Fatalf("orphaned expenses after outlet delete: %d", len(expenses))
	}

	// outlet lain tidak tersentuh
	remaining, err := env.store.ListSales(ctx, store.SaleFilter{OutletID: keep.ID})
	if err != nil {
		t.Fatalf("list sales: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("unrelated outlet lost sales: %d", len(remaining))
	}

	err = env.outlets.Delete(ctx, owner(), o.ID)
	wantKind(t, err, KindNotFound)
}
