package service

import (
	"context"
	"testing"

	"pukis-backend/internal/models"
)

func seedExpenses(t *testing.T, env *testEnv, outletID string) (harian, gaji *models.Expense) {
	t.Helper()
	ctx := context.Background()

	h, err := env.expenses.Create(ctx, owner(), CreateExpenseInput{
		OutletID: outletID, Date: "2024-03-01", Type: models.ExpenseHarian,
		Description: "beli gas", Amount: 25000,
	})
	if err != nil {
		t.Fatalf("create harian: %v", err)
	}
	g, err := env.expenses.Create(ctx, owner(), CreateExpenseInput{
		OutletID: outletID, Date: "2024-03-02", Type: models.ExpenseGaji,
		Description: "gaji mingguan", Amount: 400000,
	})
	if err != nil {
		t.Fatalf("create gaji: %v", err)
	}
	return h, g
}

func TestListExpensesHidesGajiFromNonOwners(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	o := env.mustOutlet(t, "Pukis Pasar", 1000)
	harian, _ := seedExpenses(t, env, o.ID)

	for _, p := range []models.Principal{finance(), outletAdmin(o.ID)} {
		rows, err := env.expenses.List(ctx, p, ListExpensesInput{})
		if err != nil {
			t.Fatalf("list as %s: %v", p.Role, err)
		}
		if len(rows) != 1 || rows[0].ID != harian.ID {
			t.Fatalf("role %s should only see non-gaji rows, got %d rows", p.Role, len(rows))
		}
		for _, r := range rows {
			if r.Type == models.ExpenseGaji {
				t.Fatalf("gaji row leaked to role %s", p.Role)
			}
		}
	}

	// owner dan super admin melihat keduanya
	for _, p := range []models.Principal{owner(), superAdmin()} {
		rows, err := env.expenses.List(ctx, p, ListExpensesInput{})
		if err != nil {
			t.Fatalf("list as %s: %v", p.Role, err)
		}
		if len(rows) != 2 {
			t.Fatalf("role %s should see both rows, got %d", p.Role, len(rows))
		}
	}
}

func TestGetGajiExpenseForbiddenNotFiltered(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	o := env.mustOutlet(t, "Pukis Pasar", 1000)
	_, gaji := seedExpenses(t, env, o.ID)

	// detail = error terang-terangan, bukan not found
	_, err := env.expenses.Get(ctx, outletAdmin(o.ID), gaji.ID)
	wantKind(t, err, KindForbidden)

	_, err = env.expenses.Get(ctx, finance(), gaji.ID)
	wantKind(t, err, KindForbidden)

	got, err := env.expenses.Get(ctx, owner(), gaji.ID)
	if err != nil {
		t.Fatalf("owner should read gaji detail: %v", err)
	}
	if got.Amount != 400000 {
		t.Fatalf("unexpected gaji row: %+v", got)
	}
}

func TestCreateGajiExpenseRequiresOwnerRole(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	o := env.mustOutlet(t, "Pukis Pasar", 1000)

	in := CreateExpenseInput{
		OutletID: o.ID, Date: "2024-03-01", Type: models.ExpenseGaji,
		Description: "gaji", Amount: 100000,
	}

	_, err := env.expenses.Create(ctx, finance(), in)
	wantKind(t, err, KindForbidden)

	_, err = env.expenses.Create(ctx, outletAdmin(o.ID), in)
	wantKind(t, err, KindForbidden)

	if _, err := env.expenses.Create(ctx, superAdmin(), in); err != nil {
		t.Fatalf("super admin should create gaji: %v", err)
	}
}

func TestUpdateCannotPromoteToGaji(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	o := env.mustOutlet(t, "Pukis Pasar", 1000)
	harian, gaji := seedExpenses(t, env, o.ID)

	gajiType := models.ExpenseGaji
	_, err := env.expenses.Update(ctx, finance(), harian.ID, UpdateExpenseInput{Type: &gajiType})
	wantKind(t, err, KindForbidden)

	// record gaji yang sudah ada juga tidak boleh disentuh non-owner
	_, err = env.expenses.Update(ctx, finance(), gaji.ID, UpdateExpenseInput{Amount: floatPtr(1)})
	wantKind(t, err, KindForbidden)

	err = env.expenses.Delete(ctx, outletAdmin(o.ID), gaji.ID)
	wantKind(t, err, KindForbidden)
}

func TestExpensePartialUpdate(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	o := env.mustOutlet(t, "Pukis Pasar", 1000)
	harian, _ := seedExpenses(t, env, o.ID)

	got, err := env.expenses.Update(ctx, owner(), harian.ID, UpdateExpenseInput{Amount: floatPtr(30000)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Amount != 30000 {
		t.Fatalf("Amount = %v, want 30000", got.Amount)
	}
	if got.Description != "beli gas" || got.Date != "2024-03-01" || got.Type != models.ExpenseHarian {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestExpenseValidation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	o := env.mustOutlet(t, "Pukis Pasar", 1000)

	_, err := env.expenses.Create(ctx, owner(), CreateExpenseInput{
		OutletID: o.ID, Date: "2024-03-01", Description: "x", Amount: -5,
	})
	wantKind(t, err, KindInvalid)

	_, err = env.expenses.Create(ctx, owner(), CreateExpenseInput{
		OutletID: o.ID, Date: "2024-03-01", Description: " ", Amount: 5,
	})
	wantKind(t, err, KindInvalid)

	_, err = env.expenses.Create(ctx, owner(), CreateExpenseInput{
		OutletID: o.ID, Date: "2024-03-01", Type: "mingguan", Description: "x", Amount: 5,
	})
	wantKind(t, err, KindInvalid)

	// tanpa tipe -> harian
	e, err := env.expenses.Create(ctx, owner(), CreateExpenseInput{
		OutletID: o.ID, Date: "2024-03-01", Description: "es batu", Amount: 5000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.Type != models.ExpenseHarian {
		t.Fatalf("default type = %s, want harian", e.Type)
	}
}

func TestAdminOutletExpenseListForcedToOwnOutlet(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	o1 := env.mustOutlet(t, "Pukis Alun-Alun", 1000)
	o2 := env.mustOutlet(t, "Pukis Stasiun", 1000)
	seedExpenses(t, env, o1.ID)
	seedExpenses(t, env, o2.ID)

	rows, err := env.expenses.List(ctx, outletAdmin(o1.ID), ListExpensesInput{OutletID: o2.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, r := range rows {
		if r.OutletID != o1.ID {
			t.Fatalf("foreign outlet expense leaked: %+v", r)
		}
	}
}
