package service

import (
	"context"
	"errors"
	"testing"

	"pukis-backend/internal/models"
	"pukis-backend/internal/store/memory"
)

type testEnv struct {
	store    *memory.Store
	outlets  *Outlets
	sales    *Sales
	expenses *Expenses
	users    *Users
}

func newTestEnv() *testEnv {
	st := memory.New()
	return &testEnv{
		store:    st,
		outlets:  NewOutlets(st),
		sales:    NewSales(st),
		expenses: NewExpenses(st),
		users:    NewUsers(st),
	}
}

func (e *testEnv) mustOutlet(t *testing.T, name string, cogs float64) models.Outlet {
	t.Helper()
	o := models.Outlet{Name: name, CogsPerPiece: cogs}
	if err := e.store.CreateOutlet(context.Background(), &o); err != nil {
		t.Fatalf("create outlet: %v", err)
	}
	return o
}

func superAdmin() models.Principal {
	return models.Principal{UserID: "u-super", Role: models.RoleSuperAdmin}
}

func owner() models.Principal {
	return models.Principal{UserID: "u-owner", Role: models.RoleOwner}
}

func finance() models.Principal {
	return models.Principal{UserID: "u-fin", Role: models.RoleFinance}
}

func outletAdmin(outletID string) models.Principal {
	return models.Principal{UserID: "u-adm", Role: models.RoleAdminOutlet, AssignedOutletID: &outletID}
}

func wantKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	var se *Error
	if !errors.As(err, &se) {
		t.Fatalf("expected *service.Error, got %v", err)
	}
	if se.Kind != kind {
		t.Fatalf("error kind = %v (%q), want %v", se.Kind, se.Message, kind)
	}
}

func strPtr(s string) *string     { return &s }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
