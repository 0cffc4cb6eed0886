package service

import (
	"context"
	"testing"

	"pukis-backend/internal/models"
)

func seedSuperAdmin(t *testing.T, env *testEnv) models.User {
	t.Helper()
	email := "superadmin@pukis.id"
	u := models.User{Email: &email, Role: models.RoleSuperAdmin}
	if err := env.store.CreateUser(context.Background(), &u); err != nil {
		t.Fatalf("seed super admin: %v", err)
	}
	return u
}

func TestUserManagementRequiresSuperAdmin(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	for _, p := range []models.Principal{owner(), finance(), outletAdmin("o1")} {
		_, err := env.users.ListAdmins(ctx, p)
		wantKind(t, err, KindForbidden)

		_, err = env.users.CreateAdmin(ctx, p, CreateAdminInput{Email: "a@pukis.id"})
		wantKind(t, err, KindForbidden)

		err = env.users.DeleteAdmin(ctx, p, "some-id")
		wantKind(t, err, KindForbidden)
	}
}

func TestCreateAdmin(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	o := env.mustOutlet(t, "Pukis Pasar", 1000)

	u, err := env.users.CreateAdmin(ctx, superAdmin(), CreateAdminInput{
		Email:            "Kasir@Pukis.ID",
		FirstName:        strPtr("Kasir"),
		Role:             models.RoleAdminOutlet,
		Password:         strPtr("rahasia123"),
		AssignedOutletID: &o.ID,
	})
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}
	if u.Email == nil || *u.Email != "kasir@pukis.id" {
		t.Fatalf("email not normalized: %v", u.Email)
	}
	if u.PasswordHash == nil || *u.PasswordHash == "rahasia123" {
		t.Fatal("password must be stored hashed")
	}

	// email duplikat ditolak
	_, err = env.users.CreateAdmin(ctx, superAdmin(), CreateAdminInput{Email: "kasir@pukis.id"})
	wantKind(t, err, KindInvalid)

	// admin_outlet tanpa outlet ditolak
	_, err = env.users.CreateAdmin(ctx, superAdmin(), CreateAdminInput{
		Email: "lain@pukis.id", Role: models.RoleAdminOutlet,
	})
	wantKind(t, err, KindInvalid)

	// role default owner
	def, err := env.users.CreateAdmin(ctx, superAdmin(), CreateAdminInput{Email: "owner2@pukis.id"})
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}
	if def.Role != models.RoleOwner {
		t.Fatalf("default role = %s, want owner", def.Role)
	}
}

func TestDeleteSuperAdminAlwaysForbidden(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	protected := seedSuperAdmin(t, env)

	// bahkan sesama super admin tidak boleh
	err := env.users.DeleteAdmin(ctx, superAdmin(), protected.ID)
	wantKind(t, err, KindForbidden)

	err = env.users.DeleteAdmin(ctx, superAdmin(), "no-such-id")
	wantKind(t, err, KindNotFound)
}

func TestListAdminsExcludesSuperAdmin(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	seedSuperAdmin(t, env)

	if _, err := env.users.CreateAdmin(ctx, superAdmin(), CreateAdminInput{Email: "fin@pukis.id", Role: models.RoleFinance}); err != nil {
		t.Fatalf("create admin: %v", err)
	}

	admins, err := env.users.ListAdmins(ctx, superAdmin())
	if err != nil {
		t.Fatalf("list admins: %v", err)
	}
	if len(admins) != 1 {
		t.Fatalf("want 1 admin, got %d", len(admins))
	}
	if admins[0].Role == models.RoleSuperAdmin {
		t.Fatal("super admin leaked into admin list")
	}

	if err := env.users.DeleteAdmin(ctx, superAdmin(), admins[0].ID); err != nil {
		t.Fatalf("delete admin: %v", err)
	}
	admins, err = env.users.ListAdmins(ctx, superAdmin())
	if err != nil {
		t.Fatalf("list admins: %v", err)
	}
	if len(admins) != 0 {
		t.Fatalf("admin not deleted, %d left", len(admins))
	}
}
