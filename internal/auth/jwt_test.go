package auth

import (
	"testing"

	"pukis-backend/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := "test-secret-at-least-32-characters!!"
	email := "kasir@pukis.id"
	outletID := "outlet-1"

	user := &models.User{
		ID:               "user-1",
		Email:            &email,
		Role:             models.RoleAdminOutlet,
		AssignedOutletID: &outletID,
	}

	token, err := GenerateToken(secret, user)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("UserID = %s, want user-1", claims.UserID)
	}
	if claims.Role != models.RoleAdminOutlet {
		t.Fatalf("Role = %s, want admin_outlet", claims.Role)
	}
	if claims.OutletID == nil || *claims.OutletID != "outlet-1" {
		t.Fatalf("OutletID = %v, want outlet-1", claims.OutletID)
	}
	if claims.Email != "kasir@pukis.id" {
		t.Fatalf("Email = %s", claims.Email)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: "user-1", Role: models.RoleOwner}

	token, err := GenerateToken("secret-one-32-characters-long!!!", user)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseToken("secret-two-32-characters-long!!!", token); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}
}
