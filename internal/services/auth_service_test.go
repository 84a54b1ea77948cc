package services_test

import (
	"errors"
	"strings"
	"testing"

	"photonx/internal/domain"
	"photonx/internal/repos"
	"photonx/internal/services"
)

func authSvc(t *testing.T) *services.AuthService {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return services.NewAuthService(repos.NewUserRepo(db), "test-secret")
}

func TestAuthRegisterLoginResolve(t *testing.T) {
	svc := authSvc(t)

	tok, u, err := svc.Register("Mira", "mira@photonx.test", "S3cret!pw")
	if err != nil {
		t.Fatal(err)
	}
	if tok == "" || u.ID == "" {
		t.Fatalf("register should issue a token and an id: tok=%q user=%+v", tok, u)
	}
	if strings.Contains(u.Hash, "S3cret!pw") {
		t.Fatal("credential stored in plaintext")
	}

	// duplicate email
	if _, _, err := svc.Register("Mira2", "mira@photonx.test", "S3cret!pw"); !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("want ErrDuplicate, got %v", err)
	}

	// wrong password
	if _, _, err := svc.Login("mira@photonx.test", "wrong"); !errors.Is(err, services.ErrBadCreds) {
		t.Fatalf("want ErrBadCreds, got %v", err)
	}

	tok2, _, err := svc.Login("mira@photonx.test", "S3cret!pw")
	if err != nil {
		t.Fatal(err)
	}
	got, err := svc.ResolveToken(tok2)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != u.ID {
		t.Fatalf("token resolved to wrong user: %s != %s", got.ID, u.ID)
	}

	if _, err := svc.ResolveToken("garbage"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("want ErrForbidden, got %v", err)
	}
}

func TestAuthResetPassword(t *testing.T) {
	svc := authSvc(t)

	tok, _, err := svc.Register("Mira", "mira@photonx.test", "S3cret!pw")
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.ResetPassword(tok, "N3w!passwd"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Login("mira@photonx.test", "S3cret!pw"); !errors.Is(err, services.ErrBadCreds) {
		t.Fatalf("old password must stop working, got %v", err)
	}
	if _, _, err := svc.Login("mira@photonx.test", "N3w!passwd"); err != nil {
		t.Fatalf("new password must work: %v", err)
	}
	if err := svc.ResetPassword("garbage", "whatever!1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("want ErrForbidden for bad token, got %v", err)
	}
}
