package handlers_test

import (
	"net/http"
	"testing"
	"time"
)

func TestAuthGate_MissingHeaderIs401(t *testing.T) {
	app, _, _ := testApp(t)

	resp, err := app.Test(jsonReq("GET", "/api/Cart/token", "", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", resp.StatusCode)
	}
}

func TestAuthGate_InvalidTokenIs403(t *testing.T) {
	app, _, _ := testApp(t)

	resp, err := app.Test(jsonReq("GET", "/api/Cart/token", "not-a-jwt", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("want 403, got %d", resp.StatusCode)
	}
}

func TestAuthGate_ExpiredTokenIs403(t *testing.T) {
	app, _, authSvc := testApp(t)

	// Issue an already-expired token against the same secret and user.
	expired := *authSvc
	expired.TokenTTL = -time.Hour
	tok, _, err := expired.Login("asha@photonx.test", "Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}

	resp, err := app.Test(jsonReq("GET", "/api/Cart/token", tok, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("want 403 for expired token, got %d", resp.StatusCode)
	}
}

func TestAuthGate_ValidTokenResolvesIdentity(t *testing.T) {
	app, _, _ := testApp(t)
	tok := loginToken(t, app, "asha@photonx.test")

	// No cart yet: the gate lets the request through and the handler 404s.
	resp, err := app.Test(jsonReq("GET", "/api/Cart/token", tok, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404 for empty cart, got %d", resp.StatusCode)
	}
}
