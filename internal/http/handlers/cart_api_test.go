package handlers_test

import (
	"net/http"
	"testing"
)

func TestCartAPI_AddAndFetch(t *testing.T) {
	app, _, _ := testApp(t)
	tok := loginToken(t, app, "asha@photonx.test")

	resp, err := app.Test(jsonReq("POST", "/api/Cart/add", tok, map[string]any{
		"productId": "p1", "quantity": 2,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var cart struct {
		TotalPrice float64 `json:"totalPrice"`
	}
	decodeBody(t, resp, &cart)
	if cart.TotalPrice != 20 {
		t.Fatalf("want total 20, got %v", cart.TotalPrice)
	}

	resp, err = app.Test(jsonReq("GET", "/api/Cart/token", tok, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var out struct {
		Success bool `json:"success"`
		Cart    struct {
			TotalPrice float64 `json:"totalPrice"`
			Items      []struct {
				ProductID string  `json:"productId"`
				Name      string  `json:"name"`
				Qty       int     `json:"quantity"`
				Subtotal  float64 `json:"subtotal"`
			} `json:"items"`
		} `json:"cart"`
	}
	decodeBody(t, resp, &out)
	if !out.Success || len(out.Cart.Items) != 1 {
		t.Fatalf("bad cart payload: %+v", out)
	}
	if out.Cart.Items[0].Name != "Widget" {
		t.Fatalf("items must resolve product detail, got %+v", out.Cart.Items[0])
	}
}

func TestCartAPI_AddMissingProductIs404(t *testing.T) {
	app, _, _ := testApp(t)
	tok := loginToken(t, app, "asha@photonx.test")

	resp, err := app.Test(jsonReq("POST", "/api/Cart/add", tok, map[string]any{
		"productId": "ghost", "quantity": 1,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
}

func TestCartAPI_QuantityInvalidActionIs400(t *testing.T) {
	app, _, _ := testApp(t)
	tok := loginToken(t, app, "asha@photonx.test")

	if resp, _ := app.Test(jsonReq("POST", "/api/Cart/add", tok, map[string]any{
		"productId": "p1", "quantity": 1,
	})); resp.StatusCode != http.StatusOK {
		t.Fatalf("setup add failed with %d", resp.StatusCode)
	}

	resp, err := app.Test(jsonReq("PATCH", "/api/Cart/quantity", tok, map[string]any{
		"productId": "p1", "action": "double",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
}

func TestCartAPI_RemoveAbsentItemIs404(t *testing.T) {
	app, _, _ := testApp(t)
	tok := loginToken(t, app, "asha@photonx.test")

	if resp, _ := app.Test(jsonReq("POST", "/api/Cart/add", tok, map[string]any{
		"productId": "p1", "quantity": 1,
	})); resp.StatusCode != http.StatusOK {
		t.Fatalf("setup add failed with %d", resp.StatusCode)
	}

	resp, err := app.Test(jsonReq("DELETE", "/api/Cart/remove", tok, map[string]any{
		"productId": "p2",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
}
