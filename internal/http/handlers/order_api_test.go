package handlers_test

import (
	"net/http"
	"strings"
	"testing"
)

func TestOrderAPI_CreateAndStatus(t *testing.T) {
	app, db, _ := testApp(t)
	tok := loginToken(t, app, "asha@photonx.test")

	resp, err := app.Test(jsonReq("POST", "/api/Order/create", tok, map[string]any{
		"products": []map[string]any{
			{"product": "p1", "quantity": 2},
			{"product": "p2", "quantity": 1},
		},
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("want 201, got %d", resp.StatusCode)
	}
	var created struct {
		Success bool `json:"success"`
		Order   struct {
			ID          string  `json:"id"`
			TotalAmount float64 `json:"totalAmount"`
			Status      string  `json:"status"`
		} `json:"order"`
	}
	decodeBody(t, resp, &created)
	if !created.Success || created.Order.TotalAmount != 25 {
		t.Fatalf("bad create payload: %+v", created)
	}

	var stock int
	if err := db.Get(&stock, `SELECT stock FROM products WHERE id='p1'`); err != nil {
		t.Fatal(err)
	}
	if stock != 3 {
		t.Fatalf("want p1 stock 3 after order, got %d", stock)
	}

	// invalid status -> 400
	resp, err = app.Test(jsonReq("PATCH", "/api/Order/status/"+created.Order.ID, tok, map[string]any{
		"status": "teleported",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400 for invalid status, got %d", resp.StatusCode)
	}

	// valid status -> 200 with the updated order
	resp, err = app.Test(jsonReq("PATCH", "/api/Order/status/"+created.Order.ID, tok, map[string]any{
		"status": "shipped",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var updated struct {
		Order struct {
			Status string `json:"status"`
		} `json:"order"`
	}
	decodeBody(t, resp, &updated)
	if updated.Order.Status != "shipped" {
		t.Fatalf("want shipped, got %q", updated.Order.Status)
	}
}

func TestOrderAPI_InsufficientStockIs400(t *testing.T) {
	app, db, _ := testApp(t)
	tok := loginToken(t, app, "asha@photonx.test")

	resp, err := app.Test(jsonReq("POST", "/api/Order/create", tok, map[string]any{
		"products": []map[string]any{{"product": "p1", "quantity": 50}},
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
	var out struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &out)
	if !strings.Contains(out.Message, "Widget") {
		t.Fatalf("error should name the offending product, got %q", out.Message)
	}

	var stock int
	if err := db.Get(&stock, `SELECT stock FROM products WHERE id='p1'`); err != nil {
		t.Fatal(err)
	}
	if stock != 5 {
		t.Fatalf("stock must be untouched, got %d", stock)
	}
}

func TestOrderAPI_GetByTokenAndListAll(t *testing.T) {
	app, _, _ := testApp(t)
	tok := loginToken(t, app, "asha@photonx.test")

	// no orders at all -> both endpoints 404
	resp, _ := app.Test(jsonReq("GET", "/api/Order/getbytoken", tok, nil))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404 before any order, got %d", resp.StatusCode)
	}
	resp, _ = app.Test(jsonReq("GET", "/api/Order/getallorders", "", nil))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404 for empty listing, got %d", resp.StatusCode)
	}

	if resp, _ = app.Test(jsonReq("POST", "/api/Order/create", tok, map[string]any{
		"products": []map[string]any{{"product": "p2", "quantity": 2}},
	})); resp.StatusCode != http.StatusCreated {
		t.Fatalf("setup create failed with %d", resp.StatusCode)
	}

	resp, err := app.Test(jsonReq("GET", "/api/Order/getbytoken", tok, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var out struct {
		Order struct {
			TotalAmount float64 `json:"totalAmount"`
			Customer    struct {
				Email string `json:"email"`
			} `json:"customer"`
			Items []struct {
				Name string `json:"name"`
			} `json:"items"`
		} `json:"order"`
	}
	decodeBody(t, resp, &out)
	if out.Order.TotalAmount != 10 || out.Order.Customer.Email != "asha@photonx.test" {
		t.Fatalf("bad order payload: %+v", out)
	}
	if len(out.Order.Items) != 1 || out.Order.Items[0].Name != "Gadget" {
		t.Fatalf("items must resolve product detail: %+v", out.Order.Items)
	}

	resp, _ = app.Test(jsonReq("GET", "/api/Order/getallorders", "", nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
}
