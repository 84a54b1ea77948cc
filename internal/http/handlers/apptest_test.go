package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"

	"photonx/internal/http/handlers"
	"photonx/internal/repos"
	"photonx/internal/services"
)

// testApp wires the cart/order routes against an in-memory DB, exactly
// as main does minus rate limiting and uploads.
func testApp(t *testing.T) (*fiber.App, *sqlx.DB, *services.AuthService) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.MustExec(`INSERT INTO products(id,category_id,name,description,price,stock) VALUES
	  ('p1','cameras','Widget','test product',10.0,5),
	  ('p2','cameras','Gadget','test product',5.0,5)`)

	userRepo := repos.NewUserRepo(db)
	authSvc := services.NewAuthService(userRepo, "test-secret")
	cartSvc := services.NewCartService(repos.NewCartRepo(db), repos.NewProductRepo(db))
	orderSvc := services.NewOrderService(repos.NewOrderRepo(db), userRepo)

	cartH := &handlers.CartHandler{Cart: cartSvc}
	orderH := &handlers.OrderHandler{Order: orderSvc}
	userH := &handlers.UserHandler{Auth: authSvc, Users: userRepo}

	app := fiber.New()
	app.Use(requestid.New())

	authed := handlers.RequireAuth(authSvc)
	api := app.Group("/api")
	api.Post("/User/login", userH.Login)
	api.Post("/Cart/add", authed, cartH.Add)
	api.Get("/Cart/token", authed, cartH.Get)
	api.Patch("/Cart/update", authed, cartH.Update)
	api.Patch("/Cart/quantity", authed, cartH.Quantity)
	api.Delete("/Cart/remove", authed, cartH.Remove)
	api.Post("/Order/create", authed, orderH.Create)
	api.Get("/Order/getbytoken", authed, orderH.ByToken)
	api.Get("/Order/getallorders", orderH.ListAll)
	api.Patch("/Order/status/:orderId", authed, orderH.UpdateStatus)

	return app, db, authSvc
}

func jsonReq(method, target, token string, body any) *http.Request {
	var r io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func loginToken(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp, err := app.Test(jsonReq("POST", "/api/User/login", "", map[string]string{
		"email": email, "password": "Passw0rd!",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed with %d", resp.StatusCode)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Token == "" {
		t.Fatal("login returned no token")
	}
	return out.Token
}

func decodeBody(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		t.Fatal(err)
	}
}
