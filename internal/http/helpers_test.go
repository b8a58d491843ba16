package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"employeehub/internal/auth"
	"employeehub/internal/config"
	"employeehub/internal/domain"
	"employeehub/internal/http/handlers"
	"employeehub/internal/repos"
	"employeehub/internal/services"
)

const testSecret = "test-secret"

type stubBridge struct {
	amounts []int64
	meta    map[string]string
}

func (s *stubBridge) CreateIntent(_ context.Context, amount int64, currency string, meta map[string]string) (domain.Intent, error) {
	s.amounts = append(s.amounts, amount)
	s.meta = meta
	return domain.Intent{
		ID:           "pi_test",
		ClientSecret: "pi_test_secret",
		Raw:          map[string]any{"id": "pi_test", "amount": amount, "currency": currency},
	}, nil
}

type testEnv struct {
	app    *fiber.App
	db     *sqlx.DB
	deps   *handlers.Deps
	issuer *auth.Issuer
	bridge *stubBridge
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := config.Config{DBDSN: ":memory:", Currency: "usd"}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	issuer := auth.NewIssuer([]byte(testSecret), auth.TokenLifetime)
	bridge := &stubBridge{}
	deps := handlers.NewDeps(db, cfg, services.NewAuthService(issuer), bridge)
	return &testEnv{app: handlers.NewApp(cfg, deps), db: db, deps: deps, issuer: issuer, bridge: bridge}
}

func (e *testEnv) token(t *testing.T, email string) string {
	t.Helper()
	tok, err := e.issuer.Issue(map[string]any{"email": email})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}

// seedUser registers a user directly through the service and returns its id.
func (e *testEnv) seedUser(t *testing.T, email, role string) string {
	t.Helper()
	reg, err := e.deps.Users.Register(domain.User{Name: strings.Split(email, "@")[0], Email: email, Role: role})
	if err != nil || reg.Existing {
		t.Fatalf("seed %s: %v existing=%v", email, err, reg.Existing)
	}
	return *reg.Result.InsertedID
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		r = strings.NewReader(string(b))
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	out, _ := io.ReadAll(resp.Body)
	return resp, out
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		t.Fatalf("decode %s: %v", b, err)
	}
	return v
}

func countRows(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM `+table); err != nil {
		t.Fatal(err)
	}
	return n
}
