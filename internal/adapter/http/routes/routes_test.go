package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quotelock/internal/adapter/persistence"

	"github.com/gin-gonic/gin"
)

type client struct {
	t      *testing.T
	engine *gin.Engine
}

func newTestServer(t *testing.T, opts Options) client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	Register(engine, persistence.NewMemoryRepositories(), opts)
	return client{t: t, engine: engine}
}

func (c client) do(method, path, body string, headers map[string]string) (int, map[string]any) {
	c.t.Helper()
	return c.doFrom("", method, path, body, headers)
}

// doFrom sends the request from remoteAddr, or httptest's default peer when empty.
func (c client) doFrom(remoteAddr, method, path, body string, headers map[string]string) (int, map[string]any) {
	c.t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	c.engine.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			c.t.Fatalf("%s %s: invalid json %q", method, path, w.Body.String())
		}
	}
	return w.Code, out
}

var contractor = map[string]string{"X-User-ID": "contractor-1"}

const createBody = `{
	"title": "Bathroom refit",
	"client_email": "sam@example.com",
	"work_included": "Tiling, suite, lighting",
	"work_excluded": "Structural work",
	"total_price": "4800.00",
	"deposit_amount": "1200.00",
	"balance_due": "3600.00",
	"payment_instructions": "Sort code 00-00-00",
	"cancellation_terms": "Deposit refundable until materials are ordered",
	"governing_country": "United Kingdom"
}`

func TestRoutes_Ping(t *testing.T) {
	c := newTestServer(t, Options{})
	code, body := c.do(http.MethodGet, "/v1/ping", "", nil)
	if code != http.StatusOK || body["message"] != "pong" {
		t.Fatalf("unexpected ping response %d %v", code, body)
	}
}

func TestRoutes_AgreementLifecycle(t *testing.T) {
	c := newTestServer(t, Options{RateLimitMax: 100, RateLimitWindow: time.Minute})

	code, body := c.do(http.MethodPost, "/v1/agreements", createBody, contractor)
	if code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d %v", code, body)
	}
	agreement := body["agreement"].(map[string]any)
	id := agreement["id"].(string)
	slug := agreement["public_slug"].(string)
	if agreement["currency"] != "GBP" || agreement["is_locked"] != false {
		t.Fatalf("unexpected created agreement: %v", agreement)
	}

	if code, _ := c.do(http.MethodGet, "/v1/agreements/"+id, "", map[string]string{"X-User-ID": "someone-else"}); code != http.StatusNotFound {
		t.Fatalf("foreign owner: expected 404, got %d", code)
	}

	if code, body := c.do(http.MethodPost, "/v1/q/"+slug+"/accept", `{"acknowledged_by":"Sam"}`, nil); code != http.StatusConflict {
		t.Fatalf("accept draft: expected 409, got %d %v", code, body)
	}

	if code, body := c.do(http.MethodPost, "/v1/agreements/"+id+"/status", `{"status":"SENT"}`, contractor); code != http.StatusOK {
		t.Fatalf("send: expected 200, got %d %v", code, body)
	}

	code, body = c.do(http.MethodGet, "/v1/q/"+slug, "", map[string]string{"User-Agent": "browser"})
	if code != http.StatusOK {
		t.Fatalf("public view: expected 200, got %d %v", code, body)
	}
	if _, ok := body["agreement"].(map[string]any)["user_id"]; ok {
		t.Fatalf("public view must not expose the owner")
	}

	code, body = c.do(http.MethodPost, "/v1/q/"+slug+"/accept", `{"acknowledged_by":"Sam Client","email":"sam@example.com"}`,
		map[string]string{"X-Forwarded-For": "203.0.113.9"})
	if code != http.StatusOK {
		t.Fatalf("accept: expected 200, got %d %v", code, body)
	}
	if body["agreement"].(map[string]any)["is_locked"] != true {
		t.Fatalf("expected agreement to be locked after acceptance: %v", body)
	}

	code, body = c.do(http.MethodPatch, "/v1/agreements/"+id, `{"total_price":"5000.00","balance_due":"3800.00"}`, contractor)
	if code != http.StatusConflict || body["code"] != "LOCKED_FIELD_VIOLATION" {
		t.Fatalf("locked update: expected 409 LOCKED_FIELD_VIOLATION, got %d %v", code, body)
	}

	if code, body := c.do(http.MethodPatch, "/v1/agreements/"+id, `{"title":"Bathroom refit (phase 1)"}`, contractor); code != http.StatusOK {
		t.Fatalf("title update: expected 200, got %d %v", code, body)
	}

	code, body = c.do(http.MethodPost, "/v1/agreements/"+id+"/status", `{"status":"COMPLETED"}`, contractor)
	if code != http.StatusConflict {
		t.Fatalf("skip ahead: expected 409, got %d %v", code, body)
	}
	allowed := body["details"].(map[string]any)["allowed_transitions"].([]any)
	if len(allowed) != 2 || allowed[0] != "DEPOSIT_SENT" {
		t.Fatalf("unexpected allowed transitions: %v", allowed)
	}

	if code, body := c.do(http.MethodPost, "/v1/q/"+slug+"/deposit", `{"transaction_reference":"FP-123"}`, nil); code != http.StatusOK {
		t.Fatalf("deposit: expected 200, got %d %v", code, body)
	}

	code, body = c.do(http.MethodGet, "/v1/agreements/"+id+"/events", "", contractor)
	if code != http.StatusOK {
		t.Fatalf("events: expected 200, got %d", code)
	}
	var types []string
	for _, e := range body["events"].([]any) {
		types = append(types, e.(map[string]any)["type"].(string))
	}
	want := []string{"CREATED", "SENT", "VIEWED", "ACCEPTED", "UPDATED", "DEPOSIT_SENT"}
	if len(types) != len(want) {
		t.Fatalf("expected timeline %v, got %v", want, types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("expected timeline %v, got %v", want, types)
		}
	}
}

func TestRoutes_PublicActionsAreRateLimited(t *testing.T) {
	c := newTestServer(t, Options{RateLimitMax: 2, RateLimitWindow: time.Hour})
	ip := map[string]string{"X-Forwarded-For": "198.51.100.77"}
	path := "/v1/q/unknown-slug-unknown-slug/accept"

	for i := 0; i < 2; i++ {
		if code, _ := c.do(http.MethodPost, path, `{"acknowledged_by":"x"}`, ip); code != http.StatusNotFound {
			t.Fatalf("attempt %d: expected 404, got %d", i+1, code)
		}
	}
	code, body := c.do(http.MethodPost, path, `{"acknowledged_by":"x"}`, ip)
	if code != http.StatusTooManyRequests || body["error"] != "Too many requests. Please try again later." {
		t.Fatalf("expected 429, got %d %v", code, body)
	}

	other := map[string]string{"X-Forwarded-For": "198.51.100.78"}
	if code, _ := c.do(http.MethodPost, path, `{"acknowledged_by":"x"}`, other); code != http.StatusNotFound {
		t.Fatalf("other ip: expected 404, got %d", code)
	}
}

func TestRoutes_PlanLimit(t *testing.T) {
	c := newTestServer(t, Options{RateLimitMax: 100, RateLimitWindow: time.Minute})
	free := map[string]string{"X-User-ID": "contractor-9"}

	for i := 0; i < 3; i++ {
		if code, body := c.do(http.MethodPost, "/v1/agreements", createBody, free); code != http.StatusCreated {
			t.Fatalf("create %d: expected 201, got %d %v", i+1, code, body)
		}
	}
	code, body := c.do(http.MethodPost, "/v1/agreements", createBody, free)
	if code != http.StatusForbidden || body["code"] != "PLAN_LIMIT_REACHED" {
		t.Fatalf("expected 403 PLAN_LIMIT_REACHED, got %d %v", code, body)
	}

	code, body = c.do(http.MethodGet, "/v1/usage", "", free)
	if code != http.StatusOK || body["count"] != float64(3) || body["limit"] != float64(3) || body["plan"] != "FREE" {
		t.Fatalf("unexpected usage %d %v", code, body)
	}

	solo := map[string]string{"X-User-ID": "contractor-9", "X-User-Plan": "SOLO"}
	if code, body := c.do(http.MethodPost, "/v1/agreements", createBody, solo); code != http.StatusCreated {
		t.Fatalf("after upgrade: expected 201, got %d %v", code, body)
	}
}

func TestRoutes_RateLimitBucketsPerRemoteAddress(t *testing.T) {
	c := newTestServer(t, Options{RateLimitMax: 5, RateLimitWindow: time.Hour})
	path := "/v1/q/unknown-slug-unknown-slug/accept"

	for i := 1; i <= 6; i++ {
		addr := fmt.Sprintf("203.0.113.%d:40000", i)
		if code, _ := c.doFrom(addr, http.MethodPost, path, `{"acknowledged_by":"x"}`, nil); code != http.StatusNotFound {
			t.Fatalf("client %s: expected 404, got %d", addr, code)
		}
	}

	for i := 0; i < 5; i++ {
		c.doFrom("198.51.100.1:40000", http.MethodPost, path, `{"acknowledged_by":"x"}`, nil)
	}
	if code, _ := c.doFrom("198.51.100.1:40001", http.MethodPost, path, `{"acknowledged_by":"x"}`, nil); code != http.StatusTooManyRequests {
		t.Fatalf("same host on a new port: expected 429, got %d", code)
	}
}

func TestRoutes_UntrustedPeerCannotSpoofForwardedFor(t *testing.T) {
	c := newTestServer(t, Options{RateLimitMax: 1, RateLimitWindow: time.Hour, TrustedProxies: []string{"10.0.0.0/8"}})
	path := "/v1/q/unknown-slug-unknown-slug/accept"

	c.doFrom("198.51.100.9:40000", http.MethodPost, path, `{"acknowledged_by":"x"}`, map[string]string{"X-Forwarded-For": "203.0.113.1"})
	code, _ := c.doFrom("198.51.100.9:40000", http.MethodPost, path, `{"acknowledged_by":"x"}`, map[string]string{"X-Forwarded-For": "203.0.113.2"})
	if code != http.StatusTooManyRequests {
		t.Fatalf("expected rotating X-Forwarded-For to share the peer's bucket, got %d", code)
	}
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("USER_ID_HEADER", "X-Account")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "9")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "bogus")
	t.Setenv("TRUSTED_PROXIES", " 10.0.0.0/8, ,192.168.1.1 ")

	opts := OptionsFromEnv()
	if opts.UserIDHeader != "X-Account" || opts.RateLimitMax != 9 || opts.RateLimitWindow != time.Minute {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if len(opts.TrustedProxies) != 2 || opts.TrustedProxies[0] != "10.0.0.0/8" || opts.TrustedProxies[1] != "192.168.1.1" {
		t.Fatalf("unexpected trusted proxies: %v", opts.TrustedProxies)
	}
}
