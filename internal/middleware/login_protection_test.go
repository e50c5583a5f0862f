// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestProtection() *LoginProtection {
	return NewLoginProtection(LoginProtectionConfig{
		IPRateLimit:       100,
		IPBurst:           3,
		MaxFailedAttempts: 3,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Minute,
	})
}

func TestDefaultsApplied(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{})
	def := DefaultLoginProtectionConfig()

	if lp.maxFailedAttempts != def.MaxFailedAttempts {
		t.Errorf("maxFailedAttempts = %d, want %d", lp.maxFailedAttempts, def.MaxFailedAttempts)
	}
	if lp.lockoutDuration != def.LockoutDuration {
		t.Errorf("lockoutDuration = %v, want %v", lp.lockoutDuration, def.LockoutDuration)
	}
	if lp.attemptWindow != def.AttemptWindow {
		t.Errorf("attemptWindow = %v, want %v", lp.attemptWindow, def.AttemptWindow)
	}
}

func TestLockoutAfterMaxFailures(t *testing.T) {
	lp := newTestProtection()

	for i := 0; i < 2; i++ {
		locked, _ := lp.RecordFailedAttempt("admin")
		if locked {
			t.Fatalf("locked after %d failures, want lockout at 3", i+1)
		}
	}

	locked, d := lp.RecordFailedAttempt("admin")
	if !locked {
		t.Fatal("third failure did not lock the account")
	}
	if d != time.Minute {
		t.Errorf("lockout duration = %v, want 1m", d)
	}

	locked, remaining := lp.IsAccountLocked("admin")
	if !locked {
		t.Error("IsAccountLocked = false right after lockout")
	}
	if remaining <= 0 || remaining > time.Minute {
		t.Errorf("remaining = %v", remaining)
	}
}

func TestLockoutDurationDoubles(t *testing.T) {
	lp := newTestProtection()

	lock := func() time.Duration {
		t.Helper()
		var d time.Duration
		for {
			var locked bool
			locked, d = lp.RecordFailedAttempt("admin")
			if locked {
				return d
			}
		}
	}

	if d := lock(); d != time.Minute {
		t.Errorf("first lockout = %v, want 1m", d)
	}
	if d := lock(); d != 2*time.Minute {
		t.Errorf("second lockout = %v, want 2m", d)
	}
	if d := lock(); d != 4*time.Minute {
		t.Errorf("third lockout = %v, want 4m", d)
	}
}

func TestSuccessfulLoginClearsFailures(t *testing.T) {
	lp := newTestProtection()

	lp.RecordFailedAttempt("admin")
	lp.RecordFailedAttempt("admin")
	if got := lp.RemainingAttempts("admin"); got != 1 {
		t.Errorf("RemainingAttempts = %d, want 1", got)
	}

	lp.RecordSuccessfulLogin("admin")
	if got := lp.RemainingAttempts("admin"); got != 3 {
		t.Errorf("RemainingAttempts after success = %d, want 3", got)
	}
	if locked, _ := lp.IsAccountLocked("admin"); locked {
		t.Error("account still locked after successful login")
	}
}

func TestAccountsTrackedSeparately(t *testing.T) {
	lp := newTestProtection()

	lp.RecordFailedAttempt("admin")
	if got := lp.RemainingAttempts("other"); got != 3 {
		t.Errorf("RemainingAttempts(other) = %d, want 3", got)
	}
}

func TestMiddlewareRateLimitsPost(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		IPRateLimit: 0.01,
		IPBurst:     2,
	})
	var hits int
	h := lp.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
	}))

	post := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", nil)
		req.Header.Set("X-Real-IP", "203.0.113.9")
		h.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 2; i++ {
		if rec := post(); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rec.Code)
		}
	}

	rec := post()
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("over-burst request: status = %d, want 429", rec.Code)
	}
	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding 429 body: %v", err)
	}
	if body.Success || body.Error.Code != "rate_limited" {
		t.Errorf("429 body = %s", rec.Body.String())
	}
	if hits != 2 {
		t.Errorf("handler ran %d times, want 2", hits)
	}

	// GET passes through unlimited.
	recGet := httptest.NewRecorder()
	get := httptest.NewRequest(http.MethodGet, "/api/admin/login", nil)
	get.Header.Set("X-Real-IP", "203.0.113.9")
	h.ServeHTTP(recGet, get)
	if recGet.Code != http.StatusOK {
		t.Errorf("GET status = %d, want 200", recGet.Code)
	}
}

func TestMiddlewareLimitsPerIP(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		IPRateLimit: 0.01,
		IPBurst:     1,
	})
	h := lp.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	post := func(ip string) int {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", nil)
		req.Header.Set("X-Real-IP", ip)
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := post("198.51.100.1"); code != http.StatusOK {
		t.Fatalf("first request from IP A: %d", code)
	}
	if code := post("198.51.100.1"); code != http.StatusTooManyRequests {
		t.Errorf("second request from IP A: %d, want 429", code)
	}
	if code := post("198.51.100.2"); code != http.StatusOK {
		t.Errorf("request from IP B: %d, want 200 (limits are per IP)", code)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	if got := clientIP(req); got != "10.0.0.1:1234" {
		t.Errorf("clientIP = %q, want RemoteAddr", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.5, 70.41.3.18")
	if got := clientIP(req); got != "203.0.113.5" {
		t.Errorf("clientIP = %q, want first forwarded entry", got)
	}

	req.Header.Set("X-Real-IP", "203.0.113.7")
	if got := clientIP(req); got != "203.0.113.7" {
		t.Errorf("clientIP = %q, want X-Real-IP", got)
	}
}
