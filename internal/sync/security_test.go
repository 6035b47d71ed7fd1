package sync_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"gtd-task-management/internal/sync"
)

func sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestValidateSignature(t *testing.T) {
	v := sync.NewSecurityValidator(sync.SecurityConfig{Secret: "topsecret"})
	payload := []byte(`{"listId":"@default"}`)

	t.Run("valid signature", func(t *testing.T) {
		if err := v.ValidateSignature(payload, sign("topsecret", payload)); err != nil {
			t.Errorf("ValidateSignature: %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		if err := v.ValidateSignature(payload, sign("other", payload)); err == nil {
			t.Error("expected verification failure")
		}
	})

	t.Run("tampered payload", func(t *testing.T) {
		if err := v.ValidateSignature([]byte(`{"listId":"evil"}`), sign("topsecret", payload)); err == nil {
			t.Error("expected verification failure")
		}
	})

	t.Run("bad format", func(t *testing.T) {
		if err := v.ValidateSignature(payload, "md5=abc"); err == nil {
			t.Error("expected format error")
		}
	})

	t.Run("no secret configured", func(t *testing.T) {
		unconfigured := sync.NewSecurityValidator(sync.SecurityConfig{})
		if err := unconfigured.ValidateSignature(payload, sign("", payload)); err == nil {
			t.Error("expected error with no secret")
		}
	})
}

func TestValidateIPAddress(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		remote  string
		header  map[string]string
		wantOK  bool
	}{
		{name: "no restriction", allowed: nil, remote: "8.8.8.8:1234", wantOK: true},
		{name: "exact match", allowed: []string{"10.0.0.5"}, remote: "10.0.0.5:443", wantOK: true},
		{name: "cidr match", allowed: []string{"10.0.0.0/8"}, remote: "10.1.2.3:443", wantOK: true},
		{name: "no match", allowed: []string{"10.0.0.5"}, remote: "8.8.8.8:443", wantOK: false},
		{
			name:    "forwarded-for honored",
			allowed: []string{"10.0.0.5"},
			remote:  "127.0.0.1:80",
			header:  map[string]string{"X-Forwarded-For": "10.0.0.5, 127.0.0.1"},
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := sync.NewSecurityValidator(sync.SecurityConfig{AllowedIPs: tt.allowed})
			r := httptest.NewRequest("POST", "/webhook/tasks", nil)
			r.RemoteAddr = tt.remote
			for k, val := range tt.header {
				r.Header.Set(k, val)
			}

			err := v.ValidateIPAddress(r)
			if tt.wantOK && err != nil {
				t.Errorf("ValidateIPAddress: %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("expected rejection")
			}
		})
	}
}

func TestCheckRateLimit(t *testing.T) {
	v := sync.NewSecurityValidator(sync.SecurityConfig{RateLimitPerMin: 10})

	request := func(remote, forwardedFor string) *http.Request {
		r := httptest.NewRequest("POST", "/webhook/tasks", nil)
		r.RemoteAddr = remote
		if forwardedFor != "" {
			r.Header.Set("X-Forwarded-For", forwardedFor)
		}
		return r
	}

	// Burst of one allowed immediately, second call in the same instant
	// gets throttled.
	if err := v.CheckRateLimit(request("1.2.3.4:443", "")); err != nil {
		t.Fatalf("first request should pass: %v", err)
	}
	if err := v.CheckRateLimit(request("1.2.3.4:443", "")); err == nil {
		t.Error("burst exceeded, expected throttle")
	}

	// Other senders are unaffected.
	if err := v.CheckRateLimit(request("5.6.7.8:443", "")); err != nil {
		t.Errorf("independent sender throttled: %v", err)
	}

	// Proxied requests count against the originating address, not the proxy.
	if err := v.CheckRateLimit(request("127.0.0.1:80", "1.2.3.4")); err == nil {
		t.Error("forwarded sender should share the throttled bucket")
	}
}
