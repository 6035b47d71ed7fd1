package sync

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	// senderCacheSize bounds how many distinct notifiers hold a live
	// token bucket at once.
	senderCacheSize = 1000
	// senderIdleTTL evicts a sender's bucket after this much silence.
	senderIdleTTL = 5 * time.Minute

	defaultRatePerMin = 60
)

// SecurityValidator vets inbound change notifications before any pull is
// triggered: payload signature, notifier address, and per-sender volume.
type SecurityValidator struct {
	config  SecurityConfig
	senders *expirable.LRU[string, *rate.Limiter]
	rate    rate.Limit
	burst   int
}

func NewSecurityValidator(config SecurityConfig) *SecurityValidator {
	perMin := config.RateLimitPerMin
	if perMin <= 0 {
		perMin = defaultRatePerMin
	}
	burst := perMin / 10
	if burst < 1 {
		burst = 1
	}

	return &SecurityValidator{
		config:  config,
		senders: expirable.NewLRU[string, *rate.Limiter](senderCacheSize, nil, senderIdleTTL),
		rate:    rate.Limit(float64(perMin) / 60.0),
		burst:   burst,
	}
}

// ValidateSignature verifies the HMAC-SHA256 payload signature, sent as
// "sha256=<hex>".
func (v *SecurityValidator) ValidateSignature(payload []byte, signature string) error {
	if v.config.Secret == "" {
		return fmt.Errorf("webhook secret not configured")
	}

	sigHex, ok := strings.CutPrefix(signature, "sha256=")
	if !ok {
		return fmt.Errorf("invalid signature format")
	}

	claimed, err := hex.DecodeString(sigHex)
	if err != nil {
		return fmt.Errorf("invalid signature hex encoding: %w", err)
	}

	mac := hmac.New(sha256.New, []byte(v.config.Secret))
	mac.Write(payload)

	// Constant-time comparison on raw bytes
	if !hmac.Equal(claimed, mac.Sum(nil)) {
		return fmt.Errorf("signature verification failed")
	}

	return nil
}

// ValidateIPAddress checks the notifier address against the allow-list. An
// empty list means no restriction.
func (v *SecurityValidator) ValidateIPAddress(r *http.Request) error {
	if len(v.config.AllowedIPs) == 0 {
		return nil
	}

	ip := senderIP(r)
	if v.ipAllowed(ip) {
		return nil
	}
	return fmt.Errorf("IP %s not whitelisted", ip)
}

func (v *SecurityValidator) ipAllowed(ip string) bool {
	for _, allowed := range v.config.AllowedIPs {
		if ip == allowed {
			return true
		}

		// Check CIDR range
		if strings.Contains(allowed, "/") {
			_, ipNet, err := net.ParseCIDR(allowed)
			if err != nil {
				continue
			}
			if ipNet.Contains(net.ParseIP(ip)) {
				return true
			}
		}
	}
	return false
}

// CheckRateLimit enforces per-sender volume, keyed on the same address the
// allow-list sees.
func (v *SecurityValidator) CheckRateLimit(r *http.Request) error {
	sender := senderIP(r)

	limiter, ok := v.senders.Get(sender)
	if !ok {
		limiter = rate.NewLimiter(v.rate, v.burst)
		v.senders.Add(sender, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", sender)
	}
	return nil
}

// senderIP extracts the notifier address, honoring proxy headers.
func senderIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip, _, _ := net.SplitHostPort(r.RemoteAddr)
	return ip
}
