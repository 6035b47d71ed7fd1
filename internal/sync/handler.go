package sync

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	pkgResponse "gtd-task-management/pkg/response"
)

const signatureHeader = "X-Webhook-Signature"

// HandleTasksWebhook processes remote change notifications. The payload is
// validated (signature, IP allow-list, rate limit) and acknowledged
// immediately; the pull runs in the background.
func (h *WebhookHandler) HandleTasksWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.validator.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		pkgResponse.Forbidden(c)
		return
	}
	if err := h.validator.CheckRateLimit(c.Request); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "webhook: failed to read body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if err := h.validator.ValidateSignature(body, c.GetHeader(signatureHeader)); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		pkgResponse.Unauthorized(c)
		return
	}

	var payload NotificationPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		h.l.Errorf(ctx, "webhook: failed to parse payload: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	h.l.Infof(ctx, "webhook: change notification for list %s", payload.ListID)

	// Process in background to avoid blocking the notifier.
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		h.pullWithRetry(bgCtx)
	}()

	// Acknowledge immediately
	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// pullWithRetry pulls remote changes with exponential backoff.
func (h *WebhookHandler) pullWithRetry(ctx context.Context) {
	maxRetries := 3
	backoff := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if _, err := h.uc.Pull(ctx); err != nil {
			h.l.Warnf(ctx, "webhook: pull failed (retry %d/%d): %v", i+1, maxRetries, err)
			time.Sleep(backoff)
			backoff *= 2
			continue
		}
		return
	}

	h.l.Errorf(ctx, "webhook: pull failed after %d retries", maxRetries)
}
