package sync

import (
	pkgLog "gtd-task-management/pkg/log"
)

// WebhookHandler accepts change notifications from the remote side and
// answers them with a pull.
type WebhookHandler struct {
	l         pkgLog.Logger
	uc        UseCase
	validator *SecurityValidator
}

func NewWebhookHandler(l pkgLog.Logger, uc UseCase, validator *SecurityValidator) *WebhookHandler {
	return &WebhookHandler{
		l:         l,
		uc:        uc,
		validator: validator,
	}
}
