package middleware

import (
	pkgLog "gtd-task-management/pkg/log"
)

type Middleware struct {
	l      pkgLog.Logger
	apiKey string
}

// New creates the middleware set. An empty apiKey disables authentication,
// which is the expected setup for a single-user local install.
func New(l pkgLog.Logger, apiKey string) Middleware {
	return Middleware{
		l:      l,
		apiKey: apiKey,
	}
}
