package sync

import "time"

// Link ties a local task to its remote Google Tasks counterpart.
type Link struct {
	LocalID    string
	RemoteID   string
	RemoteList string
	SyncedAt   time.Time
}

// PushOutput reports what an outbound pass did.
type PushOutput struct {
	Created int
	Updated int
}

// PullOutput reports what an inbound pass did.
type PullOutput struct {
	Created   int
	Completed int
}

// SyncOutput is the result of a full push+pull cycle.
type SyncOutput struct {
	Push PushOutput
	Pull PullOutput
}

// SecurityConfig controls inbound webhook validation.
type SecurityConfig struct {
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// NotificationPayload is the inbound webhook body. The remote side only
// signals that something changed; the handler answers with a pull.
type NotificationPayload struct {
	ListID    string `json:"listId"`
	ChangedAt string `json:"changedAt"`
}
