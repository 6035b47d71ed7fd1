package sync

import "errors"

var (
	ErrLinkNotFound = errors.New("sync link not found")
)
