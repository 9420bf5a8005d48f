package common

import "time"

const (
	// MaxRequestBody limits JSON bodies. Photos may arrive inline as data URLs.
	MaxRequestBody = 8 << 20
	// RequestTimeout bounds each handler's store work.
	RequestTimeout = 5 * time.Second
)
