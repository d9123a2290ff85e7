package http

import "net"

// RequestCtx carries everything owned by a single connection. Nothing in it
// is shared or reused across connections.
type RequestCtx struct {
	ID         string
	RemoteAddr net.Addr

	Request  Request
	Response Response
}
