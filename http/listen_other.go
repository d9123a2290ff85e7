//go:build !unix

package http

import "syscall"

func reuseAddr(network, address string, rawConn syscall.RawConn) error {
	return nil
}
