package http

import (
	"bytes"
	"fmt"
	"io"
)

// Request is a parsed view over the connection's read buffer. Method, Path
// and the recognized header values are slices into buf, not copies, so they
// are only valid for the lifetime of one request/response exchange.
type Request struct {
	buf [DefaultReadBufferSize]byte
	raw []byte

	Method    []byte
	Path      []byte
	Protocol  []byte
	Host      []byte
	UserAgent []byte
}

// Read accumulates bytes from r until the header terminator appears anywhere
// in the buffer, the peer closes, or the buffer fills up. A close before any
// byte arrived is reported as io.EOF and means "no request"; a full buffer
// without a terminator is ErrRequestTooLarge.
func (req *Request) Read(r io.Reader) error {
	n := 0
	for !containsHeaderEnd(req.buf[:n]) {
		if n == len(req.buf) {
			return ErrRequestTooLarge
		}

		m, err := r.Read(req.buf[n:])
		n += m
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("http: connection read: %w", err)
		}
	}

	if n == 0 {
		return io.EOF
	}

	req.raw = req.buf[:n]
	return nil
}

// containsHeaderEnd reports whether the accumulated bytes already hold a
// complete header block.
func containsHeaderEnd(data []byte) bool {
	return bytes.Contains(data, headerEnd)
}

// Parse splits the accumulated header block into CRLF-terminated lines and
// extracts the request line plus the recognized header fields. Header names
// are matched case-sensitively; only Host and User-Agent are captured and the
// last occurrence wins. A non-first line without a colon fails the whole
// request.
func (req *Request) Parse() error {
	if len(req.raw) == 0 {
		return ErrHeaderMalformed
	}

	lines := bytes.Split(req.raw, crlf)

	if err := req.parseRequestLine(lines[0]); err != nil {
		return err
	}

	for _, line := range lines[1:] {
		if len(line) == 0 {
			break // blank line, end of headers
		}

		i := bytes.IndexByte(line, ':')
		if i < 0 {
			return ErrHeaderMalformed
		}

		name := line[:i]
		value := bytes.TrimLeft(line[i+1:], " ") // spaces only, tabs stay

		switch {
		case bytes.Equal(name, headerHost):
			req.Host = value
		case bytes.Equal(name, headerUserAgent):
			req.UserAgent = value
		}
	}

	return nil
}

// parseRequestLine validates METHOD SP PATH SP VERSION. The path "/" is
// rewritten to the default document before filesystem resolution.
func (req *Request) parseRequestLine(line []byte) error {
	fields := bytes.Split(line, []byte(" "))
	if len(fields) < 3 {
		return ErrRequestLineMalformed
	}

	method, path, protocol := fields[0], fields[1], fields[2]

	if !bytes.Equal(method, methodGet) {
		return ErrMethodNotSupported
	}
	if len(path) == 0 {
		return ErrNoPath
	}
	if !bytes.Equal(protocol, protocolHttp11) {
		return ErrProtoNotSupported
	}

	if bytes.Equal(path, rootPath) {
		path = defaultDocument
	}

	req.Method = method
	req.Path = path
	req.Protocol = protocol
	return nil
}
