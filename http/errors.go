package http

import "errors"

var (
	ErrHeaderMalformed      = errors.New("http: malformed header block")
	ErrRequestLineMalformed = errors.New("http: malformed request line")
	ErrMethodNotSupported   = errors.New("http: method not supported")
	ErrProtoNotSupported    = errors.New("http: protocol not supported")
	ErrNoPath               = errors.New("http: request line has no path")
	ErrRequestTooLarge      = errors.New("http: header block exceeds buffer capacity")
)

// StatusFromError maps a request parse failure to the status answered on the
// wire. Anything unrecognized counts as a server fault.
func StatusFromError(err error) uint16 {
	switch {
	case errors.Is(err, ErrMethodNotSupported):
		return StatusMethodNotAllowed
	case errors.Is(err, ErrProtoNotSupported):
		return StatusHttpVersionNotSupported
	case errors.Is(err, ErrRequestTooLarge):
		return StatusRequestUriTooLong
	case errors.Is(err, ErrHeaderMalformed),
		errors.Is(err, ErrRequestLineMalformed),
		errors.Is(err, ErrNoPath):
		return StatusBadRequest
	}
	return StatusInternalServerError
}
