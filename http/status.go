package http

const (
	StatusOK                      uint16 = 200
	StatusBadRequest              uint16 = 400
	StatusNotFound                uint16 = 404
	StatusMethodNotAllowed        uint16 = 405
	StatusRequestUriTooLong       uint16 = 414
	StatusInternalServerError     uint16 = 500
	StatusHttpVersionNotSupported uint16 = 505
)

// Status messages are uppercase on the wire, matching the fixed response
// literals ("HTTP/1.1 404 NOT FOUND").
var statusMessages = map[uint16]string{
	StatusOK:                      "OK",
	StatusBadRequest:              "BAD REQUEST",
	StatusNotFound:                "NOT FOUND",
	StatusMethodNotAllowed:        "METHOD NOT ALLOWED",
	StatusRequestUriTooLong:       "REQUEST URI TOO LONG",
	StatusInternalServerError:     "INTERNAL SERVER ERROR",
	StatusHttpVersionNotSupported: "HTTP VERSION NOT SUPPORTED",
}

func StatusMessage(status uint16) string {
	if msg, found := statusMessages[status]; found {
		return msg
	}
	return "UNKNOWN STATUS CODE"
}
