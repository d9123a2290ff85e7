package http

import (
	"bufio"
	"strconv"
)

// Response is a single fully-materialized reply. Every response closes the
// connection; there is no keep-alive and no streaming.
type Response struct {
	Status      uint16
	ContentType []byte
	Body        []byte
}

func (res *Response) WithStatus(status uint16) *Response {
	res.Status = status
	return res
}

func (res *Response) WithBody(contentType, body []byte) *Response {
	res.ContentType = contentType
	res.Body = body
	return res
}

// WithStatusPage fills in a minimal HTML page carrying the status message.
// Used for every error answered at the connection boundary.
func (res *Response) WithStatusPage(status uint16) *Response {
	res.Status = status
	res.ContentType = ContentTypeHtml
	res.Body = []byte("<h1>" + StatusMessage(status) + "</h1>\r\n")
	return res
}

// Write serializes the response. The trailing space in the status line
// ("HTTP/1.1 200 OK \r\n") is part of the wire format and is kept
// byte-for-byte. Content-Length is always the exact body length.
func (res *Response) Write(bw *bufio.Writer) error {
	bw.Write(statusLinePrefix)
	bw.WriteString(strconv.Itoa(int(res.Status)))
	bw.WriteByte(' ')
	bw.WriteString(StatusMessage(res.Status))
	bw.Write(spaceCrlf)

	bw.Write(connectionClose)

	bw.Write(contentTypePrefix)
	bw.Write(res.ContentType)
	bw.Write(crlf)

	bw.Write(contentLengthPrefix)
	bw.WriteString(strconv.Itoa(len(res.Body)))
	bw.Write(crlf)

	bw.Write(crlf)
	bw.Write(res.Body)

	return bw.Flush()
}
