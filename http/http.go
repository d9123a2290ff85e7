package http

const (
	DefaultReadBufferSize  = 4096 // 4kB, practical ceiling for a header block
	DefaultWriteBufferSize = 4096
)

// Handler processes one parsed request and fills in the response.
type Handler func(ctx *RequestCtx)

type Middleware func(next Handler) Handler

var (
	crlf      = []byte("\r\n")
	headerEnd = []byte("\r\n\r\n")

	methodGet      = []byte("GET")
	protocolHttp11 = []byte("HTTP/1.1")

	headerHost      = []byte("Host")
	headerUserAgent = []byte("User-Agent")

	rootPath        = []byte("/")
	defaultDocument = []byte("/index.html")

	// Pre-computed response parts
	statusLinePrefix    = []byte("HTTP/1.1 ")
	spaceCrlf           = []byte(" \r\n")
	connectionClose     = []byte("Connection: close\r\n")
	contentTypePrefix   = []byte("Content-Type: ")
	contentLengthPrefix = []byte("Content-Length: ")

	ContentTypeHtml = []byte("text/html; charset=utf8")
)
