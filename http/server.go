package http

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type Server struct {
	Name    string
	Handler Handler
	Logger  *slog.Logger

	tracer   trace.Tracer
	requests metric.Int64Counter

	mu       sync.Mutex
	listener net.Listener
}

func NewServer(name string, handler Handler) (*Server, error) {
	requests, err := otel.Meter(name).Int64Counter("http.server.requests",
		metric.WithDescription("The number of requests served by status code"),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, err
	}

	return &Server{
		Name:     name,
		Handler:  handler,
		Logger:   slog.Default(),
		tracer:   otel.Tracer(name),
		requests: requests,
	}, nil
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	lc := net.ListenConfig{Control: reuseAddr}
	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	return s.Serve(listener)
}

// Serve accepts connections until the listener fails or is closed through
// Shutdown. Each connection is handled by its own goroutine and owns its
// buffer exclusively.
func (s *Server) Serve(listener net.Listener) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.Logger.Error("accept failed", "error", err)
			return err
		}

		go s.ServeConn(conn)
	}
}

// ServeConn runs one request/response exchange and tears the connection down.
// Malformed and unsupported requests are answered with an error page instead
// of propagating; only I/O failures abort the exchange without a response.
func (s *Server) ServeConn(conn net.Conn) {
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			s.Logger.Error("closing connection error", "error", closeErr)
		}
	}()

	ctx, span := s.tracer.Start(context.Background(), "http.serve_connection")
	defer span.End()

	reqCtx := RequestCtx{
		ID:         uuid.NewString(),
		RemoteAddr: conn.RemoteAddr(),
	}
	span.SetAttributes(attribute.String("conn.id", reqCtx.ID))

	if err := reqCtx.Request.Read(conn); err != nil {
		switch {
		case errors.Is(err, io.EOF):
			// Peer closed before sending anything, nothing to answer.
			return
		case errors.Is(err, ErrRequestTooLarge):
			reqCtx.Response.WithStatusPage(StatusRequestUriTooLong)
		default:
			s.Logger.ErrorContext(ctx, "connection read failed",
				"conn_id", reqCtx.ID, "remote", reqCtx.RemoteAddr.String(), "error", err)
			return
		}
	} else if err := reqCtx.Request.Parse(); err != nil {
		s.Logger.WarnContext(ctx, "rejecting request",
			"conn_id", reqCtx.ID, "remote", reqCtx.RemoteAddr.String(), "error", err)
		reqCtx.Response.WithStatusPage(StatusFromError(err))
	} else {
		s.Handler(&reqCtx)
	}

	bw := bufio.NewWriterSize(conn, DefaultWriteBufferSize)
	if err := reqCtx.Response.Write(bw); err != nil {
		s.Logger.ErrorContext(ctx, "connection write failed",
			"conn_id", reqCtx.ID, "error", err)
		return
	}

	status := int(reqCtx.Response.Status)
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	s.requests.Add(ctx, 1, metric.WithAttributes(attribute.Int("http.response.status_code", status)))

	s.Logger.InfoContext(ctx, "request served",
		"conn_id", reqCtx.ID,
		"remote", reqCtx.RemoteAddr.String(),
		"path", string(reqCtx.Request.Path),
		"status", status,
		"bytes", len(reqCtx.Response.Body))
}

// Shutdown closes the listener, which makes Serve return nil.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Close()
}
