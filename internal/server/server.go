package server

import (
    "errors"
    "log"
    "net"
    "sync"
    "sync/atomic"

    "github.com/xaitan80/rawhttp/internal/request"
    "github.com/xaitan80/rawhttp/internal/response"
)

// Handler maps a parsed request to the response to send.
type Handler func(r *request.Request) *response.Response

type Server struct {
    ln     net.Listener
    closed atomic.Bool
    done   chan struct{}
    h      Handler

    mu   sync.Mutex
    conn net.Conn // connection being handled, if any
}

// Serve starts a TCP listener on addr and begins accepting connections in
// a background goroutine. Connections are handled one at a time.
func Serve(addr string, h Handler) (*Server, error) {
    ln, err := net.Listen("tcp", addr)
    if err != nil {
        return nil, err
    }
    s := &Server{ln: ln, h: h, done: make(chan struct{})}
    go s.listen()
    return s, nil
}

// Addr returns the listener's address.
func (s *Server) Addr() net.Addr {
    return s.ln.Addr()
}

// Close stops the server. The connection in flight, if any, is closed
// before waiting for the accept loop, so an idle client cannot hold up
// shutdown.
func (s *Server) Close() error {
    if s == nil {
        return nil
    }
    if s.closed.Swap(true) {
        return nil
    }
    err := s.ln.Close()
    s.mu.Lock()
    if s.conn != nil {
        _ = s.conn.Close()
    }
    s.mu.Unlock()
    <-s.done
    return err
}

// listen accepts connections until the server is closed. Each connection is
// fully handled before the next Accept.
func (s *Server) listen() {
    defer close(s.done)
    for {
        conn, err := s.ln.Accept()
        if err != nil {
            if s.closed.Load() {
                return
            }
            log.Printf("accept error: %v", err)
            continue
        }
        if !s.track(conn) {
            conn.Close()
            return
        }
        s.handle(conn)
        s.track(nil)
    }
}

// track records conn as in flight. It reports false once the server is closed.
func (s *Server) track(conn net.Conn) bool {
    s.mu.Lock()
    defer s.mu.Unlock()
    if conn != nil && s.closed.Load() {
        return false
    }
    s.conn = conn
    return true
}

// handle reads one request, writes one response and closes the connection.
func (s *Server) handle(conn net.Conn) {
    defer conn.Close()

    r, err := request.RequestFromReader(conn)
    if err != nil {
        if !errors.Is(err, request.ErrMalformedRequest) {
            log.Printf("read from %s: %v", conn.RemoteAddr(), err)
            return
        }
        // On parse error, return 400 with plain text error
        log.Printf("bad request from %s: %v", conn.RemoteAddr(), err)
        if werr := response.Write(conn, response.Text(response.StatusBadRequest, err.Error()+"\n")); werr != nil {
            log.Printf("write to %s: %v", conn.RemoteAddr(), werr)
        }
        return
    }

    var res *response.Response
    if s.h != nil {
        res = s.h(r)
    }
    // If handler produced nothing, write default empty 200
    if res == nil {
        res = response.Empty(response.StatusOK)
    }
    if err := response.Write(conn, res); err != nil {
        log.Printf("write to %s: %v", conn.RemoteAddr(), err)
        return
    }
    log.Printf("%s %s -> %d", r.RequestLine.Method, r.RequestLine.RequestTarget, int(res.Status))
}
