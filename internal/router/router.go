package router

import (
    "log"
    "strconv"
    "strings"

    "github.com/xaitan80/rawhttp/internal/encoding"
    "github.com/xaitan80/rawhttp/internal/files"
    "github.com/xaitan80/rawhttp/internal/request"
    "github.com/xaitan80/rawhttp/internal/response"
)

// Config is resolved once at startup and read-only afterwards.
type Config struct {
    // Directory is the base directory for /files/ routes.
    Directory string
}

// FileStore reads and writes files by name.
type FileStore interface {
    ReadFile(name string) ([]byte, error)
    WriteFile(name string, data []byte) error
}

type Router struct {
    Files FileStore
}

// New returns a Router serving files from cfg.Directory.
func New(cfg Config) *Router {
    return &Router{Files: files.Dir(cfg.Directory)}
}

// Dispatch maps a request to its response. Routes are tried in order and
// the first match wins. It never fails: every error becomes a status code.
func (rt *Router) Dispatch(r *request.Request) *response.Response {
    path := r.RequestLine.RequestTarget
    switch {
    case path == "/":
        return response.Empty(response.StatusOK)
    case strings.Contains(path, "/echo/"):
        return rt.echo(r, lastSegment(path))
    case path == "/user-agent":
        return response.Text(response.StatusOK, r.Headers.Get("User-Agent"))
    case strings.Contains(path, "/files/"):
        return rt.file(r, lastSegment(path))
    default:
        return response.Empty(response.StatusNotFound)
    }
}

func (rt *Router) echo(r *request.Request, text string) *response.Response {
    choice := encoding.Negotiate(r.Headers)
    if choice.None() {
        return response.Text(response.StatusOK, text)
    }

    body := []byte(text)
    if choice.Gzip() {
        gz, err := encoding.Compress(body)
        if err != nil {
            log.Printf("gzip %q: %v", text, err)
            return response.Empty(response.StatusInternalServerError)
        }
        body = gz
    }
    // Encodings that are acknowledged but have no transform are echoed
    // with the body left as is.
    res := response.WithBody(response.StatusOK, "text/plain", body)
    res.Headers.Add("Content-Encoding", choice.Header())
    return res
}

func (rt *Router) file(r *request.Request, name string) *response.Response {
    switch r.RequestLine.Method {
    case "GET":
        content, err := rt.Files.ReadFile(name)
        if err != nil {
            return response.Empty(response.StatusNotFound)
        }
        return response.WithBody(response.StatusOK, "application/octet-stream", content)
    case "POST":
        // Content-Length is informational; the parsed body is written as is.
        declared, err := strconv.ParseUint(r.Headers.Get("Content-Length"), 10, 64)
        if err != nil {
            declared = 0
        }
        if err := rt.Files.WriteFile(name, r.Body); err != nil {
            log.Printf("write %q: %v", name, err)
            return response.Empty(response.StatusInternalServerError)
        }
        log.Printf("wrote %d bytes to %q (Content-Length %d)", len(r.Body), name, declared)
        return response.Empty(response.StatusCreated)
    default:
        return response.Empty(response.StatusNotImplemented)
    }
}

// lastSegment returns the part of path after its final '/'.
func lastSegment(path string) string {
    return path[strings.LastIndexByte(path, '/')+1:]
}
