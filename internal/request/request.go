package request

import (
    "bytes"
    "errors"
    "fmt"
    "io"
    "strings"

    "github.com/xaitan80/rawhttp/internal/headers"
)

// MaxRequestSize is the most bytes read from a connection for one request.
// Anything past it is never read, so larger requests arrive truncated.
const MaxRequestSize = 1024

// ErrMalformedRequest is returned when the request line lacks a method and target.
var ErrMalformedRequest = errors.New("malformed request")

type Request struct {
    RequestLine RequestLine
    Headers     headers.Headers
    Body        []byte
}

type RequestLine struct {
    HttpVersion   string
    RequestTarget string
    Method        string
}

// RequestFromReader performs a single read of at most MaxRequestSize bytes
// and parses the result. An immediate EOF yields the default request.
func RequestFromReader(reader io.Reader) (*Request, error) {
    buf := make([]byte, MaxRequestSize)
    n, err := reader.Read(buf)
    if err != nil && err != io.EOF {
        return nil, err
    }
    return Parse(buf[:n])
}

// Parse builds a Request from raw bytes.
//
// Lines end at LF with an optional preceding CR. The first line is split on
// whitespace into method, target and optional version. Header lines follow
// up to the first blank line; lines without a ": " separator are skipped.
// Everything after the blank line is the body, byte for byte.
//
// Empty input is treated as "GET /".
func Parse(data []byte) (*Request, error) {
    r := &Request{Headers: headers.NewHeaders()}
    if len(data) == 0 {
        r.RequestLine = RequestLine{Method: "GET", RequestTarget: "/"}
        return r, nil
    }

    line, pos := nextLine(data, 0)
    rl, err := parseRequestLine(line)
    if err != nil {
        return nil, err
    }
    r.RequestLine = rl

    for pos < len(data) {
        line, next := nextLine(data, pos)
        pos = next
        if line == "" {
            r.Body = bytes.Clone(data[pos:])
            break
        }
        // A bad header line is dropped rather than failing the request.
        r.Headers.Parse(line)
    }
    return r, nil
}

// nextLine returns the line starting at pos without its terminator, and the
// offset just past the terminator.
func nextLine(data []byte, pos int) (string, int) {
    rest := data[pos:]
    lf := bytes.IndexByte(rest, '\n')
    if lf == -1 {
        return string(bytes.TrimSuffix(rest, []byte{'\r'})), len(data)
    }
    return string(bytes.TrimSuffix(rest[:lf], []byte{'\r'})), pos + lf + 1
}

func parseRequestLine(line string) (RequestLine, error) {
    parts := strings.Fields(line)
    if len(parts) < 2 {
        return RequestLine{}, fmt.Errorf("%w: request line %q", ErrMalformedRequest, line)
    }
    rl := RequestLine{
        Method:        parts[0],
        RequestTarget: parts[1],
    }
    if len(parts) > 2 {
        rl.HttpVersion = strings.TrimPrefix(parts[2], "HTTP/")
    }
    return rl, nil
}
