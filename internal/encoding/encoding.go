// Package encoding negotiates the response Content-Encoding from a
// request's Accept-Encoding header and applies the gzip transform.
package encoding

import (
    "bytes"
    "compress/gzip"
    "slices"
    "strings"

    "github.com/xaitan80/rawhttp/internal/headers"
)

const Gzip = "gzip"

// Supported lists the encodings the server acknowledges.
var Supported = []string{Gzip}

// Choice is the outcome of negotiation: the supported encodings the client
// offered, in the client's order.
type Choice struct {
    Accepted []string
}

// Negotiate reads Accept-Encoding from h and filters it down to Supported.
func Negotiate(h headers.Headers) Choice {
    v, ok := h["Accept-Encoding"]
    if !ok {
        return Choice{}
    }
    var c Choice
    for _, tok := range strings.Split(v, ",") {
        tok = strings.TrimSpace(tok)
        if slices.Contains(Supported, tok) {
            c.Accepted = append(c.Accepted, tok)
        }
    }
    return c
}

// None reports whether no supported encoding was offered.
func (c Choice) None() bool {
    return len(c.Accepted) == 0
}

// Header is the Content-Encoding value to echo back.
func (c Choice) Header() string {
    return strings.Join(c.Accepted, ", ")
}

// Gzip reports whether the gzip transform should be applied.
func (c Choice) Gzip() bool {
    return slices.Contains(c.Accepted, Gzip)
}

// Compress gzips data at the default compression level.
func Compress(data []byte) ([]byte, error) {
    var buf bytes.Buffer
    zw := gzip.NewWriter(&buf)
    if _, err := zw.Write(data); err != nil {
        return nil, err
    }
    if err := zw.Close(); err != nil {
        return nil, err
    }
    return buf.Bytes(), nil
}
