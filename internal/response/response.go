package response

import (
    "bytes"
    "errors"
    "fmt"
    "io"
    "strconv"
)

// StatusCode is a limited set of HTTP status codes we support.
type StatusCode int

const (
    StatusOK                  StatusCode = 200
    StatusCreated             StatusCode = 201
    StatusBadRequest          StatusCode = 400
    StatusNotFound            StatusCode = 404
    StatusInternalServerError StatusCode = 500
    StatusNotImplemented      StatusCode = 501
)

// Reason returns the reason phrase for the status, or "" if unknown.
func (s StatusCode) Reason() string {
    switch s {
    case StatusOK:
        return "OK"
    case StatusCreated:
        return "Created"
    case StatusBadRequest:
        return "Bad Request"
    case StatusNotFound:
        return "Not Found"
    case StatusInternalServerError:
        return "Internal Server Error"
    case StatusNotImplemented:
        return "Not Implemented"
    default:
        return ""
    }
}

// Header is a single name/value pair.
type Header struct {
    Name  string
    Value string
}

// Headers is an ordered header list; it is written in insertion order.
type Headers []Header

// Add appends a header.
func (h *Headers) Add(name, value string) {
    *h = append(*h, Header{Name: name, Value: value})
}

// Get returns the first value for name, or "" if absent.
func (h Headers) Get(name string) string {
    for _, kv := range h {
        if kv.Name == name {
            return kv.Value
        }
    }
    return ""
}

// Response is a fully built response. Body is written verbatim, so any
// content encoding must already be applied.
type Response struct {
    Status  StatusCode
    Headers Headers
    Body    []byte
}

// Empty returns a response with the given status, no headers and no body.
func Empty(status StatusCode) *Response {
    return &Response{Status: status}
}

// WithBody returns a response carrying body with matching Content-Type and
// Content-Length headers.
func WithBody(status StatusCode, contentType string, body []byte) *Response {
    r := &Response{Status: status, Body: body}
    r.Headers.Add("Content-Type", contentType)
    r.Headers.Add("Content-Length", strconv.Itoa(len(body)))
    return r
}

// Text is WithBody for a text/plain body.
func Text(status StatusCode, body string) *Response {
    return WithBody(status, "text/plain", []byte(body))
}

// WriteStatusLine writes the HTTP/1.1 status line for the given status code.
func WriteStatusLine(w io.Writer, statusCode StatusCode) error {
    reason := statusCode.Reason()
    if reason == "" {
        _, err := fmt.Fprintf(w, "HTTP/1.1 %d\r\n", int(statusCode))
        return err
    }
    _, err := fmt.Fprintf(w, "HTTP/1.1 %d %s\r\n", int(statusCode), reason)
    return err
}

// WriteHeaders writes headers as "Key: Value\r\n" lines and a final CRLF.
func WriteHeaders(w io.Writer, h Headers) error {
    for _, kv := range h {
        if _, err := fmt.Fprintf(w, "%s: %s\r\n", kv.Name, kv.Value); err != nil {
            return err
        }
    }
    // End of headers
    _, err := io.WriteString(w, "\r\n")
    return err
}

// Write renders r to w through a Writer: status line and headers go out
// in one write, the body in a second one.
func Write(w io.Writer, r *Response) error {
    rw := NewWriter(w)
    if err := rw.WriteStatusLine(r.Status); err != nil {
        return err
    }
    if err := rw.WriteHeaders(r.Headers); err != nil {
        return err
    }
    if len(r.Body) == 0 {
        return nil
    }
    _, err := rw.WriteBody(r.Body)
    return err
}

type writerState int

const (
    stateStatusLine writerState = iota
    stateHeaders
    stateBody
)

// ErrWriteOrder is returned when a Writer method is called out of sequence.
var ErrWriteOrder = errors.New("response written out of order")

// Writer writes a response piece by piece: status line, then headers, then
// body. The status line is held back until the headers are complete so the
// head reaches the connection in a single write.
type Writer struct {
    w     io.Writer
    head  bytes.Buffer
    state writerState
}

func NewWriter(w io.Writer) *Writer {
    return &Writer{w: w}
}

func (rw *Writer) WriteStatusLine(statusCode StatusCode) error {
    if rw.state != stateStatusLine {
        return ErrWriteOrder
    }
    if err := WriteStatusLine(&rw.head, statusCode); err != nil {
        return err
    }
    rw.state = stateHeaders
    return nil
}

// WriteHeaders terminates the head and writes it out.
func (rw *Writer) WriteHeaders(h Headers) error {
    if rw.state != stateHeaders {
        return ErrWriteOrder
    }
    if err := WriteHeaders(&rw.head, h); err != nil {
        return err
    }
    rw.state = stateBody
    _, err := rw.w.Write(rw.head.Bytes())
    rw.head.Reset()
    return err
}

func (rw *Writer) WriteBody(p []byte) (int, error) {
    if rw.state != stateBody {
        return 0, ErrWriteOrder
    }
    return rw.w.Write(p)
}
