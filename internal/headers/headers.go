package headers

import "strings"

const separator = ": "

// Headers maps a header name, exactly as received, to its value.
// Lookups are case-sensitive and the last occurrence of a name wins.
type Headers map[string]string

// NewHeaders creates an empty Headers map.
func NewHeaders() Headers {
    return make(Headers)
}

// Get returns the value stored for key, or "" if absent.
func (h Headers) Get(key string) string {
    return h[key]
}

// Set stores value under key, replacing any previous value.
func (h Headers) Set(key, value string) {
    h[key] = value
}

// Parse stores a single header line (without its line ending) in the map.
// The line is split on the first ": "; the value is kept verbatim so a
// value may itself contain ": ". It reports false, storing nothing, for a
// line with no separator or an empty name.
func (h Headers) Parse(line string) bool {
    name, value, ok := strings.Cut(line, separator)
    if !ok || name == "" {
        return false
    }
    h[name] = value
    return true
}
