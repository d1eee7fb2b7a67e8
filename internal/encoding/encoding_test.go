package encoding

import (
    "bytes"
    "compress/gzip"
    "io"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/xaitan80/rawhttp/internal/headers"
)

func acceptEncoding(v string) headers.Headers {
    h := headers.NewHeaders()
    h.Set("Accept-Encoding", v)
    return h
}

func Test_Negotiate_Absent_Header(t *testing.T) {
    c := Negotiate(headers.NewHeaders())
    assert.True(t, c.None())
    assert.False(t, c.Gzip())
    assert.Equal(t, "", c.Header())
}

func Test_Negotiate_Gzip(t *testing.T) {
    c := Negotiate(acceptEncoding("gzip"))
    assert.False(t, c.None())
    assert.True(t, c.Gzip())
    assert.Equal(t, "gzip", c.Header())
}

func Test_Negotiate_Filters_Unsupported(t *testing.T) {
    c := Negotiate(acceptEncoding("deflate, gzip, br"))
    assert.Equal(t, []string{"gzip"}, c.Accepted)
    assert.Equal(t, "gzip", c.Header())
    assert.True(t, c.Gzip())
}

func Test_Negotiate_Only_Unsupported(t *testing.T) {
    for _, v := range []string{"identity", "deflate, br", "", "GZIP"} {
        c := Negotiate(acceptEncoding(v))
        assert.True(t, c.None(), v)
        assert.False(t, c.Gzip(), v)
    }
}

// Lookup of the request header is case-sensitive
func Test_Negotiate_Header_Name_Case(t *testing.T) {
    h := headers.NewHeaders()
    h.Set("accept-encoding", "gzip")
    assert.True(t, Negotiate(h).None())
}

func Test_Choice_Echoes_Client_Order(t *testing.T) {
    c := Choice{Accepted: []string{"gzip", "zstd"}}
    assert.Equal(t, "gzip, zstd", c.Header())
    assert.True(t, c.Gzip())

    c = Choice{Accepted: []string{"zstd"}}
    assert.False(t, c.Gzip())
    assert.False(t, c.None())
}

func Test_Compress_Round_Trip(t *testing.T) {
    for _, in := range []string{"", "abc", "hello world hello world hello world"} {
        out, err := Compress([]byte(in))
        require.NoError(t, err)

        zr, err := gzip.NewReader(bytes.NewReader(out))
        require.NoError(t, err)
        got, err := io.ReadAll(zr)
        require.NoError(t, err)
        assert.Equal(t, in, string(got))
    }
}

// Tokens are split on "," and trimmed, so spacing after the comma is optional
func Test_Negotiate_Comma_Spacing(t *testing.T) {
    for _, v := range []string{"gzip,br", "br,gzip", "br ,  gzip", " gzip "} {
        c := Negotiate(acceptEncoding(v))
        assert.Equal(t, []string{"gzip"}, c.Accepted, v)
        assert.Equal(t, "gzip", c.Header(), v)
    }
    // No token boundary, no match
    assert.True(t, Negotiate(acceptEncoding("gzip br")).None())
}
