package httpclient

import (
	"compress/gzip"
	"compress/zlib"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

// decodeBody unwraps the response body according to Content-Encoding.
// Setting Accept-Encoding explicitly turns off net/http's transparent gzip
// handling, so every encoding we advertise is decoded here.
func decodeBody(resp *http.Response) (io.ReadCloser, error) {
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "gzip":
		return gzip.NewReader(resp.Body)
	case "deflate":
		return zlib.NewReader(resp.Body)
	case "br":
		return io.NopCloser(brotli.NewReader(resp.Body)), nil
	default:
		return io.NopCloser(resp.Body), nil
	}
}
