package talentwire

import (
	"mime"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

const mediaTypeJSON = "application/json"

// parseContentType splits a Content-Type header value into its media type
// and declared text encoding. Missing, unknown or unparseable values fall
// back to UTF-8 silently; content negotiation never fails a call.
func parseContentType(value string) (string, encoding.Encoding) {
	if value == "" {
		return "", unicode.UTF8
	}
	mediaType, params, err := mime.ParseMediaType(value)
	if err != nil {
		return "", unicode.UTF8
	}
	enc := encoding.Encoding(unicode.UTF8)
	if charset, ok := params["charset"]; ok {
		if e, err := htmlindex.Get(charset); err == nil {
			enc = e
		}
	}
	return mediaType, enc
}

// decodeText decodes raw body bytes with the declared encoding. Decoding
// problems fall back to the raw bytes rather than failing the call.
func decodeText(body []byte, enc encoding.Encoding) string {
	if len(body) == 0 {
		return ""
	}
	if enc == nil || enc == unicode.UTF8 {
		return string(body)
	}
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return string(body)
	}
	return string(decoded)
}
