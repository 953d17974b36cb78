package talentwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/unicode"
)

func TestParseContentType(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		mediaType string
	}{
		{"plain json", "application/json", "application/json"},
		{"json with charset", "application/json; charset=utf-8", "application/json"},
		{"uppercase", "Application/JSON", "application/json"},
		{"html", "text/html; charset=iso-8859-1", "text/html"},
		{"empty", "", ""},
		{"garbage", ";;;", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mediaType, enc := parseContentType(tt.value)
			assert.Equal(t, tt.mediaType, mediaType)
			assert.NotNil(t, enc)
		})
	}
}

func TestParseContentTypeUnknownCharsetFallsBack(t *testing.T) {
	mediaType, enc := parseContentType("text/plain; charset=klingon")
	assert.Equal(t, "text/plain", mediaType)
	assert.Equal(t, unicode.UTF8, enc)
}

func TestDecodeText(t *testing.T) {
	t.Run("utf-8 passthrough", func(t *testing.T) {
		_, enc := parseContentType("text/plain; charset=utf-8")
		assert.Equal(t, "héllo", decodeText([]byte("héllo"), enc))
	})

	t.Run("latin-1 transcoded", func(t *testing.T) {
		_, enc := parseContentType("text/plain; charset=iso-8859-1")
		assert.Equal(t, "café", decodeText([]byte{'c', 'a', 'f', 0xE9}, enc))
	})

	t.Run("empty body", func(t *testing.T) {
		assert.Equal(t, "", decodeText(nil, unicode.UTF8))
	})
}
