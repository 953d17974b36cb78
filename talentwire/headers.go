package talentwire

import (
	"fmt"
	"net/http"
)

// restrictedHeaders are headers the transport manages itself. A non-empty
// value names the dedicated accessor to use instead; an empty value means
// the header cannot be customized at all.
var restrictedHeaders = map[string]string{
	"Content-Type":      "set by the request builder from the operation payload",
	"Content-Length":    "computed from the serialized request body",
	"User-Agent":        "use WithUserAgent",
	"Accept":            "fixed to application/json",
	"Host":              "",
	"Connection":        "",
	"Transfer-Encoding": "",
	"Trailer":           "",
	"Upgrade":           "",
	"Keep-Alive":        "",
	"Te":                "",
	"Proxy-Connection":  "",
}

// setExtraHeader adds a caller-supplied header to h. Restricted names are
// rejected here, at client construction, before any network I/O happens.
func setExtraHeader(h http.Header, name, value string) error {
	canon := http.CanonicalHeaderKey(name)
	if hint, ok := restrictedHeaders[canon]; ok {
		if hint != "" {
			return fmt.Errorf("%w: %s (%s)", ErrRestrictedHeader, canon, hint)
		}
		return fmt.Errorf("%w: %s is not supported", ErrRestrictedHeader, canon)
	}
	h.Set(canon, value)
	return nil
}
