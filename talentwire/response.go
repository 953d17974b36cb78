package talentwire

import "encoding/json"

// Response is the envelope every TalentWire endpoint returns: a status info
// block plus the operation payload.
type Response[T any] struct {
	Info  ResponseInfo `json:"Info"`
	Value T            `json:"Value"`
}

// result pairs one raw exchange with the outcome of typed deserialization.
// The raw body text is retained only when the call was unsuccessful or the
// payload could not be decoded; normal successful calls never duplicate it.
type result[T any] struct {
	raw       *rawResult
	payload   *Response[T]
	rawBody   string
	decodeErr error
}

// decode applies the deserialization policy to a raw exchange:
//
//   - status outside [200,299]: no decode attempt, raw body retained for
//     diagnostics, decoded with the declared charset (UTF-8 default)
//   - non-JSON media type: no decode attempt, payload left unset
//   - JSON decode failure on a 2xx: payload unset, raw body retained, the
//     parser fault recorded
func decode[T any](raw *rawResult) *result[T] {
	res := &result[T]{raw: raw}
	mediaType, enc := parseContentType(raw.header.Get("Content-Type"))

	if !raw.successful() {
		res.rawBody = decodeText(raw.body, enc)
		return res
	}
	if mediaType != mediaTypeJSON {
		return res
	}

	var env Response[T]
	if err := json.Unmarshal(raw.body, &env); err != nil {
		res.decodeErr = err
		res.rawBody = decodeText(raw.body, enc)
		return res
	}
	res.payload = &env
	return res
}
