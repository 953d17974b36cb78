// Package talentwire provides a client for the TalentWire talent-intelligence API.
//
// TalentWire is a SaaS platform for resume and job parsing, AI matching,
// document indexing and geocoding. This package wraps its REST endpoints
// behind typed request/response models; all parsing, scoring and index
// storage happens on the remote service.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the façade exposing one method per logical operation
//   - Transport: performs one HTTP exchange per call, converting network
//     failures into response-shaped results with a sentinel status
//   - Request builder: maps operations to paths, methods and JSON bodies
//   - Response envelope: decodes JSON payloads only when the content type
//     says so, retaining the raw body for diagnostics on failure
//   - Errors: structured error types for API, geocoding and indexing faults
//
// # Usage
//
// Create a client with your account credentials and data center:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := talentwire.NewClient(
//		"12345678",
//		"your-service-key",
//		talentwire.DataCenterEU,
//		logger,
//		talentwire.WithTimeout(60*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	doc := talentwire.NewDocument(fileBytes, modTime)
//	resp, err := client.ParseResume(ctx, &talentwire.ParseRequest{Document: doc})
//
// # Error handling
//
// Every failure surfaces as a typed, catchable error:
//
//   - *APIError: the server reported a failure, or never answered at all
//   - *GeocodeError: parsing succeeded but the embedded geocoding stage
//     failed; the parsed document is still available on the error
//   - *IndexError: same, for the embedded indexing stage
//
// Use errors.As or the As* helpers to classify:
//
//	if apiErr, ok := talentwire.AsAPIError(err); ok && apiErr.IsTimeout() {
//		// the server never answered
//	}
//
// The SDK never retries on its own; retry policy belongs to the caller,
// which knows which of its operations are idempotent.
package talentwire
