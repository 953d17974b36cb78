package talentwire

import (
	"context"
	"fmt"
)

// ParseResume parses a resume document, optionally geocoding and indexing it
// in the same round trip. A single successful response can carry up to three
// independent outcomes (parse, geocode, index); when the parse itself
// succeeded but an embedded stage failed, the returned error is a
// *GeocodeError or *IndexError that still exposes the parsed resume.
func (c *Client) ParseResume(ctx context.Context, req *ParseRequest) (*ParseResumeResponse, error) {
	if req == nil || req.DocumentAsBase64String == "" {
		return nil, fmt.Errorf("a document is required")
	}
	apiReq, err := parseResumeRequest(req)
	if err != nil {
		return nil, err
	}
	resp, err := call[ParseResumeValue](ctx, c, apiReq)
	if err != nil {
		return nil, err
	}
	if err := checkSubOperations(resp.Info, resp.Value.GeocodeResponse, resp.Value.IndexingResponse, resp.Value.ResumeData, nil); err != nil {
		return nil, err
	}
	return resp, nil
}

// ParseJob parses a job order document, with the same optional geocoding and
// indexing stages and the same partial-failure behavior as ParseResume.
func (c *Client) ParseJob(ctx context.Context, req *ParseRequest) (*ParseJobResponse, error) {
	if req == nil || req.DocumentAsBase64String == "" {
		return nil, fmt.Errorf("a document is required")
	}
	apiReq, err := parseJobRequest(req)
	if err != nil {
		return nil, err
	}
	resp, err := call[ParseJobValue](ctx, c, apiReq)
	if err != nil {
		return nil, err
	}
	if err := checkSubOperations(resp.Info, resp.Value.GeocodeResponse, resp.Value.IndexingResponse, nil, resp.Value.JobData); err != nil {
		return nil, err
	}
	return resp, nil
}

// checkSubOperations unbundles the embedded stage outcomes of a composite
// call. Geocoding runs before indexing on the server, so when both stages
// failed the geocode failure is the one surfaced.
func checkSubOperations(info ResponseInfo, geocode, indexing *SubOperationStatus, resume *ParsedResume, job *ParsedJob) error {
	if geocode != nil && !geocode.IsSuccess() {
		return &GeocodeError{
			Code:          geocode.Code,
			Message:       geocode.Message,
			TransactionID: info.TransactionID,
			Resume:        resume,
			Job:           job,
		}
	}
	if indexing != nil && !indexing.IsSuccess() {
		return &IndexError{
			Code:          indexing.Code,
			Message:       indexing.Message,
			TransactionID: info.TransactionID,
			Resume:        resume,
			Job:           job,
		}
	}
	return nil
}
