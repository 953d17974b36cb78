package talentwire

import (
	"context"
	"fmt"
)

// GeocodeResume geocodes the address of an already-parsed resume and returns
// the resume with coordinates filled in.
func (c *Client) GeocodeResume(ctx context.Context, req *GeocodeResumeRequest) (*GeocodeResumeResponse, error) {
	if req == nil || req.ResumeData == nil {
		return nil, fmt.Errorf("resume data is required")
	}
	apiReq, err := geocodeResumeRequest(req)
	if err != nil {
		return nil, err
	}
	return call[GeocodeResumeValue](ctx, c, apiReq)
}

// GeocodeJob geocodes the address of an already-parsed job.
func (c *Client) GeocodeJob(ctx context.Context, req *GeocodeJobRequest) (*GeocodeJobResponse, error) {
	if req == nil || req.JobData == nil {
		return nil, fmt.Errorf("job data is required")
	}
	apiReq, err := geocodeJobRequest(req)
	if err != nil {
		return nil, err
	}
	return call[GeocodeJobValue](ctx, c, apiReq)
}

// GeocodeAndIndexResume geocodes a parsed resume and stores it into the
// given index in one round trip. When geocoding succeeded but the embedded
// indexing stage failed, the returned error is an *IndexError that still
// exposes the geocoded resume.
func (c *Client) GeocodeAndIndexResume(ctx context.Context, indexID, documentID string, req *GeocodeAndIndexResumeRequest) (*GeocodeAndIndexResumeResponse, error) {
	if indexID == "" || documentID == "" {
		return nil, fmt.Errorf("index ID and document ID are required")
	}
	if req == nil || req.ResumeData == nil {
		return nil, fmt.Errorf("resume data is required")
	}
	apiReq, err := geocodeAndIndexResumeRequest(indexID, documentID, req)
	if err != nil {
		return nil, err
	}
	resp, err := call[GeocodeAndIndexResumeValue](ctx, c, apiReq)
	if err != nil {
		return nil, err
	}
	if err := checkSubOperations(resp.Info, nil, resp.Value.IndexingResponse, resp.Value.ResumeData, nil); err != nil {
		return nil, err
	}
	return resp, nil
}

// GeocodeAndIndexJob geocodes a parsed job and stores it into the given
// index, with the same partial-failure behavior as GeocodeAndIndexResume.
func (c *Client) GeocodeAndIndexJob(ctx context.Context, indexID, documentID string, req *GeocodeAndIndexJobRequest) (*GeocodeAndIndexJobResponse, error) {
	if indexID == "" || documentID == "" {
		return nil, fmt.Errorf("index ID and document ID are required")
	}
	if req == nil || req.JobData == nil {
		return nil, fmt.Errorf("job data is required")
	}
	apiReq, err := geocodeAndIndexJobRequest(indexID, documentID, req)
	if err != nil {
		return nil, err
	}
	resp, err := call[GeocodeAndIndexJobValue](ctx, c, apiReq)
	if err != nil {
		return nil, err
	}
	if err := checkSubOperations(resp.Info, nil, resp.Value.IndexingResponse, nil, resp.Value.JobData); err != nil {
		return nil, err
	}
	return resp, nil
}
