package talentwire

import (
	"context"
	"fmt"
)

// MatchResume matches a parsed resume against one or more indexes.
func (c *Client) MatchResume(ctx context.Context, req *MatchResumeRequest) (*MatchResponse, error) {
	apiReq, err := buildMatchResume(req, nil)
	if err != nil {
		return nil, err
	}
	return call[MatchValue](ctx, c, apiReq)
}

// MatchJob matches a parsed job against one or more indexes.
func (c *Client) MatchJob(ctx context.Context, req *MatchJobRequest) (*MatchResponse, error) {
	apiReq, err := buildMatchJob(req, nil)
	if err != nil {
		return nil, err
	}
	return call[MatchValue](ctx, c, apiReq)
}

// MatchIndexedDocument matches a document already stored in an index against
// one or more indexes.
func (c *Client) MatchIndexedDocument(ctx context.Context, indexID, documentID string, req *MatchIndexedDocumentRequest) (*MatchResponse, error) {
	apiReq, err := buildMatchIndexedDocument(indexID, documentID, req, nil)
	if err != nil {
		return nil, err
	}
	return call[MatchValue](ctx, c, apiReq)
}

// Search runs a filtered, unscored search over one or more indexes.
func (c *Client) Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error) {
	apiReq, err := buildSearch(req, nil)
	if err != nil {
		return nil, err
	}
	return call[SearchValue](ctx, c, apiReq)
}

// BimetricScoreResumes scores a source document against resume targets. The
// target kind is fixed by the request type rather than inferred from which
// list happens to be populated.
func (c *Client) BimetricScoreResumes(ctx context.Context, req *BimetricScoreResumesRequest) (*BimetricScoreResponse, error) {
	apiReq, err := buildBimetricScoreResumes(req, nil)
	if err != nil {
		return nil, err
	}
	return call[BimetricScoreValue](ctx, c, apiReq)
}

// BimetricScoreJobs scores a source document against job targets.
func (c *Client) BimetricScoreJobs(ctx context.Context, req *BimetricScoreJobsRequest) (*BimetricScoreResponse, error) {
	apiReq, err := buildBimetricScoreJobs(req, nil)
	if err != nil {
		return nil, err
	}
	return call[BimetricScoreValue](ctx, c, apiReq)
}

// UI returns a view of the client whose matching operations generate an
// interactive session instead of returning raw results.
func (c *Client) UI(opts UIOptions) *UIClient {
	return &UIClient{client: c, options: opts}
}

// UIClient is the session-generating variant of the matching operations.
// Each method hits the ui-prefixed twin of the plain endpoint and returns
// the URL of a hosted session.
type UIClient struct {
	client  *Client
	options UIOptions
}

// MatchResume generates a UI session for a resume match.
func (u *UIClient) MatchResume(ctx context.Context, req *MatchResumeRequest) (*UISessionResponse, error) {
	apiReq, err := buildMatchResume(req, &u.options)
	if err != nil {
		return nil, err
	}
	return call[UISessionValue](ctx, u.client, apiReq)
}

// MatchJob generates a UI session for a job match.
func (u *UIClient) MatchJob(ctx context.Context, req *MatchJobRequest) (*UISessionResponse, error) {
	apiReq, err := buildMatchJob(req, &u.options)
	if err != nil {
		return nil, err
	}
	return call[UISessionValue](ctx, u.client, apiReq)
}

// MatchIndexedDocument generates a UI session for an indexed-document match.
func (u *UIClient) MatchIndexedDocument(ctx context.Context, indexID, documentID string, req *MatchIndexedDocumentRequest) (*UISessionResponse, error) {
	apiReq, err := buildMatchIndexedDocument(indexID, documentID, req, &u.options)
	if err != nil {
		return nil, err
	}
	return call[UISessionValue](ctx, u.client, apiReq)
}

// Search generates a UI session for an index search.
func (u *UIClient) Search(ctx context.Context, req *SearchRequest) (*UISessionResponse, error) {
	apiReq, err := buildSearch(req, &u.options)
	if err != nil {
		return nil, err
	}
	return call[UISessionValue](ctx, u.client, apiReq)
}

// BimetricScoreResumes generates a UI session for a bimetric score against
// resume targets.
func (u *UIClient) BimetricScoreResumes(ctx context.Context, req *BimetricScoreResumesRequest) (*UISessionResponse, error) {
	apiReq, err := buildBimetricScoreResumes(req, &u.options)
	if err != nil {
		return nil, err
	}
	return call[UISessionValue](ctx, u.client, apiReq)
}

// BimetricScoreJobs generates a UI session for a bimetric score against job
// targets.
func (u *UIClient) BimetricScoreJobs(ctx context.Context, req *BimetricScoreJobsRequest) (*UISessionResponse, error) {
	apiReq, err := buildBimetricScoreJobs(req, &u.options)
	if err != nil {
		return nil, err
	}
	return call[UISessionValue](ctx, u.client, apiReq)
}

// Shared validation between the plain and UI variants.

func buildMatchResume(req *MatchResumeRequest, ui *UIOptions) (*apiRequest, error) {
	if req == nil || req.ResumeData == nil {
		return nil, fmt.Errorf("resume data is required")
	}
	if len(req.IndexIDsToSearchInto) == 0 {
		return nil, fmt.Errorf("at least one index ID is required")
	}
	return matchResumeRequest(req, ui)
}

func buildMatchJob(req *MatchJobRequest, ui *UIOptions) (*apiRequest, error) {
	if req == nil || req.JobData == nil {
		return nil, fmt.Errorf("job data is required")
	}
	if len(req.IndexIDsToSearchInto) == 0 {
		return nil, fmt.Errorf("at least one index ID is required")
	}
	return matchJobRequest(req, ui)
}

func buildMatchIndexedDocument(indexID, documentID string, req *MatchIndexedDocumentRequest, ui *UIOptions) (*apiRequest, error) {
	if indexID == "" || documentID == "" {
		return nil, fmt.Errorf("index ID and document ID are required")
	}
	if req == nil || len(req.IndexIDsToSearchInto) == 0 {
		return nil, fmt.Errorf("at least one index ID is required")
	}
	return matchIndexedDocumentRequest(indexID, documentID, req, ui)
}

func buildSearch(req *SearchRequest, ui *UIOptions) (*apiRequest, error) {
	if req == nil || len(req.IndexIDsToSearchInto) == 0 {
		return nil, fmt.Errorf("at least one index ID is required")
	}
	return searchRequest(req, ui)
}

func buildBimetricScoreResumes(req *BimetricScoreResumesRequest, ui *UIOptions) (*apiRequest, error) {
	if req == nil {
		return nil, fmt.Errorf("a request is required")
	}
	if err := validateBimetricSource(req.SourceResume, req.SourceJob); err != nil {
		return nil, err
	}
	if len(req.TargetResumes) == 0 {
		return nil, fmt.Errorf("at least one target resume is required")
	}
	return bimetricScoreResumesRequest(req, ui)
}

func buildBimetricScoreJobs(req *BimetricScoreJobsRequest, ui *UIOptions) (*apiRequest, error) {
	if req == nil {
		return nil, fmt.Errorf("a request is required")
	}
	if err := validateBimetricSource(req.SourceResume, req.SourceJob); err != nil {
		return nil, err
	}
	if len(req.TargetJobs) == 0 {
		return nil, fmt.Errorf("at least one target job is required")
	}
	return bimetricScoreJobsRequest(req, ui)
}

func validateBimetricSource(resume *ParsedResumeWithID, job *ParsedJobWithID) error {
	if (resume == nil) == (job == nil) {
		return fmt.Errorf("exactly one of SourceResume or SourceJob must be set")
	}
	return nil
}
