package talentwire

import (
	"context"
	"fmt"
)

// CreateIndex creates a new index for documents of the given type.
func (c *Client) CreateIndex(ctx context.Context, indexID string, indexType IndexType) (*ActionResponse, error) {
	if indexID == "" {
		return nil, fmt.Errorf("index ID is required")
	}
	apiReq, err := createIndexRequest(indexID, indexType)
	if err != nil {
		return nil, err
	}
	return call[struct{}](ctx, c, apiReq)
}

// ListIndexes returns all indexes on the account.
func (c *Client) ListIndexes(ctx context.Context) (*ListIndexesResponse, error) {
	apiReq, err := listIndexesRequest()
	if err != nil {
		return nil, err
	}
	return call[[]Index](ctx, c, apiReq)
}

// DeleteIndex removes an index and every document in it.
func (c *Client) DeleteIndex(ctx context.Context, indexID string) (*ActionResponse, error) {
	if indexID == "" {
		return nil, fmt.Errorf("index ID is required")
	}
	apiReq, err := deleteIndexRequest(indexID)
	if err != nil {
		return nil, err
	}
	return call[struct{}](ctx, c, apiReq)
}

// IndexResume stores a parsed resume into an index under the given document
// ID. Re-indexing an existing ID replaces the document.
func (c *Client) IndexResume(ctx context.Context, indexID, documentID string, req *IndexResumeRequest) (*ActionResponse, error) {
	if indexID == "" || documentID == "" {
		return nil, fmt.Errorf("index ID and document ID are required")
	}
	if req == nil || req.ResumeData == nil {
		return nil, fmt.Errorf("resume data is required")
	}
	apiReq, err := indexResumeRequest(indexID, documentID, req)
	if err != nil {
		return nil, err
	}
	return call[struct{}](ctx, c, apiReq)
}

// IndexJob stores a parsed job into an index under the given document ID.
func (c *Client) IndexJob(ctx context.Context, indexID, documentID string, req *IndexJobRequest) (*ActionResponse, error) {
	if indexID == "" || documentID == "" {
		return nil, fmt.Errorf("index ID and document ID are required")
	}
	if req == nil || req.JobData == nil {
		return nil, fmt.Errorf("job data is required")
	}
	apiReq, err := indexJobRequest(indexID, documentID, req)
	if err != nil {
		return nil, err
	}
	return call[struct{}](ctx, c, apiReq)
}

// DeleteDocument removes one document from an index.
func (c *Client) DeleteDocument(ctx context.Context, indexID, documentID string) (*ActionResponse, error) {
	if indexID == "" || documentID == "" {
		return nil, fmt.Errorf("index ID and document ID are required")
	}
	apiReq, err := deleteDocumentRequest(indexID, documentID)
	if err != nil {
		return nil, err
	}
	return call[struct{}](ctx, c, apiReq)
}

// DeleteDocuments removes a batch of documents from an index in one call.
func (c *Client) DeleteDocuments(ctx context.Context, indexID string, documentIDs []string) (*ActionResponse, error) {
	if indexID == "" {
		return nil, fmt.Errorf("index ID is required")
	}
	if len(documentIDs) == 0 {
		return nil, fmt.Errorf("at least one document ID is required")
	}
	apiReq, err := deleteDocumentsRequest(indexID, documentIDs)
	if err != nil {
		return nil, err
	}
	return call[struct{}](ctx, c, apiReq)
}

// UpdateDocumentTags replaces the user-defined tags on the given indexed
// documents.
func (c *Client) UpdateDocumentTags(ctx context.Context, indexID string, updates []DocumentTagsUpdate) (*ActionResponse, error) {
	if indexID == "" {
		return nil, fmt.Errorf("index ID is required")
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("at least one tag update is required")
	}
	apiReq, err := updateDocumentTagsRequest(indexID, updates)
	if err != nil {
		return nil, err
	}
	return call[struct{}](ctx, c, apiReq)
}
