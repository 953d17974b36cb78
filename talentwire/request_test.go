package talentwire

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		path     string
		expected string
	}{
		{"no slashes", "https://api.example.com/v10", "parser/resume", "https://api.example.com/v10/parser/resume"},
		{"trailing slash on base", "https://api.example.com/v10/", "parser/resume", "https://api.example.com/v10/parser/resume"},
		{"leading slash on path", "https://api.example.com/v10", "/parser/resume", "https://api.example.com/v10/parser/resume"},
		{"slashes on both", "https://api.example.com/v10/", "/parser/resume", "https://api.example.com/v10/parser/resume"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, joinURL(tt.base, tt.path))
		})
	}
}

func TestEndpointCatalog(t *testing.T) {
	resume := &ParsedResume{ProfessionalSummary: "engineer"}
	job := &ParsedJob{JobTitle: "plumber"}

	tests := []struct {
		name   string
		build  func() (*apiRequest, error)
		method string
		path   string
	}{
		{
			name:   "parse resume",
			build:  func() (*apiRequest, error) { return parseResumeRequest(&ParseRequest{}) },
			method: http.MethodPost,
			path:   "parser/resume",
		},
		{
			name:   "parse job",
			build:  func() (*apiRequest, error) { return parseJobRequest(&ParseRequest{}) },
			method: http.MethodPost,
			path:   "parser/joborder",
		},
		{
			name:   "create index",
			build:  func() (*apiRequest, error) { return createIndexRequest("resumes", IndexTypeResume) },
			method: http.MethodPost,
			path:   "index/resumes",
		},
		{
			name:   "list indexes",
			build:  listIndexesRequest,
			method: http.MethodGet,
			path:   "index",
		},
		{
			name:   "delete index",
			build:  func() (*apiRequest, error) { return deleteIndexRequest("resumes") },
			method: http.MethodDelete,
			path:   "index/resumes",
		},
		{
			name: "index resume",
			build: func() (*apiRequest, error) {
				return indexResumeRequest("resumes", "doc-1", &IndexResumeRequest{ResumeData: resume})
			},
			method: http.MethodPost,
			path:   "index/resumes/resume/doc-1",
		},
		{
			name: "index job",
			build: func() (*apiRequest, error) {
				return indexJobRequest("jobs", "doc-1", &IndexJobRequest{JobData: job})
			},
			method: http.MethodPost,
			path:   "index/jobs/joborder/doc-1",
		},
		{
			name:   "delete document",
			build:  func() (*apiRequest, error) { return deleteDocumentRequest("resumes", "doc-1") },
			method: http.MethodDelete,
			path:   "index/resumes/documents/doc-1",
		},
		{
			name:   "delete documents batch",
			build:  func() (*apiRequest, error) { return deleteDocumentsRequest("resumes", []string{"a", "b"}) },
			method: http.MethodPost,
			path:   "index/resumes/documents/delete",
		},
		{
			name: "update document tags",
			build: func() (*apiRequest, error) {
				return updateDocumentTagsRequest("resumes", []DocumentTagsUpdate{{DocumentID: "a"}})
			},
			method: http.MethodPatch,
			path:   "index/resumes/documents",
		},
		{
			name: "match resume",
			build: func() (*apiRequest, error) {
				return matchResumeRequest(&MatchResumeRequest{ResumeData: resume}, nil)
			},
			method: http.MethodPost,
			path:   "matcher/resume",
		},
		{
			name: "match indexed document",
			build: func() (*apiRequest, error) {
				return matchIndexedDocumentRequest("resumes", "doc-1", &MatchIndexedDocumentRequest{}, nil)
			},
			method: http.MethodPost,
			path:   "matcher/indexes/resumes/documents/doc-1",
		},
		{
			name:   "search",
			build:  func() (*apiRequest, error) { return searchRequest(&SearchRequest{}, nil) },
			method: http.MethodPost,
			path:   "searcher",
		},
		{
			name: "bimetric score resumes",
			build: func() (*apiRequest, error) {
				return bimetricScoreResumesRequest(&BimetricScoreResumesRequest{}, nil)
			},
			method: http.MethodPost,
			path:   "scorer/bimetric",
		},
		{
			name:   "geocode resume",
			build:  func() (*apiRequest, error) { return geocodeResumeRequest(&GeocodeResumeRequest{ResumeData: resume}) },
			method: http.MethodPost,
			path:   "geocoder/resume",
		},
		{
			name: "geocode and index job",
			build: func() (*apiRequest, error) {
				return geocodeAndIndexJobRequest("jobs", "doc-1", &GeocodeAndIndexJobRequest{JobData: job})
			},
			method: http.MethodPost,
			path:   "geocoder/joborder/indexes/jobs/documents/doc-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.method, req.method)
			assert.Equal(t, tt.path, req.path)
		})
	}
}

func TestRequestPathEscaping(t *testing.T) {
	req, err := deleteDocumentRequest("my index", "doc/1")
	require.NoError(t, err)
	assert.Equal(t, "index/my%20index/documents/doc%2F1", req.path)
}

func TestRequestBodyAndContentType(t *testing.T) {
	t.Run("with payload", func(t *testing.T) {
		req, err := createIndexRequest("resumes", IndexTypeResume)
		require.NoError(t, err)
		assert.Equal(t, "application/json; charset=utf-8", req.header.Get("Content-Type"))
		assert.JSONEq(t, `{"IndexType":"Resume"}`, string(req.body))
	})

	t.Run("without payload", func(t *testing.T) {
		req, err := listIndexesRequest()
		require.NoError(t, err)
		assert.Nil(t, req.body)
		assert.Empty(t, req.header.Get("Content-Type"))
	})
}

func TestUIVariantWrapsRequest(t *testing.T) {
	match := &MatchResumeRequest{
		ResumeData:           &ParsedResume{ProfessionalSummary: "engineer"},
		IndexIDsToSearchInto: []string{"resumes"},
	}
	ui := &UIOptions{Username: "recruiter", Style: &UIStyle{PrimaryColor: "#336699"}}

	req, err := matchResumeRequest(match, ui)
	require.NoError(t, err)
	assert.Equal(t, "ui/matcher/resume", req.path)

	var body struct {
		UIOptions UIOptions
		Request   MatchResumeRequest
	}
	require.NoError(t, json.Unmarshal(req.body, &body))
	assert.Equal(t, "recruiter", body.UIOptions.Username)
	assert.Equal(t, "#336699", body.UIOptions.Style.PrimaryColor)
	assert.Equal(t, []string{"resumes"}, body.Request.IndexIDsToSearchInto)
}

func TestPlainVariantHasNoWrapper(t *testing.T) {
	match := &MatchResumeRequest{
		ResumeData:           &ParsedResume{},
		IndexIDsToSearchInto: []string{"resumes"},
	}
	req, err := matchResumeRequest(match, nil)
	require.NoError(t, err)
	assert.Equal(t, "matcher/resume", req.path)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(req.body, &body))
	assert.NotContains(t, body, "UIOptions")
	assert.Contains(t, body, "IndexIdsToSearchInto")
}
