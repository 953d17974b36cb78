package talentwire

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchResume(t *testing.T) {
	var gotPath string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeEnvelope(w, http.StatusOK, MatchResponse{
			Info: successInfo(),
			Value: MatchValue{
				Matches: []MatchResult{
					{ID: "doc-9", IndexID: "jobs", Score: 87.5, WeightedScore: 91.2},
				},
				CurrentCount: 1,
				TotalCount:   14,
			},
		})
	})

	resp, err := client.MatchResume(context.Background(), &MatchResumeRequest{
		ResumeData:           &ParsedResume{},
		IndexIDsToSearchInto: []string{"jobs"},
		Take:                 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "/matcher/resume", gotPath)
	require.Len(t, resp.Value.Matches, 1)
	assert.Equal(t, "doc-9", resp.Value.Matches[0].ID)
	assert.Equal(t, 14, resp.Value.TotalCount)
}

func TestMatchIndexedDocument(t *testing.T) {
	var gotPath string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeEnvelope(w, http.StatusOK, MatchResponse{Info: successInfo()})
	})

	_, err := client.MatchIndexedDocument(context.Background(), "resumes", "doc-1", &MatchIndexedDocumentRequest{
		IndexIDsToSearchInto: []string{"jobs"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/matcher/indexes/resumes/documents/doc-1", gotPath)
}

func TestSearch(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/searcher", r.URL.Path)
		writeEnvelope(w, http.StatusOK, SearchResponse{
			Info: successInfo(),
			Value: SearchValue{
				Results:      []SearchResult{{ID: "doc-3", IndexID: "resumes"}},
				CurrentCount: 1,
				TotalCount:   1,
			},
		})
	})

	resp, err := client.Search(context.Background(), &SearchRequest{
		IndexIDsToSearchInto: []string{"resumes"},
		FilterCriteria:       &FilterCriteria{SearchExpression: "golang AND kubernetes"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Value.Results, 1)
	assert.Equal(t, "doc-3", resp.Value.Results[0].ID)
}

func TestUISessionVariants(t *testing.T) {
	var gotPath string
	var gotBody []byte
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		writeEnvelope(w, http.StatusOK, UISessionResponse{
			Info:  successInfo(),
			Value: UISessionValue{URL: "https://ui.talentwire.com/session/abc", SessionID: "abc"},
		})
	})

	ui := client.UI(UIOptions{Username: "recruiter"})
	resp, err := ui.MatchResume(context.Background(), &MatchResumeRequest{
		ResumeData:           &ParsedResume{},
		IndexIDsToSearchInto: []string{"jobs"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/ui/matcher/resume", gotPath)
	assert.Equal(t, "abc", resp.Value.SessionID)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(gotBody, &body))
	assert.Contains(t, body, "UIOptions")
	assert.Contains(t, body, "Request")

	t.Run("search variant", func(t *testing.T) {
		_, err := ui.Search(context.Background(), &SearchRequest{IndexIDsToSearchInto: []string{"resumes"}})
		require.NoError(t, err)
		assert.Equal(t, "/ui/searcher", gotPath)
	})

	t.Run("bimetric variant", func(t *testing.T) {
		_, err := ui.BimetricScoreJobs(context.Background(), &BimetricScoreJobsRequest{
			SourceResume: &ParsedResumeWithID{ID: "src", ResumeData: &ParsedResume{}},
			TargetJobs:   []ParsedJobWithID{{ID: "tgt", JobData: &ParsedJob{}}},
		})
		require.NoError(t, err)
		assert.Equal(t, "/ui/scorer/bimetric", gotPath)
	})
}

func TestBimetricScoreResumes(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/scorer/bimetric", r.URL.Path)
		writeEnvelope(w, http.StatusOK, BimetricScoreResponse{
			Info: successInfo(),
			Value: BimetricScoreValue{
				Matches: []BimetricScoreResult{{ID: "cand-1", Score: 72.1, ReverseScore: 65.4}},
			},
		})
	})

	resp, err := client.BimetricScoreResumes(context.Background(), &BimetricScoreResumesRequest{
		SourceJob:     &ParsedJobWithID{ID: "req-1", JobData: &ParsedJob{}},
		TargetResumes: []ParsedResumeWithID{{ID: "cand-1", ResumeData: &ParsedResume{}}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Value.Matches, 1)
	assert.Equal(t, 65.4, resp.Value.Matches[0].ReverseScore)
}

func TestBimetricSourceValidation(t *testing.T) {
	client, err := NewClient("acct", "key", DataCenterUS, zerolog.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	targets := []ParsedResumeWithID{{ID: "t", ResumeData: &ParsedResume{}}}

	t.Run("no source", func(t *testing.T) {
		_, err := client.BimetricScoreResumes(ctx, &BimetricScoreResumesRequest{TargetResumes: targets})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one of SourceResume or SourceJob")
	})

	t.Run("both sources", func(t *testing.T) {
		_, err := client.BimetricScoreResumes(ctx, &BimetricScoreResumesRequest{
			SourceResume:  &ParsedResumeWithID{ID: "r"},
			SourceJob:     &ParsedJobWithID{ID: "j"},
			TargetResumes: targets,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one of SourceResume or SourceJob")
	})

	t.Run("no targets", func(t *testing.T) {
		_, err := client.BimetricScoreJobs(ctx, &BimetricScoreJobsRequest{
			SourceResume: &ParsedResumeWithID{ID: "r"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one target job")
	})
}

func TestMatchValidation(t *testing.T) {
	client, err := NewClient("acct", "key", DataCenterUS, zerolog.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = client.MatchResume(ctx, &MatchResumeRequest{ResumeData: &ParsedResume{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one index ID")

	_, err = client.MatchJob(ctx, &MatchJobRequest{IndexIDsToSearchInto: []string{"jobs"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job data is required")

	_, err = client.Search(ctx, &SearchRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one index ID")
}
