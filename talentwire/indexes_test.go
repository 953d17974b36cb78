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

func TestCreateIndex(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		writeEnvelope(w, http.StatusOK, ActionResponse{Info: successInfo()})
	})

	resp, err := client.CreateIndex(context.Background(), "resumes", IndexTypeResume)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/index/resumes", gotPath)
	assert.JSONEq(t, `{"IndexType":"Resume"}`, gotBody)
	assert.Equal(t, "txn-1", resp.Info.TransactionID)
}

func TestListIndexes(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		writeEnvelope(w, http.StatusOK, ListIndexesResponse{
			Info: successInfo(),
			Value: []Index{
				{Name: "resumes", IndexType: IndexTypeResume, DocumentCount: 120},
				{Name: "jobs", IndexType: IndexTypeJob, DocumentCount: 8},
			},
		})
	})

	resp, err := client.ListIndexes(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Value, 2)
	assert.Equal(t, IndexTypeJob, resp.Value[1].IndexType)
	assert.Equal(t, 120, resp.Value[0].DocumentCount)
}

func TestDeleteDocuments(t *testing.T) {
	var gotBody []byte
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/index/resumes/documents/delete", r.URL.Path)
		gotBody, _ = io.ReadAll(r.Body)
		writeEnvelope(w, http.StatusOK, ActionResponse{Info: successInfo()})
	})

	_, err := client.DeleteDocuments(context.Background(), "resumes", []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"DocumentIds":["a","b","c"]}`, string(gotBody))
}

func TestUpdateDocumentTags(t *testing.T) {
	var gotMethod string
	var gotBody []byte
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		writeEnvelope(w, http.StatusOK, ActionResponse{Info: successInfo()})
	})

	_, err := client.UpdateDocumentTags(context.Background(), "resumes", []DocumentTagsUpdate{
		{DocumentID: "doc-1", UserDefinedTags: []string{"shortlisted"}},
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)

	var payload struct {
		Updates []DocumentTagsUpdate
	}
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	require.Len(t, payload.Updates, 1)
	assert.Equal(t, []string{"shortlisted"}, payload.Updates[0].UserDefinedTags)
}

func TestIndexOperationValidation(t *testing.T) {
	client, err := NewClient("acct", "key", DataCenterUS, zerolog.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name   string
		call   func() error
		errMsg string
	}{
		{
			name:   "create without index ID",
			call:   func() error { _, err := client.CreateIndex(ctx, "", IndexTypeResume); return err },
			errMsg: "index ID is required",
		},
		{
			name:   "index resume without document ID",
			call:   func() error { _, err := client.IndexResume(ctx, "resumes", "", &IndexResumeRequest{}); return err },
			errMsg: "document ID are required",
		},
		{
			name: "index resume without data",
			call: func() error {
				_, err := client.IndexResume(ctx, "resumes", "doc-1", &IndexResumeRequest{})
				return err
			},
			errMsg: "resume data is required",
		},
		{
			name:   "index job without data",
			call:   func() error { _, err := client.IndexJob(ctx, "jobs", "doc-1", nil); return err },
			errMsg: "job data is required",
		},
		{
			name:   "delete documents without IDs",
			call:   func() error { _, err := client.DeleteDocuments(ctx, "resumes", nil); return err },
			errMsg: "at least one document ID is required",
		},
		{
			name:   "update tags without updates",
			call:   func() error { _, err := client.UpdateDocumentTags(ctx, "resumes", nil); return err },
			errMsg: "at least one tag update is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
