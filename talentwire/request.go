package talentwire

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// apiRequest is a fully formed request: target path, method, headers and a
// serialized JSON body. Built once per call, immutable after serialization,
// consumed exactly once by the transport.
type apiRequest struct {
	method string
	path   string
	body   []byte
	header http.Header
}

func newRequest(method, path string, payload any) (*apiRequest, error) {
	req := &apiRequest{method: method, path: path, header: http.Header{}}
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize request body: %w", err)
		}
		req.body = body
		req.header.Set("Content-Type", "application/json; charset=utf-8")
	}
	return req, nil
}

// joinURL joins the data center root and a request path with exactly one
// separating slash, whatever either side looks like.
func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// uiRequest wraps an operation payload for the session-generating variant of
// matching endpoints.
type uiRequest struct {
	UIOptions UIOptions `json:"UIOptions"`
	Request   any       `json:"Request"`
}

// maybeUI selects between the plain path and the ui-prefixed session variant
// of the same operation. The variant is decided once, at the call site.
func maybeUI(path string, payload any, ui *UIOptions) (string, any) {
	if ui == nil {
		return path, payload
	}
	return "ui/" + path, uiRequest{UIOptions: *ui, Request: payload}
}

// The endpoint catalog. Each builder is a pure mapping from operation
// parameters to a request; no network or state side effects.

func parseResumeRequest(req *ParseRequest) (*apiRequest, error) {
	return newRequest(http.MethodPost, "parser/resume", req)
}

func parseJobRequest(req *ParseRequest) (*apiRequest, error) {
	return newRequest(http.MethodPost, "parser/joborder", req)
}

func createIndexRequest(indexID string, indexType IndexType) (*apiRequest, error) {
	payload := struct {
		IndexType IndexType `json:"IndexType"`
	}{indexType}
	return newRequest(http.MethodPost, "index/"+url.PathEscape(indexID), payload)
}

func listIndexesRequest() (*apiRequest, error) {
	return newRequest(http.MethodGet, "index", nil)
}

func deleteIndexRequest(indexID string) (*apiRequest, error) {
	return newRequest(http.MethodDelete, "index/"+url.PathEscape(indexID), nil)
}

func indexResumeRequest(indexID, documentID string, req *IndexResumeRequest) (*apiRequest, error) {
	path := fmt.Sprintf("index/%s/resume/%s", url.PathEscape(indexID), url.PathEscape(documentID))
	return newRequest(http.MethodPost, path, req)
}

func indexJobRequest(indexID, documentID string, req *IndexJobRequest) (*apiRequest, error) {
	path := fmt.Sprintf("index/%s/joborder/%s", url.PathEscape(indexID), url.PathEscape(documentID))
	return newRequest(http.MethodPost, path, req)
}

func deleteDocumentRequest(indexID, documentID string) (*apiRequest, error) {
	path := fmt.Sprintf("index/%s/documents/%s", url.PathEscape(indexID), url.PathEscape(documentID))
	return newRequest(http.MethodDelete, path, nil)
}

func deleteDocumentsRequest(indexID string, documentIDs []string) (*apiRequest, error) {
	payload := struct {
		DocumentIDs []string `json:"DocumentIds"`
	}{documentIDs}
	path := fmt.Sprintf("index/%s/documents/delete", url.PathEscape(indexID))
	return newRequest(http.MethodPost, path, payload)
}

func updateDocumentTagsRequest(indexID string, updates []DocumentTagsUpdate) (*apiRequest, error) {
	payload := struct {
		Updates []DocumentTagsUpdate `json:"Updates"`
	}{updates}
	path := fmt.Sprintf("index/%s/documents", url.PathEscape(indexID))
	return newRequest(http.MethodPatch, path, payload)
}

func matchResumeRequest(req *MatchResumeRequest, ui *UIOptions) (*apiRequest, error) {
	path, payload := maybeUI("matcher/resume", req, ui)
	return newRequest(http.MethodPost, path, payload)
}

func matchJobRequest(req *MatchJobRequest, ui *UIOptions) (*apiRequest, error) {
	path, payload := maybeUI("matcher/joborder", req, ui)
	return newRequest(http.MethodPost, path, payload)
}

func matchIndexedDocumentRequest(indexID, documentID string, req *MatchIndexedDocumentRequest, ui *UIOptions) (*apiRequest, error) {
	base := fmt.Sprintf("matcher/indexes/%s/documents/%s", url.PathEscape(indexID), url.PathEscape(documentID))
	path, payload := maybeUI(base, req, ui)
	return newRequest(http.MethodPost, path, payload)
}

func searchRequest(req *SearchRequest, ui *UIOptions) (*apiRequest, error) {
	path, payload := maybeUI("searcher", req, ui)
	return newRequest(http.MethodPost, path, payload)
}

func bimetricScoreResumesRequest(req *BimetricScoreResumesRequest, ui *UIOptions) (*apiRequest, error) {
	path, payload := maybeUI("scorer/bimetric", req, ui)
	return newRequest(http.MethodPost, path, payload)
}

func bimetricScoreJobsRequest(req *BimetricScoreJobsRequest, ui *UIOptions) (*apiRequest, error) {
	path, payload := maybeUI("scorer/bimetric", req, ui)
	return newRequest(http.MethodPost, path, payload)
}

func geocodeResumeRequest(req *GeocodeResumeRequest) (*apiRequest, error) {
	return newRequest(http.MethodPost, "geocoder/resume", req)
}

func geocodeJobRequest(req *GeocodeJobRequest) (*apiRequest, error) {
	return newRequest(http.MethodPost, "geocoder/joborder", req)
}

func geocodeAndIndexResumeRequest(indexID, documentID string, req *GeocodeAndIndexResumeRequest) (*apiRequest, error) {
	path := fmt.Sprintf("geocoder/resume/indexes/%s/documents/%s", url.PathEscape(indexID), url.PathEscape(documentID))
	return newRequest(http.MethodPost, path, req)
}

func geocodeAndIndexJobRequest(indexID, documentID string, req *GeocodeAndIndexJobRequest) (*apiRequest, error) {
	path := fmt.Sprintf("geocoder/joborder/indexes/%s/documents/%s", url.PathEscape(indexID), url.PathEscape(documentID))
	return newRequest(http.MethodPost, path, req)
}
