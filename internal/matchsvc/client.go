package matchsvc

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/ajcportal/careerhub/pkg/errx"
	"github.com/ajcportal/careerhub/pkg/kernel"
)

// ParseJobState mirrors the status values reported by the parsing service
type ParseJobState string

const (
	ParseStatePending    ParseJobState = "pending"
	ParseStateProcessing ParseJobState = "processing"
	ParseStateCompleted  ParseJobState = "completed"
	ParseStateFailed     ParseJobState = "failed"
)

// ParseJobStatus is the polled state of one archive submission
type ParseJobStatus struct {
	JobID              kernel.ParseJobID `json:"job_id"`
	Status             ParseJobState     `json:"status"`
	ProgressPercentage int               `json:"progress_percentage"`
	ResultCSVPath      string            `json:"result_csv_path"`
}

// MatchResult is one scored candidate from the matching endpoint. Scoring
// internals are opaque, only the wire shape is contractual.
type MatchResult struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Filename       string   `json:"filename"`
	MatchScore     float64  `json:"match_score"`
	Recommendation string   `json:"recommendation"`
	Summary        string   `json:"summary"`
	Skills         []string `json:"skills"`
}

// ParsedResume is one row of the parsed-resume CSV download
type ParsedResume struct {
	Filename string
	Name     string
	Email    string
	Text     string
}

// Client talks to the external resume-parsing and job-matching service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client with a per-call timeout. The service is an
// external collaborator, every request is bounded.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SubmitArchive uploads a resume archive and returns the opaque parse-job id
func (c *Client) SubmitArchive(ctx context.Context, filename string, archive io.Reader) (kernel.ParseJobID, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("zip_file", filename)
	if err != nil {
		return "", errx.Wrap(err, "failed to build upload form", errx.TypeInternal)
	}
	if _, err := io.Copy(part, archive); err != nil {
		return "", errx.Wrap(err, "failed to copy archive into form", errx.TypeInternal)
	}
	if err := writer.Close(); err != nil {
		return "", errx.Wrap(err, "failed to finalize upload form", errx.TypeInternal)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/parse-resumes-zip", body)
	if err != nil {
		return "", errx.Wrap(err, "failed to build submit request", errx.TypeInternal)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var resp struct {
		JobID kernel.ParseJobID `json:"job_id"`
	}
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	if resp.JobID.IsEmpty() {
		return "", ErrServiceProtocol().WithDetail("reason", "submit response missing job_id")
	}

	return resp.JobID, nil
}

// JobStatus fetches the current state of a parse job
func (c *Client) JobStatus(ctx context.Context, id kernel.ParseJobID) (*ParseJobStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/status/"+id.String(), nil)
	if err != nil {
		return nil, errx.Wrap(err, "failed to build status request", errx.TypeInternal)
	}

	var status ParseJobStatus
	if err := c.do(req, &status); err != nil {
		return nil, err
	}
	if status.JobID.IsEmpty() {
		status.JobID = id
	}

	return &status, nil
}

// MatchResumes scores the parsed resumes against a job description
func (c *Client) MatchResumes(ctx context.Context, csvFilePath, jobDescription string) ([]MatchResult, error) {
	payload, err := json.Marshal(map[string]string{
		"csv_file_path":   csvFilePath,
		"job_description": jobDescription,
	})
	if err != nil {
		return nil, errx.Wrap(err, "failed to marshal match request", errx.TypeInternal)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/match-jobs", bytes.NewReader(payload))
	if err != nil {
		return nil, errx.Wrap(err, "failed to build match request", errx.TypeInternal)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp struct {
		Results []MatchResult `json:"results"`
	}
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}

	return resp.Results, nil
}

// DownloadResults fetches and decodes the parsed-resume CSV for a job.
// Expected header: filename, name, email, text (extra columns ignored).
func (c *Client) DownloadResults(ctx context.Context, id kernel.ParseJobID) ([]ParsedResume, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/download/"+id.String(), nil)
	if err != nil {
		return nil, errx.Wrap(err, "failed to build download request", errx.TypeInternal)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrServiceUnavailable().WithDetail("cause", err.Error())
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, c.statusError(httpResp)
	}

	return decodeResumeCSV(httpResp.Body)
}

// do executes a JSON request/response round trip
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ErrServiceUnavailable().WithDetail("cause", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return ErrServiceProtocol().WithDetail("cause", err.Error())
	}

	return nil
}

func (c *Client) statusError(resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return ErrServiceFailed().
		WithDetail("status", resp.StatusCode).
		WithDetail("body", string(snippet))
}

func decodeResumeCSV(r io.Reader) ([]ParsedResume, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, ErrServiceProtocol().WithDetail("cause", fmt.Sprintf("csv header: %v", err))
	}

	idx := map[string]int{}
	for i, col := range header {
		idx[col] = i
	}

	field := func(record []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	resumes := make([]ParsedResume, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ErrServiceProtocol().WithDetail("cause", fmt.Sprintf("csv row: %v", err))
		}

		resumes = append(resumes, ParsedResume{
			Filename: field(record, "filename"),
			Name:     field(record, "name"),
			Email:    field(record, "email"),
			Text:     field(record, "text"),
		})
	}

	return resumes, nil
}
