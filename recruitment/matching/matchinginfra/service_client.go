package matchinginfra

import (
	"context"
	"io"

	"github.com/ajcportal/careerhub/internal/matchsvc"
	"github.com/ajcportal/careerhub/pkg/kernel"
	"github.com/ajcportal/careerhub/recruitment/matching"
)

// ServiceClient adapts the matchsvc HTTP client to the domain's
// ParserClient port
type ServiceClient struct {
	client *matchsvc.Client
}

func NewServiceClient(client *matchsvc.Client) matching.ParserClient {
	return &ServiceClient{client: client}
}

func (c *ServiceClient) SubmitArchive(ctx context.Context, filename string, archive io.Reader) (kernel.ParseJobID, error) {
	return c.client.SubmitArchive(ctx, filename, archive)
}

func (c *ServiceClient) ParseStatus(ctx context.Context, id kernel.ParseJobID) (*matching.ParseStatus, error) {
	status, err := c.client.JobStatus(ctx, id)
	if err != nil {
		return nil, err
	}

	return &matching.ParseStatus{
		Completed:     status.Status == matchsvc.ParseStateCompleted,
		Failed:        status.Status == matchsvc.ParseStateFailed,
		Progress:      status.ProgressPercentage,
		ResultCSVPath: status.ResultCSVPath,
	}, nil
}

func (c *ServiceClient) MatchResumes(ctx context.Context, csvFilePath, jobDescription string) ([]matching.Result, error) {
	raw, err := c.client.MatchResumes(ctx, csvFilePath, jobDescription)
	if err != nil {
		return nil, err
	}

	results := make([]matching.Result, len(raw))
	for i, r := range raw {
		results[i] = matching.Result{
			Name:           r.Name,
			Email:          r.Email,
			Resume:         r.Filename,
			MatchScore:     r.MatchScore,
			Recommendation: r.Recommendation,
			Summary:        r.Summary,
			Skills:         r.Skills,
		}
	}

	return results, nil
}
