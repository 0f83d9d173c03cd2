package notifysrv

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ajcportal/careerhub/pkg/errx"
	"github.com/ajcportal/careerhub/recruitment/notification"
)

type stubMailer struct {
	sent []notification.Message
	fail error
}

func (m *stubMailer) Send(_ context.Context, msg notification.Message) error {
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, msg)
	return nil
}

func validRequest() notification.SendDigestRequest {
	return notification.SendDigestRequest{
		RecruiterEmail: "rec@x.com",
		JobTitle:       "Engineer",
		JobDescription: "Build things",
		Students: []notification.DigestCandidate{
			{Name: "Alice", Email: "a@x.com", MatchPercentage: 72.5, ResumeURL: "https://files/a.pdf"},
			{Name: "Bob", Email: "b@x.com", MatchPercentage: 91.0},
		},
	}
}

func TestDigestRanksCandidatesByScore(t *testing.T) {
	mailer := &stubMailer{}
	svc := NewNotificationService(mailer)

	if err := svc.SendCandidateDigest(context.Background(), validRequest()); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one email, got %d", len(mailer.sent))
	}

	body := mailer.sent[0].HTMLBody
	bob := strings.Index(body, "Bob")
	alice := strings.Index(body, "Alice")
	if bob == -1 || alice == -1 {
		t.Fatalf("candidates missing from body")
	}
	if bob > alice {
		t.Fatal("higher score not listed first")
	}
	if !strings.Contains(body, "91.0%") {
		t.Fatal("match percentage not rendered")
	}
	if !strings.Contains(body, "https://files/a.pdf") {
		t.Fatal("resume link not rendered")
	}
}

func TestAllZeroScoresSendNoMatchVariant(t *testing.T) {
	mailer := &stubMailer{}
	svc := NewNotificationService(mailer)

	req := validRequest()
	for i := range req.Students {
		req.Students[i].MatchPercentage = 0
	}

	if err := svc.SendCandidateDigest(context.Background(), req); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	body := mailer.sent[0].HTMLBody
	if !strings.Contains(body, "No suitable candidates") {
		t.Fatal("expected no-match variant")
	}
	if strings.Contains(body, "Alice") {
		t.Fatal("no-match variant must not list candidates")
	}
}

func TestMissingFieldsRejected(t *testing.T) {
	svc := NewNotificationService(&stubMailer{})

	req := validRequest()
	req.JobTitle = ""

	err := svc.SendCandidateDigest(context.Background(), req)
	var e *errx.Error
	if !errors.As(err, &e) || e.Type != errx.TypeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestEmptyStudentsRejected(t *testing.T) {
	svc := NewNotificationService(&stubMailer{})

	req := validRequest()
	req.Students = nil

	err := svc.SendCandidateDigest(context.Background(), req)
	var e *errx.Error
	if !errors.As(err, &e) || e.Type != errx.TypeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTransportFailureSurfacesAsInternal(t *testing.T) {
	mailer := &stubMailer{fail: errors.New("connection refused")}
	svc := NewNotificationService(mailer)

	err := svc.SendCandidateDigest(context.Background(), validRequest())
	var e *errx.Error
	if !errors.As(err, &e) || e.Code != notification.CodeSendFailed {
		t.Fatalf("expected SEND_FAILED, got %v", err)
	}
}

func TestDigestHTMLEscapesCandidateFields(t *testing.T) {
	mailer := &stubMailer{}
	svc := NewNotificationService(mailer)

	req := validRequest()
	req.Students[0].Name = `<script>alert("x")</script>`

	if err := svc.SendCandidateDigest(context.Background(), req); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if strings.Contains(mailer.sent[0].HTMLBody, "<script>") {
		t.Fatal("candidate name not escaped")
	}
}
