package notifysrv

import (
	"bytes"
	"context"
	"html/template"
	"sort"

	"github.com/ajcportal/careerhub/pkg/logx"
	"github.com/ajcportal/careerhub/recruitment/notification"
)

// digestTemplate is the ranked candidate listing sent when at least one
// candidate carries a positive match percentage
const digestTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>Top candidates for {{.JobTitle}}</h2>
  <p>{{.JobDescription}}</p>
  <table cellpadding="8" cellspacing="0" border="1" style="border-collapse: collapse;">
    <tr style="background: #f0f0f0;">
      <th align="left">#</th>
      <th align="left">Candidate</th>
      <th align="left">Match</th>
      <th align="left">Email</th>
      <th align="left">Resume</th>
    </tr>
    {{range $i, $c := .Students}}
    <tr>
      <td>{{inc $i}}</td>
      <td>{{$c.Name}}</td>
      <td>{{printf "%.1f" $c.MatchPercentage}}%</td>
      <td><a href="mailto:{{$c.Email}}">{{$c.Email}}</a></td>
      <td>{{if $c.ResumeURL}}<a href="{{$c.ResumeURL}}">view</a>{{else}}&mdash;{{end}}</td>
    </tr>
    {{end}}
  </table>
</body>
</html>`

// noMatchTemplate is sent when every candidate scored zero
const noMatchTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>Matching results for {{.JobTitle}}</h2>
  <p>{{.JobDescription}}</p>
  <p>No suitable candidates were found for this position in the latest
  matching run. You may want to broaden the job description or try again
  with a new batch of resumes.</p>
</body>
</html>`

var templateFuncs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

// NotificationService composes and dispatches candidate digest emails
type NotificationService struct {
	mailer  notification.Mailer
	digest  *template.Template
	noMatch *template.Template
}

// NewNotificationService creates a new instance of the notification service
func NewNotificationService(mailer notification.Mailer) *NotificationService {
	return &NotificationService{
		mailer:  mailer,
		digest:  template.Must(template.New("digest").Funcs(templateFuncs).Parse(digestTemplate)),
		noMatch: template.Must(template.New("nomatch").Parse(noMatchTemplate)),
	}
}

// SendCandidateDigest renders and sends one digest email. When every
// candidate's match percentage is zero or absent the no-match variant is
// sent instead of a ranked listing. Transport failure surfaces to the
// caller, there is no retry.
func (s *NotificationService) SendCandidateDigest(ctx context.Context, req notification.SendDigestRequest) error {
	if req.RecruiterEmail == "" || req.JobTitle == "" || req.JobDescription == "" {
		return notification.ErrInvalidRequest().
			WithDetail("reason", "recruiterEmail, jobTitle and jobDescription are required")
	}
	if len(req.Students) == 0 {
		return notification.ErrInvalidRequest().WithDetail("reason", "students must be non-empty")
	}

	body, subject, err := s.render(req)
	if err != nil {
		return err
	}

	msg := notification.Message{
		To:       req.RecruiterEmail,
		Subject:  subject,
		HTMLBody: body,
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		logx.Errorf("digest send failed for %s: %v", req.RecruiterEmail, err)
		return notification.ErrSendFailed().WithDetail("cause", err.Error())
	}

	logx.Infof("digest sent to %s for job %q", req.RecruiterEmail, req.JobTitle)
	return nil
}

func (s *NotificationService) render(req notification.SendDigestRequest) (body, subject string, err error) {
	var buf bytes.Buffer

	if allZeroMatch(req.Students) {
		if err := s.noMatch.Execute(&buf, req); err != nil {
			return "", "", notification.ErrRenderFailed().WithDetail("cause", err.Error())
		}
		return buf.String(), "No suitable candidates for " + req.JobTitle, nil
	}

	ranked := req
	ranked.Students = append([]notification.DigestCandidate(nil), req.Students...)
	sort.SliceStable(ranked.Students, func(i, j int) bool {
		return ranked.Students[i].MatchPercentage > ranked.Students[j].MatchPercentage
	})

	if err := s.digest.Execute(&buf, ranked); err != nil {
		return "", "", notification.ErrRenderFailed().WithDetail("cause", err.Error())
	}
	return buf.String(), "Top candidates for " + req.JobTitle, nil
}

// allZeroMatch reports whether no candidate carries a positive score
func allZeroMatch(students []notification.DigestCandidate) bool {
	for _, s := range students {
		if s.MatchPercentage > 0 {
			return false
		}
	}
	return true
}
