package kernel

import "strings"

// Email is always stored and compared in lower case
type Email string

// NewEmail normalizes the raw address (trim + lower case)
func NewEmail(raw string) Email {
	return Email(strings.ToLower(strings.TrimSpace(raw)))
}

func (e Email) String() string { return string(e) }
func (e Email) IsEmpty() bool  { return string(e) == "" }

// IsValid performs a minimal structural check, full validation is
// left to the mail transport
func (e Email) IsValid() bool {
	s := string(e)
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t")
}

type PersonName string

func (n PersonName) String() string { return string(n) }
func (n PersonName) IsEmpty() bool  { return strings.TrimSpace(string(n)) == "" }

type JobTitle string

func (t JobTitle) String() string { return string(t) }
func (t JobTitle) IsEmpty() bool  { return strings.TrimSpace(string(t)) == "" }

type JobDescription string

func (d JobDescription) String() string { return string(d) }
func (d JobDescription) IsEmpty() bool  { return strings.TrimSpace(string(d)) == "" }

type JobLocation string

func (l JobLocation) String() string { return string(l) }

// ResumeRef is an opaque reference to a stored resume (file path or URL)
type ResumeRef string

func (r ResumeRef) String() string { return string(r) }
func (r ResumeRef) IsEmpty() bool  { return string(r) == "" }

type Skill string

func (s Skill) String() string { return string(s) }
