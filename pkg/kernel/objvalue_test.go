package kernel

import "testing"

func TestNewEmailNormalizes(t *testing.T) {
	cases := []struct {
		raw  string
		want Email
	}{
		{"R@X.com", "r@x.com"},
		{"  a@b.com ", "a@b.com"},
		{"already@lower.io", "already@lower.io"},
	}

	for _, c := range cases {
		if got := NewEmail(c.raw); got != c.want {
			t.Errorf("NewEmail(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestEmailIsValid(t *testing.T) {
	valid := []Email{"a@b.com", "x.y@z.co"}
	invalid := []Email{"", "@x.com", "a@", "no-at-sign", "sp ace@x.com"}

	for _, e := range valid {
		if !e.IsValid() {
			t.Errorf("expected %q to be valid", e)
		}
	}
	for _, e := range invalid {
		if e.IsValid() {
			t.Errorf("expected %q to be invalid", e)
		}
	}
}
