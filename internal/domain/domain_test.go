package domain

import (
	"testing"
	"time"
)

func TestParseApprovalState(t *testing.T) {
	t.Parallel()

	valid := map[string]ApprovalState{
		"pending":  ApprovalPending,
		"failed":   ApprovalFailed,
		"approval": ApprovalApproved,
	}
	for value, want := range valid {
		got, ok := ParseApprovalState(value)
		if !ok || got != want {
			t.Errorf("ParseApprovalState(%q) = (%q, %v), want (%q, true)", value, got, ok, want)
		}
	}

	for _, value := range []string{"", "approved", "PENDING", "done"} {
		if _, ok := ParseApprovalState(value); ok {
			t.Errorf("ParseApprovalState(%q) accepted, want rejection", value)
		}
	}
}

func TestUserVisibility(t *testing.T) {
	t.Parallel()

	cases := []struct {
		state   ApprovalState
		visible bool
	}{
		{ApprovalPending, false},
		{ApprovalFailed, false},
		{ApprovalApproved, true},
	}
	for _, tc := range cases {
		u := &User{Approval: tc.state}
		if u.PubliclyVisible() != tc.visible {
			t.Errorf("PubliclyVisible with %q = %v, want %v", tc.state, !tc.visible, tc.visible)
		}
	}

	var nilUser *User
	if nilUser.PubliclyVisible() || nilUser.IsAdmin() {
		t.Error("nil user must be neither visible nor admin")
	}
}

func TestExperienceDeriveDuration(t *testing.T) {
	t.Parallel()

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC)

	exp := Experience{StartDate: start, EndDate: &end}
	exp.DeriveDuration(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if exp.Duration != "2 years 3 months" {
		t.Fatalf("closed range duration = %q, want %q", exp.Duration, "2 years 3 months")
	}

	open := Experience{StartDate: start, Current: true}
	open.DeriveDuration(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	if open.Duration != "1 years 0 months" {
		t.Fatalf("open range duration = %q, want %q", open.Duration, "1 years 0 months")
	}

	inverted := Experience{StartDate: end, EndDate: &start}
	inverted.DeriveDuration(time.Now())
	if inverted.Duration != "" {
		t.Fatalf("inverted range derived %q, want empty", inverted.Duration)
	}
}

func TestValidPlatform(t *testing.T) {
	t.Parallel()

	for _, p := range []SocialPlatform{PlatformLinkedIn, PlatformGitHub, PlatformYouTube,
		PlatformGmail, PlatformMail, PlatformPhone, PlatformWebsite} {
		if !ValidPlatform(p) {
			t.Errorf("ValidPlatform(%q) = false", p)
		}
	}
	if ValidPlatform("myspace") {
		t.Error("ValidPlatform accepted unknown platform")
	}
}
