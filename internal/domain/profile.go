package domain

import (
	"fmt"
	"time"
)

// SocialPlatform enumerates supported social link targets.
type SocialPlatform string

const (
	PlatformLinkedIn SocialPlatform = "linkedin"
	PlatformGitHub   SocialPlatform = "github"
	PlatformYouTube  SocialPlatform = "youtube"
	PlatformGmail    SocialPlatform = "gmail"
	PlatformMail     SocialPlatform = "mail"
	PlatformPhone    SocialPlatform = "phone"
	PlatformWebsite  SocialPlatform = "website"
)

// ValidPlatform reports whether the platform is in the enumerated set.
func ValidPlatform(p SocialPlatform) bool {
	switch p {
	case PlatformLinkedIn, PlatformGitHub, PlatformYouTube,
		PlatformGmail, PlatformMail, PlatformPhone, PlatformWebsite:
		return true
	}
	return false
}

// Bio carries the free-form personal summary block of a profile.
type Bio struct {
	Name            string `json:"name,omitempty"`
	Age             int    `json:"age,omitempty"`
	Location        string `json:"location,omitempty"`
	CurrentLocation string `json:"currentLocation,omitempty"`
	About           string `json:"about,omitempty"`
	Summary         string `json:"summary,omitempty"`
}

// SocialLink points at an external presence.
type SocialLink struct {
	Platform SocialPlatform `json:"platform"`
	Link     string         `json:"link"`
}

// SkillCategory groups skills under a label.
type SkillCategory struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
	Image    string   `json:"image,omitempty"`
}

// CurrentStatus describes the owner's present engagement.
type CurrentStatus struct {
	Company   string `json:"company,omitempty"`
	Position  string `json:"position,omitempty"`
	AsPresent bool   `json:"asPresent"`
}

// ProjectStatus enumerates project lifecycle values.
type ProjectStatus string

const (
	ProjectDeveloping ProjectStatus = "developing"
	ProjectDone       ProjectStatus = "done"
	ProjectPlanned    ProjectStatus = "planned"
)

// Project is a portfolio entry.
type Project struct {
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	Image        string        `json:"image,omitempty"`
	GitLink      string        `json:"gitLink,omitempty"`
	LiveLink     string        `json:"liveLink,omitempty"`
	Technologies []string      `json:"technologies,omitempty"`
	Status       ProjectStatus `json:"status,omitempty"`
	StartDate    *time.Time    `json:"startDate,omitempty"`
	EndDate      *time.Time    `json:"endDate,omitempty"`
}

// Experience is one employment entry. Duration is derived, not stored by
// clients.
type Experience struct {
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	Description  string     `json:"description,omitempty"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Current      bool       `json:"current"`
	Duration     string     `json:"duration,omitempty"`
	Technologies []string   `json:"technologies,omitempty"`
	Location     string     `json:"location,omitempty"`
}

// DeriveDuration recomputes the human-readable duration from the date range.
// Open-ended entries measure up to now.
func (e *Experience) DeriveDuration(now time.Time) {
	if e.StartDate.IsZero() {
		return
	}
	end := now
	if e.EndDate != nil {
		end = *e.EndDate
	}
	if end.Before(e.StartDate) {
		return
	}
	months := int(end.Sub(e.StartDate).Hours() / (24 * 30))
	e.Duration = fmt.Sprintf("%d years %d months", months/12, months%12)
}

// Education is one study entry.
type Education struct {
	Institute   string     `json:"institute"`
	Course      string     `json:"course"`
	Description string     `json:"description,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Marks       float64    `json:"marks,omitempty"`
}

// Certificate is an earned credential shown on the profile.
type Certificate struct {
	Title     string     `json:"title"`
	Image     string     `json:"image"`
	IssueDate *time.Time `json:"issueDate,omitempty"`
	Link      string     `json:"link,omitempty"`
}
