package models

import (
	"strings"

	"github.com/dmitrijs2005/portfolioadmin/internal/common"
)

// Contact holds the direct contact channels of the profile owner.
type Contact struct {
	PhoneNo  string `json:"phone_no"`
	WhatsApp string `json:"whatsapp"`
}

// SocialLink is one (platform, url) pair. Order is significant.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Profile is the singleton portfolio owner record.
type Profile struct {
	FullName          string       `json:"full_name"`
	Nickname          string       `json:"nickname"`
	ProfessionalTitle string       `json:"professional_title"`
	Bio               string       `json:"bio"`
	Email             string       `json:"email"`
	Contact           Contact      `json:"contact"`
	SocialLinks       []SocialLink `json:"social_links"`
}

// CompactSocialLinks drops rows where either platform or url is blank.
// The result is never nil so it always encodes as a JSON array.
func CompactSocialLinks(links []SocialLink) []SocialLink {
	out := make([]SocialLink, 0, len(links))
	for _, l := range links {
		p, u := strings.TrimSpace(l.Platform), strings.TrimSpace(l.URL)
		if p == "" || u == "" {
			continue
		}
		out = append(out, SocialLink{Platform: p, URL: u})
	}
	return out
}

// Validate checks the fields the API requires.
func (p *Profile) Validate() error {
	if err := requireField("full_name", p.FullName); err != nil {
		return err
	}
	return requireField("email", p.Email)
}

func requireField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: name, Err: common.ErrFieldRequired}
	}
	return nil
}

// FieldError names the form field that failed validation.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Err.Error() }

func (e *FieldError) Unwrap() error { return e.Err }
