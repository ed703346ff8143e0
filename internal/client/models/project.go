package models

import "strings"

// Project is one entry of the projects collection.
type Project struct {
	ID          ID       `json:"id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	GitHubURL   string   `json:"github_url"`
	DocsURL     string   `json:"docs_url"`
	LiveURL     *string  `json:"live_url"`
	TechStack   []string `json:"tech_stack"`
}

// ProjectInput is the request body for create and update.
type ProjectInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	GitHubURL   string   `json:"github_url"`
	DocsURL     string   `json:"docs_url"`
	LiveURL     *string  `json:"live_url"`
	TechStack   []string `json:"tech_stack"`
}

// LiveURLOrEmpty dereferences LiveURL.
func (p Project) LiveURLOrEmpty() string {
	if p.LiveURL == nil {
		return ""
	}
	return *p.LiveURL
}

// TechStackString joins the tags the way the form shows them.
func (p Project) TechStackString() string {
	return strings.Join(p.TechStack, ", ")
}

// ParseTechStack splits "Go, Postgres ,Redis" into trimmed, non-empty tags.
// The result is never nil.
func ParseTechStack(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// Validate checks the fields the API requires.
func (in ProjectInput) Validate() error {
	required := []struct{ name, value string }{
		{"title", in.Title},
		{"description", in.Description},
		{"status", in.Status},
		{"github_url", in.GitHubURL},
		{"docs_url", in.DocsURL},
	}
	for _, f := range required {
		if err := requireField(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

// FindProject returns the project with the given id.
func FindProject(projects []Project, id string) (Project, bool) {
	for _, p := range projects {
		if string(p.ID) == id {
			return p, true
		}
	}
	return Project{}, false
}
