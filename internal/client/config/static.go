package config

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://fastapi-portfolio-backend.onrender.com/api/v1"

// Endpoint paths, relative to the base URL. Collection paths end with "/" and
// item paths are formed by appending the id.
const (
	EndpointLogin    = "/admin/token"
	EndpointMe       = "/admin/me"
	EndpointProfile  = "/admin/profile/"
	EndpointSkills   = "/admin/skills/"
	EndpointProjects = "/admin/projects/"
)

// TokenStorageKey is the key the bearer token is persisted under.
const TokenStorageKey = "portfolio_admin_token"

// UsernameStorageKey holds the username the stored token was issued for.
const UsernameStorageKey = "portfolio_admin_username"

// SkillLevels maps skill level N (1..5) to SkillLevels[N-1].
var SkillLevels = []string{"Novice", "Beginner", "Intermediate", "Advanced", "Expert"}

const (
	MinSkillLevel = 1
	MaxSkillLevel = 5
)

// SkillLevelLabel returns the label for level, or "Unknown" when out of range.
func SkillLevelLabel(level int) string {
	if level < MinSkillLevel || level > len(SkillLevels) {
		return "Unknown"
	}
	return SkillLevels[level-1]
}
