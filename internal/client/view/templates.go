package view

import (
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"github.com/dmitrijs2005/portfolioadmin/internal/client/config"
)

var funcs = template.FuncMap{
	"bar":   levelBar,
	"join":  strings.Join,
	"add1":  func(i int) int { return i + 1 },
	"clean": clean,
}

// clean drops control and other non-printable runes from server-supplied
// text so it cannot drive the terminal. Newlines survive for multi-line bios.
func clean(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || unicode.IsPrint(r) {
			return r
		}
		return -1
	}, s)
}

func levelBar(percent int) string {
	n := percent / 10
	if n < 0 {
		n = 0
	}
	if n > 10 {
		n = 10
	}
	return "[" + strings.Repeat("#", n) + strings.Repeat("-", 10-n) + "]"
}

var navTmpl = template.Must(template.New("nav").Parse(
	`{{range .}}{{if .Active}}[{{.Label}}]{{else}} {{.Label}} {{end}} {{end}}`))

var profileTmpl = template.Must(template.New("profile").Funcs(funcs).Parse(`Profile
  Full name:          {{clean .FullName}}
  Nickname:           {{clean .Nickname}}
  Professional title: {{clean .ProfessionalTitle}}
  Bio:                {{clean .Bio}}
  Email:              {{clean .Email}}
  Phone:              {{clean .PhoneNo}}
  WhatsApp:           {{clean .WhatsApp}}
  Social links:
{{- range $i, $l := .Links}}
    {{add1 $i}}. {{if $l.Platform}}{{clean $l.Platform}}{{else}}<platform>{{end}} {{if $l.URL}}{{clean $l.URL}}{{else}}<url>{{end}}
{{- end}}
`))

var skillsTmpl = template.Must(template.New("skills").Funcs(funcs).Parse(
	`{{if not .}}No skills yet. Use 'addskill' to create one.
{{else}}{{range .}}[{{clean .ID.String}}] {{clean .Name}}
    {{bar .LevelPercent}} {{clean .LevelLabel}}{{with .CategoryOrEmpty}}  ({{clean .}}){{end}}
{{end}}{{end}}`))

var projectsTmpl = template.Must(template.New("projects").Funcs(funcs).Parse(
	`{{if not .}}No projects yet. Use 'addproject' to create one.
{{else}}{{range .}}[{{clean .ID.String}}] {{clean .Title}}  <{{clean .Status}}>
    {{clean .Description}}
{{- with .TechStack}}
    Stack:  {{clean (join . ", ")}}
{{- end}}
    GitHub: {{clean .GitHubURL}}
    Docs:   {{clean .DocsURL}}
{{- with .LiveURLOrEmpty}}
    Live:   {{clean .}}
{{- end}}
{{end}}{{end}}`))

type navItem struct {
	Label  string
	Active bool
}

func navItems(active Section) []navItem {
	items := make([]navItem, 0, len(Sections))
	for _, s := range Sections {
		items = append(items, navItem{Label: s.Label(), Active: s == active})
	}
	return items
}

// SkillLevelHint lists the accepted skill levels for form prompts.
func SkillLevelHint() string {
	parts := make([]string, 0, len(config.SkillLevels))
	for i, l := range config.SkillLevels {
		parts = append(parts, fmt.Sprintf("%d=%s", i+1, l))
	}
	return strings.Join(parts, ", ")
}
