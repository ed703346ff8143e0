package view

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/template"
	"time"

	"github.com/dmitrijs2005/portfolioadmin/internal/client/models"
)

type Section string

const (
	SectionProfile  Section = "profile"
	SectionSkills   Section = "skills"
	SectionProjects Section = "projects"
)

// Sections is the navigation order.
var Sections = []Section{SectionProfile, SectionSkills, SectionProjects}

func (s Section) Label() string {
	switch s {
	case SectionProfile:
		return "Profile"
	case SectionSkills:
		return "Skills"
	case SectionProjects:
		return "Projects"
	}
	return string(s)
}

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

type Toast struct {
	Message string
	Kind    ToastKind
}

// ProfileForm mirrors the profile edit form. Links always has at least one row.
type ProfileForm struct {
	FullName          string
	Nickname          string
	ProfessionalTitle string
	Bio               string
	Email             string
	PhoneNo           string
	WhatsApp          string
	Links             []models.SocialLink
}

// Profile converts the form back into a request body.
func (f ProfileForm) Profile() *models.Profile {
	return &models.Profile{
		FullName:          f.FullName,
		Nickname:          f.Nickname,
		ProfessionalTitle: f.ProfessionalTitle,
		Bio:               f.Bio,
		Email:             f.Email,
		Contact:           models.Contact{PhoneNo: f.PhoneNo, WhatsApp: f.WhatsApp},
		SocialLinks:       models.CompactSocialLinks(f.Links),
	}
}

// SkillModal is the skill form. An empty ID means create.
type SkillModal struct {
	Open     bool
	Title    string
	ID       string
	Name     string
	Level    string
	Category string
}

// ProjectModal is the project form. An empty ID means create.
type ProjectModal struct {
	Open         bool
	Title        string
	ID           string
	ProjectTitle string
	Description  string
	Status       string
	GitHubURL    string
	DocsURL      string
	LiveURL      string
	TechStack    string
}

type View struct {
	mu sync.Mutex
	w  io.Writer

	toastTTL   time.Duration
	toastSeq   uint64
	toastTimer *time.Timer

	loggedIn     bool
	section      Section
	loading      bool
	toast        *Toast
	loginError   string
	profile      ProfileForm
	skills       string
	projects     string
	skillModal   SkillModal
	projectModal ProjectModal
}

func New(w io.Writer, toastTTL time.Duration) *View {
	v := &View{w: w, toastTTL: toastTTL}
	v.reset()
	return v
}

func (v *View) reset() {
	if v.toastTimer != nil {
		v.toastTimer.Stop()
		v.toastTimer = nil
	}
	v.loggedIn = false
	v.section = SectionProfile
	v.loading = false
	v.toast = nil
	v.loginError = ""
	v.profile = ProfileForm{Links: []models.SocialLink{{}}}
	v.skills = ""
	v.projects = ""
	v.skillModal = SkillModal{}
	v.projectModal = ProjectModal{}
}

// Reset drops all view state, as a fresh start would.
func (v *View) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.reset()
}

func (v *View) printf(format string, args ...any) {
	fmt.Fprintf(v.w, format, args...)
}

func (v *View) SwitchView(loggedIn bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loggedIn = loggedIn
	if loggedIn {
		v.printf("== Portfolio Admin Dashboard ==\n")
		return
	}
	v.printf("== Login ==\nType 'login' to sign in, 'help' for commands.\n")
}

// SwitchSection activates one dashboard panel and prints it.
func (v *View) SwitchSection(s Section) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.section = s
	v.printf("%s\n", render(navTmpl, navItems(s)))
	v.printSection()
}

func (v *View) printSection() {
	switch v.section {
	case SectionProfile:
		v.printf("%s", render(profileTmpl, v.profile))
	case SectionSkills:
		v.printf("%s", v.skills)
	case SectionProjects:
		v.printf("%s", v.projects)
	}
}

func (v *View) ShowLoading(show bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = show
	if show {
		v.printf("Loading...\n")
	}
}

// ShowToast prints a notice and keeps it as the current toast until the
// configured time to live passes or another toast replaces it.
func (v *View) ShowToast(msg string, kind ToastKind) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.toastSeq++
	seq := v.toastSeq
	v.toast = &Toast{Message: msg, Kind: kind}

	marker := "[ok]"
	if kind == ToastError {
		marker = "[error]"
	}
	v.printf("%s %s\n", marker, msg)

	if v.toastTimer != nil {
		v.toastTimer.Stop()
	}
	v.toastTimer = time.AfterFunc(v.toastTTL, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.toastSeq == seq {
			v.toast = nil
		}
	})
}

func (v *View) ShowLoginError(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loginError = clean(msg)
	v.printf("Login failed: %s\n", v.loginError)
}

// RenderProfile fills the profile form. The first social link reuses the
// existing first row, the rest are appended.
func (v *View) RenderProfile(p *models.Profile) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if p == nil {
		p = &models.Profile{}
	}
	v.profile = ProfileForm{
		FullName:          p.FullName,
		Nickname:          p.Nickname,
		ProfessionalTitle: p.ProfessionalTitle,
		Bio:               p.Bio,
		Email:             p.Email,
		PhoneNo:           p.Contact.PhoneNo,
		WhatsApp:          p.Contact.WhatsApp,
		Links:             []models.SocialLink{{}},
	}
	for i, l := range p.SocialLinks {
		if i == 0 {
			v.profile.Links[0] = l
			continue
		}
		v.profile.Links = append(v.profile.Links, l)
	}

	if v.loggedIn && v.section == SectionProfile {
		v.printSection()
	}
}

// AddSocialLinkFields appends one row to the profile form.
func (v *View) AddSocialLinkFields(link models.SocialLink) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.profile.Links = append(v.profile.Links, link)
}

// SetProfileForm replaces the form with what the user typed.
func (v *View) SetProfileForm(f ProfileForm) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(f.Links) == 0 {
		f.Links = []models.SocialLink{{}}
	}
	v.profile = f
}

func (v *View) RenderSkills(skills []models.Skill) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.skills = render(skillsTmpl, skills)
	if v.loggedIn && v.section == SectionSkills {
		v.printSection()
	}
}

func (v *View) RenderProjects(projects []models.Project) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.projects = render(projectsTmpl, projects)
	if v.loggedIn && v.section == SectionProjects {
		v.printSection()
	}
}

// ShowSkillModal opens the skill form, pre-filled when s is not nil.
func (v *View) ShowSkillModal(s *models.Skill) {
	v.mu.Lock()
	defer v.mu.Unlock()

	m := SkillModal{Open: true, Title: "Add New Skill"}
	if s != nil {
		m.Title = "Edit Skill"
		m.ID = string(s.ID)
		m.Name = s.Name
		m.Level = fmt.Sprint(s.Level)
		m.Category = s.CategoryOrEmpty()
	}
	v.skillModal = m
	v.printf("== %s ==\n", m.Title)
}

func (v *View) HideSkillModal() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.skillModal.Open = false
}

// ShowProjectModal opens the project form, pre-filled when p is not nil.
func (v *View) ShowProjectModal(p *models.Project) {
	v.mu.Lock()
	defer v.mu.Unlock()

	m := ProjectModal{Open: true, Title: "Add New Project"}
	if p != nil {
		m.Title = "Edit Project"
		m.ID = string(p.ID)
		m.ProjectTitle = p.Title
		m.Description = p.Description
		m.Status = p.Status
		m.GitHubURL = p.GitHubURL
		m.DocsURL = p.DocsURL
		m.LiveURL = p.LiveURLOrEmpty()
		m.TechStack = p.TechStackString()
	}
	v.projectModal = m
	v.printf("== %s ==\n", m.Title)
}

func (v *View) HideProjectModal() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.projectModal.Open = false
}

func (v *View) LoggedIn() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loggedIn
}

func (v *View) Section() Section {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.section
}

func (v *View) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Toast returns the notice currently on screen, if any.
func (v *View) Toast() (Toast, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.toast == nil {
		return Toast{}, false
	}
	return *v.toast, true
}

func (v *View) LoginError() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loginError
}

// ProfileForm returns a copy of the profile form.
func (v *View) ProfileForm() ProfileForm {
	v.mu.Lock()
	defer v.mu.Unlock()
	f := v.profile
	f.Links = append([]models.SocialLink(nil), v.profile.Links...)
	return f
}

func (v *View) SkillsPanel() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.skills
}

func (v *View) ProjectsPanel() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.projects
}

func (v *View) SkillModal() SkillModal {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.skillModal
}

func (v *View) ProjectModal() ProjectModal {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.projectModal
}

func render(t *template.Template, data any) string {
	var b bytes.Buffer
	if err := t.Execute(&b, data); err != nil {
		return "render error: " + err.Error() + "\n"
	}
	return strings.TrimRight(b.String(), " ")
}
