package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/portfolioadmin/internal/client/view"
)

// printFn and printlnFn are test seams for user-facing output. In tests,
// replace them with stubs.
var (
	printFn   = fmt.Print
	printlnFn = fmt.Println
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ShowSection(ctx context.Context, s view.Section) error
	EditProfile(ctx context.Context) error
	AddLink(ctx context.Context) error
	AddSkill(ctx context.Context) error
	EditSkill(ctx context.Context, id string) error
	DeleteSkill(ctx context.Context, id string) error
	AddProject(ctx context.Context) error
	EditProject(ctx context.Context, id string) error
	DeleteProject(ctx context.Context, id string) error
	Refresh(ctx context.Context) error
	Backup(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login, help, exit"
	helpLoggedIn  = "Available commands: profile, skills, projects, editprofile, addlink, " +
		"addskill, editskill <id>, deleteskill <id>, addproject, editproject <id>, " +
		"deleteproject <id>, refresh, backup, logout, help, exit"
)

// runREPL starts a read–eval–print loop for the admin console.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, when ctx is cancelled, or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help               - show available commands
//	  - login              - authenticate
//	  - exit | quit        - leave the program
//
//	Logged in:
//	  - profile | skills | projects - switch the dashboard panel
//	  - editprofile        - edit and save the profile
//	  - addlink            - add a social link row to the profile form
//	  - addskill           - create a skill
//	  - editskill <id>     - edit a skill
//	  - deleteskill <id>   - delete a skill after confirmation
//	  - addproject         - create a project
//	  - editproject <id>   - edit a project
//	  - deleteproject <id> - delete a project after confirmation
//	  - refresh            - reload the dashboard
//	  - backup             - upload a dashboard snapshot
//	  - logout             - log out
//	  - exit | quit        - leave the program
//
// Errors returned by command handlers are ignored here; handlers report their
// own failures through the view.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printFn(fmt.Sprintf("admin%s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			printlnFn()
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			switch cmd {
			case "login":
				_ = a.Login(ctx)
			default:
				printlnFn("Unknown command:", cmd, "(log in first, or type 'help')")
			}
			continue
		}

		switch cmd {
		case "login":
			printlnFn("Already logged in.")
		case "logout":
			_ = a.Logout(ctx)
		case "profile":
			_ = a.ShowSection(ctx, view.SectionProfile)
		case "skills":
			_ = a.ShowSection(ctx, view.SectionSkills)
		case "projects":
			_ = a.ShowSection(ctx, view.SectionProjects)
		case "editprofile":
			_ = a.EditProfile(ctx)
		case "addlink":
			_ = a.AddLink(ctx)
		case "addskill":
			_ = a.AddSkill(ctx)
		case "addproject":
			_ = a.AddProject(ctx)
		case "editskill", "deleteskill", "editproject", "deleteproject":
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			id := args[0]
			switch cmd {
			case "editskill":
				_ = a.EditSkill(ctx, id)
			case "deleteskill":
				_ = a.DeleteSkill(ctx, id)
			case "editproject":
				_ = a.EditProject(ctx, id)
			case "deleteproject":
				_ = a.DeleteProject(ctx, id)
			}
		case "refresh":
			_ = a.Refresh(ctx)
		case "backup":
			_ = a.Backup(ctx)
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
