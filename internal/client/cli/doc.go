// Package cli provides the interactive portfolio admin console.
//
// It wires configuration, the local session store, the REST API services and
// the view, then runs a REPL. Logged out, the console offers login. Logged in,
// it shows the dashboard (profile, skills, projects) and accepts commands to
// edit the profile and to add, edit or delete skills and projects.
//
// Every command handler reports its own failures as notices; nothing a
// handler returns stops the REPL. See App and runREPL for details.
package cli
