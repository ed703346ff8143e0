// Package view owns what the admin console shows: which screen is active,
// the dashboard panels, the profile form rows, the skill and project edit
// forms, the loading indicator and transient notices.
//
// A View is safe for concurrent use. The only background activity is the
// timer that dismisses a notice after its time to live.
package view
