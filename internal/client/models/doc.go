// Package models defines the client-side mirrors of the portfolio API
// resources: profile, skills, projects and the auth payloads.
//
// The console never owns these records; every mutation is followed by a
// re-fetch from the server.
package models
