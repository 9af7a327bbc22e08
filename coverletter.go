// Package coverletter assembles personalized job-application documents.
// It scrapes a job posting and a company website, extracts readable text
// from their HTML, generates a cover letter and tailored resume bullets with
// a generative text service, and keeps recent results available for download
// as Word documents.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, fiber/).
package coverletter
