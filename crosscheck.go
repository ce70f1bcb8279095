// Package crosscheck compares what the open web says about a question with
// what community discussions say about it. A query is fanned out to a web
// search provider and a discussion search provider, and both result sets are
// handed to a conflict analysis service that reports agreements, conflicts,
// and insights unique to each side.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, sqlite/, gemini/).
package crosscheck
