// Package kbase provides a knowledge-base content service. Clients submit
// raw text, Word, or HTML documents; the service splits them into discrete
// articles, assigns each a permanent human-readable identifier, stores
// them, and exposes full-text search and retrieval.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, etree/).
package kbase
