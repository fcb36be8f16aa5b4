// Package paperdex provides a local, CLI-based research paper catalog
// builder. It scans per-paper folders of saved HTML analyses, extracts
// metadata from each paper's primary document, classifies every file in
// the folder, and merges the results into a versioned JSON catalog that
// a static site can render directly.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/).
package paperdex
