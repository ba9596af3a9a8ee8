// Package docmirror mirrors published documentation sites to local markdown
// files. It discovers page URLs from sitemaps, fetches markdown-rendered
// content, and maintains a JSON manifest tracking provenance and change
// history for each mirrored file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., http/, fs/, mirror/).
package docmirror
