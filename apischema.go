// Package apischema extracts a machine-readable schema from the Telegram
// Bot API documentation page. It parses the page's heading/paragraph/table
// sequence into Type and Method declarations so that downstream tooling
// (e.g. a client binding generator) can consume the API description
// without a human re-transcribing the page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package apischema
