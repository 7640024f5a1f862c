// Package linkaudit audits the hyperlinks of a single web page for SEO.
// It resolves every anchor against the page origin, classifies it
// (internal/external, follow type, tracking, text/image, page region) and
// folds the classified set into a LinkGraphSummary.
//
// This package contains domain types, the pure classification engine and
// service interfaces following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, sqlite/, rod/).
package linkaudit
