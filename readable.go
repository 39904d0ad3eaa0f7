// Package readable extracts the main content of HTML documents. Given a page
// it returns the article body stripped of navigation, ads, comments and
// boilerplate, together with structured metadata such as title, byline,
// excerpt, published time, site name and language.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, htmltomarkdown/).
package readable
