// Package cinedex builds a searchable index of movie URLs from a site's
// paginated XML sitemaps. It downloads each sitemap in a numeric range,
// caches the documents on disk, extracts the listed URLs into a flat
// line-delimited index file, and answers substring searches over that
// index by normalized title.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, etree/, fs/, rod/).
package cinedex
