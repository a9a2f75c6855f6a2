// Package seo builds the head metadata view models for rendered pages.
package seo

import (
	"encoding/json"
	"html/template"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
	JSONLD      []template.JS
}

// ForPage builds default metadata for a rendered page. siteURL may be empty
// in development; the canonical link is omitted then.
func ForPage(siteURL, path, title, description string) Meta {
	m := Meta{
		Title:       title,
		Description: description,
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Type:        "website",
			SiteName:    "Ridemio",
		},
	}
	if siteURL != "" {
		m.Canonical = siteURL + path
		m.OG.URL = m.Canonical
	}
	return m
}

// JSON marshals v for embedding in a ld+json script element, returning ""
// on error. The template.JS return keeps html/template from re-escaping the
// payload into a JS string literal.
func JSON(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return template.JS(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// Article returns a minimal Article schema payload for blog posts.
func Article(headline, url, imageURL, authorName, datePublished string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Article",
		"headline": headline,
	}
	if url != "" {
		m["url"] = url
	}
	if imageURL != "" {
		m["image"] = imageURL
	}
	if authorName != "" {
		m["author"] = map[string]any{"@type": "Person", "name": authorName}
	}
	if datePublished != "" {
		m["datePublished"] = datePublished
	}
	return m
}
