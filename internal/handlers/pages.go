// Package handlers holds the view models consumed by the shared layout
// templates.
package handlers

import (
	"html/template"

	"ridemio.org/ridemio-web/internal/cms"
	"ridemio.org/ridemio-web/internal/nav"
	"ridemio.org/ridemio-web/internal/seo"
)

// PageData is the view model every page hands to the base layout. Nav and
// Footer are fetched independently of the page body; either may be nil/empty
// when its fetch failed, and the layout renders what it has.
type PageData struct {
	Title string
	SEO   seo.Meta
	Path  string

	Nav    []nav.Group
	Footer *cms.FooterData

	Body template.HTML
}

// ErrorData is the view model for the not-found and failure pages.
type ErrorData struct {
	Title   string
	Message string

	Nav    []nav.Group
	Footer *cms.FooterData
}
