// Package pagebuilder turns decoded page envelopes into rendered page
// bodies. Dispatch over the page type is closed: the five known variants go
// to their views, anything else degrades to an explicit unknown-page view so
// backend schema drift can never fail a request.
package pagebuilder

import (
	"html/template"

	"ridemio.org/ridemio-web/internal/cms"
	"ridemio.org/ridemio-web/internal/config"
	"ridemio.org/ridemio-web/internal/platform"
)

// Context carries the request-scoped inputs views need beyond the envelope
// payload: the client platform for store CTAs and the configured app links
// for download strips.
type Context struct {
	Platform  platform.Platform
	UserApp   config.StoreLinks
	DriverApp config.StoreLinks
}

// Page is a rendered page body plus the metadata the layout needs.
type Page struct {
	Title string
	Body  template.HTML
}

// Render decodes the envelope and dispatches to the matching view. The only
// error case is a malformed payload for a known page type; unknown page
// types render the unknown-page terminal view.
func Render(env cms.Envelope, rctx Context) (Page, error) {
	data, err := env.Decode()
	if err != nil {
		return Page{}, err
	}
	return RenderData(data, rctx), nil
}

// RenderData dispatches an already decoded payload to its view.
func RenderData(data cms.PageData, rctx Context) Page {
	switch d := data.(type) {
	case cms.PageContentData:
		return pageContentView(d, rctx)
	case cms.HomepageCategorySectionData:
		return homepageCategorySectionView(d, rctx)
	case cms.BlogsLandingData:
		return blogsLandingView(d, "")
	case cms.CrutPageData:
		return crutPageView(d)
	case cms.CareerPageData:
		return careerPageView(d, rctx)
	default:
		return unknownPageView()
	}
}

func unknownPageView() Page {
	return Page{
		Title: "Unknown page",
		Body:  `<div class="page-unknown"><p>Unknown page type.</p></div>`,
	}
}
