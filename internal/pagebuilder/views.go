package pagebuilder

import (
	"bytes"
	"html/template"
	"log"
	"strings"

	"ridemio.org/ridemio-web/internal/cms"
	"ridemio.org/ridemio-web/internal/format"
	"ridemio.org/ridemio-web/internal/pagebuilder/sections"
)

// pageContentView composes the generic CMS page: hero, optional cover
// strip, then the shared sections in the order the backend models them.
// Every section is double-gated on its have_X flag and a non-empty details
// payload; a true flag with absent details silently omits the section.
func pageContentView(d cms.PageContentData, rctx Context) Page {
	hero := struct {
		Eyebrow     string
		Title       string
		Description string
		ImageURL    string
		CoverURL    string
	}{
		Eyebrow: strings.ReplaceAll(d.Slug, "-", " "),
		Title:   d.Title,
	}
	if d.HaveDescription {
		hero.Description = d.Description
	}
	if d.HaveImage && d.Image != nil {
		hero.ImageURL = d.Image.URL
	}
	if d.HaveCoverPage && d.CoverPage != nil {
		hero.CoverURL = d.CoverPage.URL
	}

	var blocks []template.HTML
	if d.HaveYoutubeContent {
		blocks = append(blocks, sections.Youtube(d.YoutubeContentTitle, d.YoutubeContentDescription, d.YoutubeContents))
	}
	if d.HaveToggleContent {
		blocks = append(blocks, sections.Toggle(d.ToggleContentTitle, d.ToggleContentDescription, d.ToggleContents))
	}
	if d.HaveImageCard {
		// The image-card strip borrows its heading and CTA label from
		// card_details; that coupling is the backend's data model.
		var title, cta string
		if d.CardDetails != nil {
			title = d.CardDetails.Title
			if d.CardDetails.HaveButton {
				cta = d.CardDetails.ButtonLabel
			}
		}
		blocks = append(blocks, sections.ImageCards(title, cta, d.ImageCards))
	}
	if d.HaveCard {
		blocks = append(blocks, sections.Card(d.CardDetails, rctx.Platform))
	}
	if d.HaveList {
		blocks = append(blocks, sections.List(d.ListDetails, rctx.Platform))
	}
	if d.HaveGrid {
		blocks = append(blocks, sections.Grid(d.GridDetails))
	}
	if d.HaveAdditionalInfo {
		blocks = append(blocks, sections.AdditionalInfo(d.AdditionalInfoDetails, rctx.Platform))
	}

	body := executeView("page-content", struct {
		Hero   any
		Blocks []template.HTML
	}{hero, compact(blocks)})
	return Page{Title: d.Title, Body: body}
}

func homepageCategorySectionView(d cms.HomepageCategorySectionData, rctx Context) Page {
	var blocks []template.HTML
	if d.HaveCard {
		blocks = append(blocks, sections.Card(d.CardDetails, rctx.Platform))
	}
	if d.HaveList {
		blocks = append(blocks, sections.List(d.ListDetails, rctx.Platform))
	}
	if d.HaveGrid {
		blocks = append(blocks, sections.Grid(d.GridDetails))
	}
	if d.HaveAdditionalInfo {
		blocks = append(blocks, sections.AdditionalInfo(d.AdditionalInfoDetails, rctx.Platform))
	}

	body := executeView("homepage-category", struct {
		Title       string
		Description template.HTML
		Blocks      []template.HTML
		Download    template.HTML
	}{d.Title, sections.SanitizeHTML(d.Description), compact(blocks), DownloadStrip(rctx)})
	return Page{Title: d.Title, Body: body}
}

// blogsLandingView renders the first page of the blog listing. Subsequent
// pages arrive through the load-more fragment endpoint and are appended
// client-side; the button carries the next page number extracted from the
// listing's next URL.
func blogsLandingView(d cms.BlogsLandingData, activeCategory string) Page {
	body := executeView("blogs-landing", struct {
		Categories     []cms.Category
		ActiveCategory string
		Grid           template.HTML
		NextPage       int
		Empty          bool
	}{
		Categories:     d.Categories,
		ActiveCategory: activeCategory,
		Grid:           BlogGrid(d.Blogs.Results),
		NextPage:       cms.PageFromURL(d.Blogs.Next),
		Empty:          len(d.Blogs.Results) == 0,
	})
	return Page{Title: "Blog", Body: body}
}

// BlogsLanding renders the listing with an active category filter applied.
func BlogsLanding(d cms.BlogsLandingData, activeCategory string) Page {
	return blogsLandingView(d, activeCategory)
}

// BlogGrid renders blog cards only, shared between the landing view and the
// load-more fragment endpoint.
func BlogGrid(items []cms.Blog) template.HTML {
	if len(items) == 0 {
		return ""
	}
	type cardView struct {
		Title    string
		Href     string
		ImageURL string
		Date     string
	}
	cards := make([]cardView, 0, len(items))
	for _, b := range items {
		cards = append(cards, cardView{
			Title:    b.Title,
			Href:     "/blogs/" + b.Slug,
			ImageURL: b.CoverImage,
			Date:     format.ShortDate(format.ParseDate(b.PublishedDate)),
		})
	}
	return executeView("blog-grid", cards)
}

// crutPageView renders long-form content blocks with a scroll-spy sidebar.
// The active-section tracking itself runs client-side over the data-index
// attributes emitted here.
func crutPageView(d cms.CrutPageData) Page {
	type blockView struct {
		Index   int
		Title   string
		Content template.HTML
	}
	blocks := make([]blockView, 0, len(d.CrutContents))
	for i, c := range d.CrutContents {
		blocks = append(blocks, blockView{
			Index:   i,
			Title:   c.Title,
			Content: sections.SanitizeHTML(c.Content),
		})
	}
	body := executeView("crut-page", struct {
		PageTitle string
		Blocks    []blockView
	}{d.PageTitle, blocks})
	return Page{Title: d.PageTitle, Body: body}
}

func careerPageView(d cms.CareerPageData, rctx Context) Page {
	view := struct {
		Title          string
		Description    string
		Position       string
		Location       string
		EmploymentType string
		StartDate      string
		EndDate        string
		ImageURL       string
		Download       template.HTML
	}{
		Title:          d.Title,
		Description:    d.Description,
		Position:       d.Position,
		Location:       d.Location,
		EmploymentType: d.EmploymentType,
		StartDate:      format.Date(format.ParseDate(d.StartDate)),
		EndDate:        format.Date(format.ParseDate(d.EndDate)),
		Download:       DownloadStrip(rctx),
	}
	if d.Image != nil {
		view.ImageURL = d.Image.URL
	}
	return Page{Title: d.Title, Body: executeView("career-page", view)}
}

// Home renders the landing page composition: hero carousel over the active
// banners, category cards, and ad-feature strips. Inactive entries are
// filtered out here, not in templates.
func Home(d cms.HomepageData, rctx Context) Page {
	type bannerView struct {
		Index    int
		Title    string
		Subtitle string
		Tagline  string
		ImageURL string
	}
	var banners []bannerView
	for _, b := range d.Banners {
		if !b.IsActive {
			continue
		}
		banners = append(banners, bannerView{
			Index:    len(banners),
			Title:    b.Title,
			Subtitle: b.Subtitle,
			Tagline:  b.Tagline,
			ImageURL: b.ImageURL,
		})
	}

	type categoryView struct {
		Title       string
		Description template.HTML
		Href        string
		IconURL     string
	}
	var categories []categoryView
	for _, c := range d.HomepageCategorySections {
		if !c.IsActive {
			continue
		}
		cv := categoryView{
			Title:       c.Title,
			Description: sections.SanitizeHTML(c.Description),
			Href:        "/" + c.Slug,
		}
		if c.Icon != nil {
			cv.IconURL = c.Icon.File
		}
		categories = append(categories, cv)
	}

	type featureItemView struct {
		Title           string
		Description     template.HTML
		ButtonLabel     string
		ButtonURL       string
		BackgroundColor string
	}
	type featureView struct {
		Title           string
		Description     template.HTML
		TextColor       string
		BackgroundColor string
		Items           []featureItemView
	}
	var features []featureView
	for _, s := range d.AdFeatureSections {
		if !s.IsActive {
			continue
		}
		fv := featureView{
			Title:           s.Title,
			Description:     sections.SanitizeHTML(s.Description),
			TextColor:       s.TextColor,
			BackgroundColor: s.BackgroundColor,
		}
		for _, item := range s.Items {
			if !item.IsActive {
				continue
			}
			fv.Items = append(fv.Items, featureItemView{
				Title:           item.Title,
				Description:     sections.SanitizeHTML(item.Description),
				ButtonLabel:     item.ButtonLabel,
				ButtonURL:       item.ButtonURL,
				BackgroundColor: item.BackgroundColor,
			})
		}
		features = append(features, fv)
	}

	body := executeView("home", struct {
		Banners    []bannerView
		Categories []categoryView
		Features   []featureView
		Download   template.HTML
	}{banners, categories, features, DownloadStrip(rctx)})
	return Page{Title: "Ridemio", Body: body}
}

// BlogDetailView renders a full article with its related posts.
func BlogDetailView(d cms.BlogDetail) Page {
	view := struct {
		Title    string
		Author   string
		Date     string
		Category string
		ImageURL string
		Content  template.HTML
		Related  template.HTML
	}{
		Title:    d.Blog.Title,
		Author:   d.Blog.Author,
		Date:     format.Date(format.ParseDate(d.Blog.PublishedDate)),
		Category: d.Blog.Category.Name,
		ImageURL: d.Blog.CoverImage,
		Content:  sections.SanitizeHTML(d.Blog.Content),
		Related:  BlogGrid(d.Related),
	}
	return Page{Title: d.Blog.Title, Body: executeView("blog-detail", view)}
}

// ContentFallbackView renders a local markdown fallback page.
func ContentFallbackView(p cms.ContentPage) Page {
	view := struct {
		Title   string
		Summary string
		Body    template.HTML
	}{p.Title, p.Summary, p.Body}
	return Page{Title: p.Title, Body: executeView("content-page", view)}
}

// DownloadStrip renders the app-store download block from the configured
// store links. It renders nothing when no link is configured.
func DownloadStrip(rctx Context) template.HTML {
	type appView struct {
		Label     string
		AppStore  string
		PlayStore string
	}
	var apps []appView
	if rctx.UserApp.AppStore != "" || rctx.UserApp.PlayStore != "" {
		apps = append(apps, appView{"Rider app", rctx.UserApp.AppStore, rctx.UserApp.PlayStore})
	}
	if rctx.DriverApp.AppStore != "" || rctx.DriverApp.PlayStore != "" {
		apps = append(apps, appView{"Driver app", rctx.DriverApp.AppStore, rctx.DriverApp.PlayStore})
	}
	if len(apps) == 0 {
		return ""
	}
	return executeView("download-strip", apps)
}

func compact(blocks []template.HTML) []template.HTML {
	out := blocks[:0]
	for _, b := range blocks {
		if b != "" {
			out = append(out, b)
		}
	}
	return out
}

func executeView(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := viewTmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("pagebuilder: render %s: %v", name, err)
		return ""
	}
	return template.HTML(buf.String())
}

var viewTmpl = template.Must(template.New("views").Parse(`
{{define "page-content"}}
<div class="page page-content">
  <section class="page-hero">
    <div class="page-hero-copy">
      <p class="page-eyebrow">{{.Hero.Eyebrow}}</p>
      <h1>{{.Hero.Title}}</h1>
      {{if .Hero.Description}}<p class="page-description">{{.Hero.Description}}</p>{{end}}
    </div>
    {{if .Hero.ImageURL}}
    <div class="page-hero-image"><img src="{{.Hero.ImageURL}}" alt="{{.Hero.Title}}"></div>
    {{end}}
  </section>
  {{if .Hero.CoverURL}}
  <section class="page-cover"><img src="{{.Hero.CoverURL}}" alt="{{.Hero.Title}} cover"></section>
  {{end}}
  {{range .Blocks}}{{.}}{{end}}
</div>
{{end}}

{{define "homepage-category"}}
<div class="page page-category">
  <section class="page-intro">
    <h1>{{.Title}}</h1>
    {{if .Description}}<div class="page-description">{{.Description}}</div>{{end}}
  </section>
  {{range .Blocks}}{{.}}{{end}}
  {{.Download}}
</div>
{{end}}

{{define "blogs-landing"}}
<div class="page page-blogs">
  <section class="blogs-hero">
    <p class="page-eyebrow">BLOG</p>
    <h1>Stories that move us</h1>
    <p class="page-description">The Ridemio blog is your window into the world of mobility. From safety innovations to community stories and earning tips, we share what matters most.</p>
  </section>
  <nav class="blog-filters" aria-label="Blog categories">
    <a class="blog-filter{{if not .ActiveCategory}} active{{end}}" href="/blogs">All</a>
    {{$active := .ActiveCategory}}
    {{range .Categories}}
    <a class="blog-filter{{if eq .ID $active}} active{{end}}" href="/blogs?category={{.ID}}">{{.Name}}</a>
    {{end}}
  </nav>
  <section class="blogs-list">
    <div class="blog-grid" id="blog-grid" data-category="{{.ActiveCategory}}">{{.Grid}}</div>
    {{if .Empty}}<div class="blogs-empty">No blogs found.</div>{{end}}
    {{if .NextPage}}
    <div class="blogs-more">
      <button class="btn" type="button" id="blogs-load-more" data-next-page="{{.NextPage}}" data-category="{{.ActiveCategory}}">Load More</button>
    </div>
    {{end}}
  </section>
</div>
{{end}}

{{define "blog-grid"}}
{{range .}}
<a class="blog-card" href="{{.Href}}">
  <div class="blog-card-image">
    {{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Title}}" loading="lazy">{{else}}<div class="blog-card-placeholder"></div>{{end}}
  </div>
  <div class="blog-card-meta">
    <span class="blog-card-date">{{.Date}}</span>
    <h3>{{.Title}}</h3>
  </div>
</a>
{{end}}
{{end}}

{{define "crut-page"}}
<div class="page page-crut">
  <h1 class="crut-title">{{.PageTitle}}</h1>
  <div class="crut-layout" data-scrollspy>
    <aside class="crut-sidebar">
      <nav>
        {{range .Blocks}}
        <button type="button" class="crut-nav-item{{if eq .Index 0}} active{{end}}" data-target="{{.Index}}">{{.Title}}</button>
        {{end}}
      </nav>
    </aside>
    <section class="crut-content">
      {{range .Blocks}}
      <article class="crut-block" data-index="{{.Index}}">
        <h2>{{.Title}}</h2>
        <div class="crut-body">{{.Content}}</div>
      </article>
      {{end}}
    </section>
  </div>
</div>
{{end}}

{{define "career-page"}}
<div class="page page-career">
  <section class="career-card">
    {{if .ImageURL}}<div class="career-image"><img src="{{.ImageURL}}" alt="{{.Title}}"></div>{{end}}
    <div class="career-body">
      <h1>{{.Title}}</h1>
      {{if .Description}}<p class="page-description">{{.Description}}</p>{{end}}
      <dl class="career-facts">
        <div><dt>Position</dt><dd>{{.Position}}</dd></div>
        <div><dt>Location</dt><dd>{{.Location}}</dd></div>
        <div><dt>Type</dt><dd>{{.EmploymentType}}</dd></div>
        <div><dt>Start date</dt><dd>{{.StartDate}}</dd></div>
        <div><dt>End date</dt><dd>{{.EndDate}}</dd></div>
      </dl>
      <button class="btn" type="button">Apply now</button>
    </div>
  </section>
  {{.Download}}
</div>
{{end}}

{{define "home"}}
<div class="page page-home">
  {{if .Banners}}
  <section class="hero-carousel" data-carousel>
    {{range .Banners}}
    <div class="hero-slide{{if eq .Index 0}} active{{end}}" data-slide="{{.Index}}">
      {{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Title}}">{{end}}
      <div class="hero-copy">
        {{if .Tagline}}<p class="page-eyebrow">{{.Tagline}}</p>{{end}}
        <h2>{{.Title}}</h2>
        {{if .Subtitle}}<p>{{.Subtitle}}</p>{{end}}
      </div>
    </div>
    {{end}}
    <div class="hero-dots">
      {{range .Banners}}<button type="button" class="hero-dot{{if eq .Index 0}} active{{end}}" data-goto="{{.Index}}" aria-label="Slide {{.Index}}"></button>{{end}}
    </div>
  </section>
  {{end}}
  {{if .Categories}}
  <section class="home-categories">
    {{range .Categories}}
    <a class="home-category" href="{{.Href}}">
      {{if .IconURL}}<img src="{{.IconURL}}" alt="" loading="lazy">{{end}}
      <h3>{{.Title}}</h3>
      {{if .Description}}<div class="home-category-text">{{.Description}}</div>{{end}}
    </a>
    {{end}}
  </section>
  {{end}}
  {{range .Features}}
  <section class="home-feature" style="color:{{.TextColor}};background-color:{{.BackgroundColor}}">
    <h2>{{.Title}}</h2>
    {{if .Description}}<div class="home-feature-text">{{.Description}}</div>{{end}}
    <div class="home-feature-items">
      {{range .Items}}
      <div class="home-feature-item" style="background-color:{{.BackgroundColor}}">
        <h3>{{.Title}}</h3>
        {{if .Description}}<div>{{.Description}}</div>{{end}}
        {{if .ButtonLabel}}<a class="btn" href="{{.ButtonURL}}">{{.ButtonLabel}}</a>{{end}}
      </div>
      {{end}}
    </div>
  </section>
  {{end}}
  {{.Download}}
</div>
{{end}}

{{define "blog-detail"}}
<div class="page page-blog-detail">
  <article class="blog-article">
    <header>
      {{if .Category}}<p class="page-eyebrow">{{.Category}}</p>{{end}}
      <h1>{{.Title}}</h1>
      <p class="blog-byline">{{if .Author}}{{.Author}}{{end}}{{if and .Author .Date}} · {{end}}{{.Date}}</p>
    </header>
    {{if .ImageURL}}<div class="blog-cover"><img src="{{.ImageURL}}" alt="{{.Title}}"></div>{{end}}
    <div class="blog-content">{{.Content}}</div>
  </article>
  {{if .Related}}
  <section class="blog-related">
    <h2>Related stories</h2>
    <div class="blog-grid">{{.Related}}</div>
  </section>
  {{end}}
</div>
{{end}}

{{define "content-page"}}
<div class="page page-static">
  <article class="static-article">
    <h1>{{.Title}}</h1>
    {{if .Summary}}<p class="page-description">{{.Summary}}</p>{{end}}
    <div class="static-body">{{.Body}}</div>
  </article>
</div>
{{end}}

{{define "download-strip"}}
<section class="section download-strip" data-section="download">
  <h2>Get the Ridemio apps</h2>
  <div class="download-apps">
    {{range .}}
    <div class="download-app">
      <span class="download-label">{{.Label}}</span>
      {{if .AppStore}}<a class="store-badge" href="{{.AppStore}}" target="_blank" rel="noopener">App Store</a>{{end}}
      {{if .PlayStore}}<a class="store-badge" href="{{.PlayStore}}" target="_blank" rel="noopener">Google Play</a>{{end}}
    </div>
    {{end}}
  </div>
</section>
{{end}}
`))
