// Package sections renders the reusable layout blocks pages are composed
// from. Every renderer is a pure function of its details payload: missing or
// empty data renders nothing at all, never an empty shell.
package sections

import (
	"bytes"
	"html/template"
	"log"

	"ridemio.org/ridemio-web/internal/cms"
	"ridemio.org/ridemio-web/internal/platform"
)

type cardItemView struct {
	Title       string
	Description string
	Icon        template.HTML
}

type cardView struct {
	Title       string
	Lead        string
	Items       []cardItemView
	ButtonLabel string
	ButtonURL   string
}

type listItemView struct {
	Number      int
	Title       string
	Description string
}

type listView struct {
	Title       string
	ImageURL    string
	Items       []listItemView
	ButtonLabel string
	ButtonURL   string
}

type gridView struct {
	Title string
	Items []cms.GridContent
}

type toggleItemView struct {
	Number  int
	Title   string
	Content template.HTML
}

type toggleView struct {
	Title    string
	Subtitle string
	Items    []toggleItemView
}

type youtubeItemView struct {
	Title        string
	URL          string
	VideoID      string
	ThumbnailURL string
}

type youtubeView struct {
	Title       string
	Description string
	Items       []youtubeItemView
}

type additionalInfoView struct {
	Title       string
	Description template.HTML
	ImageURL    string
	ButtonLabel string
	ButtonURL   string
}

type imageCardView struct {
	Title    string
	CTALabel string
	Cards    []cms.ImageCard
}

// Card renders a titled collection of icon cards with an optional
// platform-gated store button.
func Card(d *cms.CardDetails, p platform.Platform) template.HTML {
	if d == nil || len(d.CardContents) == 0 {
		return ""
	}
	view := cardView{Title: d.Title}
	for i, c := range d.CardContents {
		view.Items = append(view.Items, cardItemView{
			Title:       c.Title,
			Description: c.Description,
			Icon:        iconHTML(c.Icon, i),
		})
		// The heading reuses the first item description as a lead line.
		if view.Lead == "" && c.Description != "" {
			view.Lead = c.Description
		}
	}
	if d.HaveButton && d.ButtonLabel != "" {
		view.ButtonLabel = d.ButtonLabel
		view.ButtonURL = platform.StoreURL(p, d.IOSURL, d.AndroidURL)
	}
	return execute("card", view)
}

// List renders a numbered list beside an optional companion image.
func List(d *cms.ListDetails, p platform.Platform) template.HTML {
	if d == nil || len(d.ListContents) == 0 {
		return ""
	}
	view := listView{Title: d.Title}
	if d.Image != nil {
		view.ImageURL = d.Image.URL
	}
	for i, c := range d.ListContents {
		view.Items = append(view.Items, listItemView{
			Number:      i + 1,
			Title:       c.Title,
			Description: c.Description,
		})
	}
	if d.HaveButton && d.ButtonLabel != "" {
		view.ButtonLabel = d.ButtonLabel
		view.ButtonURL = platform.StoreURL(p, d.IOSURL, d.AndroidURL)
	}
	return execute("list", view)
}

// Grid renders a titled grid of text cells.
func Grid(d *cms.GridDetails) template.HTML {
	if d == nil || len(d.GridContents) == 0 {
		return ""
	}
	return execute("grid", gridView{Title: d.Title, Items: d.GridContents})
}

// Toggle renders a single-expand FAQ accordion. Item bodies are sanitized
// admin HTML.
func Toggle(title, subtitle string, items []cms.ToggleItem) template.HTML {
	if len(items) == 0 {
		return ""
	}
	view := toggleView{Title: title, Subtitle: subtitle}
	if view.Title == "" {
		view.Title = "Help for Users"
	}
	for i, item := range items {
		view.Items = append(view.Items, toggleItemView{
			Number:  i + 1,
			Title:   item.Title,
			Content: SanitizeHTML(item.Content),
		})
	}
	return execute("toggle", view)
}

// Youtube renders a grid of video cards. Items whose URL yields no video ID
// render an explicit invalid-URL placeholder instead of a broken embed.
func Youtube(title, description string, items []cms.YoutubeItem) template.HTML {
	if len(items) == 0 {
		return ""
	}
	view := youtubeView{Title: title, Description: description}
	for _, item := range items {
		iv := youtubeItemView{Title: item.Title, URL: item.YoutubeURL}
		if id := VideoID(item.YoutubeURL); id != "" {
			iv.VideoID = id
			iv.ThumbnailURL = "https://img.youtube.com/vi/" + id + "/maxresdefault.jpg"
		}
		view.Items = append(view.Items, iv)
	}
	return execute("youtube", view)
}

// AdditionalInfo renders the promotional call-to-action banner.
func AdditionalInfo(d *cms.AdditionalInfo, p platform.Platform) template.HTML {
	if d == nil || d.Title == "" {
		return ""
	}
	view := additionalInfoView{
		Title:       d.Title,
		Description: SanitizeHTML(d.Description),
	}
	if d.Image != nil {
		view.ImageURL = d.Image.URL
	}
	if d.ButtonLabel != "" {
		view.ButtonLabel = d.ButtonLabel
		view.ButtonURL = platform.StoreURL(p, d.IOSURL, d.AndroidURL)
	}
	return execute("additional-info", view)
}

// ImageCards renders a grid of illustrated cards with an optional CTA label.
func ImageCards(title, ctaLabel string, cards []cms.ImageCard) template.HTML {
	if len(cards) == 0 {
		return ""
	}
	view := imageCardView{Title: title, CTALabel: ctaLabel, Cards: cards}
	if view.Title == "" {
		view.Title = "Why choose Ridemio?"
	}
	return execute("image-cards", view)
}

func execute(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("sections: render %s: %v", name, err)
		return ""
	}
	return template.HTML(buf.String())
}

var tmpl = template.Must(template.New("sections").Parse(`
{{define "card"}}
<section class="section section-card" data-section="card">
  <div class="section-heading">
    <h2>{{.Title}}</h2>
    {{if .Lead}}<p class="section-lead">{{.Lead}}</p>{{end}}
  </div>
  <div class="card-grid">
    {{range .Items}}
    <div class="card">
      <div class="card-icon">{{.Icon}}</div>
      <div class="card-body">
        <h3>{{.Title}}</h3>
        {{if .Description}}<p>{{.Description}}</p>{{end}}
      </div>
    </div>
    {{end}}
  </div>
  {{if .ButtonLabel}}
  <div class="section-cta">
    {{if .ButtonURL}}<a class="btn" href="{{.ButtonURL}}" target="_blank" rel="noopener">{{.ButtonLabel}}</a>{{else}}<button class="btn" type="button" disabled>{{.ButtonLabel}}</button>{{end}}
  </div>
  {{end}}
</section>
{{end}}

{{define "list"}}
<section class="section section-list" data-section="list">
  <div class="section-heading">
    <h2>{{.Title}}</h2>
  </div>
  <div class="list-layout">
    {{if .ImageURL}}
    <div class="list-image"><img src="{{.ImageURL}}" alt="{{.Title}}" loading="lazy"></div>
    {{end}}
    <div class="list-items">
      {{range .Items}}
      <div class="list-item">
        <span class="list-number">{{.Number}}</span>
        <div>
          <h4>{{.Title}}</h4>
          {{if .Description}}<p>{{.Description}}</p>{{end}}
        </div>
      </div>
      {{end}}
      {{if .ButtonLabel}}
      {{if .ButtonURL}}<a class="btn" href="{{.ButtonURL}}" target="_blank" rel="noopener">{{.ButtonLabel}}</a>{{else}}<button class="btn" type="button" disabled>{{.ButtonLabel}}</button>{{end}}
      {{end}}
    </div>
  </div>
</section>
{{end}}

{{define "grid"}}
<section class="section section-grid" data-section="grid">
  <div class="section-heading">
    <h2>{{.Title}}</h2>
  </div>
  <div class="grid-cells">
    {{range .Items}}
    <div class="grid-cell">
      <h3>{{.Title}}</h3>
      {{if .Description}}<p>{{.Description}}</p>{{end}}
    </div>
    {{end}}
  </div>
</section>
{{end}}

{{define "toggle"}}
<section class="section section-toggle" data-section="toggle">
  <div class="section-heading">
    <h2>{{.Title}}</h2>
    {{if .Subtitle}}<p class="section-lead">{{.Subtitle}}</p>{{end}}
  </div>
  <div class="accordion">
    {{range .Items}}
    <details class="accordion-item" name="faq">
      <summary>
        <span class="accordion-badge">Q{{.Number}}</span>
        <span class="accordion-title">{{.Title}}</span>
      </summary>
      <div class="accordion-content">{{.Content}}</div>
    </details>
    {{end}}
  </div>
</section>
{{end}}

{{define "youtube"}}
<section class="section section-youtube" data-section="youtube">
  <div class="section-heading">
    {{if .Title}}<h2>{{.Title}}</h2>{{end}}
    {{if .Description}}<p class="section-lead">{{.Description}}</p>{{end}}
  </div>
  <div class="video-grid">
    {{range .Items}}
    {{if .VideoID}}
    <div class="video-card" data-video-id="{{.VideoID}}">
      <img class="video-thumb" src="{{.ThumbnailURL}}" alt="{{.Title}}" loading="lazy">
      <button class="video-play" type="button" aria-label="Play video"></button>
      <div class="video-meta">
        <h3>{{.Title}}</h3>
        <a class="video-link" href="{{.URL}}" target="_blank" rel="noopener">Learn More</a>
      </div>
    </div>
    {{else}}
    <div class="video-card video-card-invalid">
      <p>Invalid YouTube URL</p>
    </div>
    {{end}}
    {{end}}
  </div>
</section>
{{end}}

{{define "additional-info"}}
<section class="section section-additional-info" data-section="additional-info">
  <div class="additional-info-layout">
    <div class="additional-info-body">
      <h2>{{.Title}}</h2>
      {{if .Description}}<div class="additional-info-text">{{.Description}}</div>{{end}}
      {{if .ButtonLabel}}
      {{if .ButtonURL}}<a class="btn btn-yellow" href="{{.ButtonURL}}" target="_blank" rel="noopener">{{.ButtonLabel}}</a>{{else}}<button class="btn btn-yellow" type="button" disabled>{{.ButtonLabel}}</button>{{end}}
      {{end}}
    </div>
    {{if .ImageURL}}
    <div class="additional-info-image"><img src="{{.ImageURL}}" alt="{{.Title}}" loading="lazy"></div>
    {{end}}
  </div>
</section>
{{end}}

{{define "image-cards"}}
<section class="section section-image-cards" data-section="image-cards">
  <div class="section-heading">
    <h2>{{.Title}}</h2>
  </div>
  <div class="image-card-grid">
    {{range .Cards}}
    <div class="image-card">
      {{if .Image}}{{if .Image.URL}}<img src="{{.Image.URL}}" alt="{{.Title}}" loading="lazy">{{end}}{{end}}
      <h3>{{.Title}}</h3>
      {{if .Description}}<p>{{.Description}}</p>{{end}}
    </div>
    {{end}}
  </div>
  {{if .CTALabel}}
  <div class="section-cta"><button class="btn" type="button">{{.CTALabel}}</button></div>
  {{end}}
</section>
{{end}}
`))
