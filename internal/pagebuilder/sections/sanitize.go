package sections

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// richText sanitizes admin-authored HTML before injection. The original site
// trusted the CMS verbatim; we keep the rendering contract but strip script
// vectors, since the content API is still an injection surface if ever
// compromised.
var richText = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	return p
}()

// iconMarkup allows only the inline markup icon fields may carry (font
// spans/italic tags from the admin icon picker).
var iconMarkup = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("i", "span", "svg", "path")
	p.AllowAttrs("class").OnElements("i", "span")
	p.AllowAttrs("viewBox", "d", "fill", "stroke", "stroke-width").OnElements("svg", "path")
	return p
}()

// SanitizeHTML returns s with unsafe markup removed, ready for raw injection.
func SanitizeHTML(s string) template.HTML {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return template.HTML(richText.Sanitize(s))
}
