package sections

import (
	"fmt"
	"html/template"
	"strings"
)

// iconRegistry maps the closed set of CMS icon identifiers to inline SVG
// markup. The admin UI offers free-form icon names; resolving them through
// an explicit registry means a typo degrades to the numbered badge below
// instead of a silent runtime miss.
var iconRegistry = map[string]template.HTML{
	"car":        `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M5 11l1.5-4.5A2 2 0 018.4 5h7.2a2 2 0 011.9 1.5L19 11m-14 0h14m-14 0a2 2 0 00-2 2v3h2m14-5a2 2 0 012 2v3h-2m-12 0a2 2 0 11-4 0m16 0a2 2 0 11-4 0"/></svg>`,
	"bike":       `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><circle cx="6" cy="17" r="3"/><circle cx="18" cy="17" r="3"/><path d="M6 17l4-8h4l4 8M10 9l-1-3h3"/></svg>`,
	"shield":     `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M12 3l8 3v5c0 5-3.5 8.5-8 10-4.5-1.5-8-5-8-10V6l8-3z"/></svg>`,
	"star":       `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M12 3l2.7 5.6 6.3.9-4.5 4.3 1 6.2-5.5-3-5.5 3 1-6.2L3 9.5l6.3-.9L12 3z"/></svg>`,
	"map-pin":    `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M12 21s7-5.5 7-11a7 7 0 10-14 0c0 5.5 7 11 7 11z"/><circle cx="12" cy="10" r="2.5"/></svg>`,
	"clock":      `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><circle cx="12" cy="12" r="9"/><path d="M12 7v5l3 3"/></svg>`,
	"users":      `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><circle cx="9" cy="8" r="3"/><path d="M3 20a6 6 0 0112 0M16 5a3 3 0 010 6m5 9a6 6 0 00-5-5.9"/></svg>`,
	"wallet":     `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><rect x="3" y="6" width="18" height="13" rx="2"/><path d="M16 12h2M3 10h18"/></svg>`,
	"phone":      `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><rect x="7" y="3" width="10" height="18" rx="2"/><path d="M11 18h2"/></svg>`,
	"headphones": `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M4 14v-2a8 8 0 0116 0v2"/><rect x="3" y="14" width="4" height="6" rx="1"/><rect x="17" y="14" width="4" height="6" rx="1"/></svg>`,
}

// iconHTML resolves an icon field to renderable markup. Icon fields carry
// either a registry identifier or inline markup from the admin icon picker;
// anything unresolvable falls back to a numbered badge.
func iconHTML(icon string, index int) template.HTML {
	icon = strings.TrimSpace(icon)
	if icon == "" {
		return numberedBadge(index)
	}
	if strings.Contains(icon, "<") {
		if out := iconMarkup.Sanitize(icon); strings.TrimSpace(out) != "" {
			return template.HTML(out)
		}
		return numberedBadge(index)
	}
	if svg, ok := iconRegistry[icon]; ok {
		return svg
	}
	return numberedBadge(index)
}

func numberedBadge(index int) template.HTML {
	return template.HTML(fmt.Sprintf("<span>%d</span>", index+1))
}
