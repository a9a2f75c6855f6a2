// Package nav builds the header navigation from the backend navigation
// tree: ordered parent groups with submenu links, flattened into view
// models with active state resolved against the current path.
package nav

import (
	"strings"

	"ridemio.org/ridemio-web/internal/cms"
)

// Item is a single navigation link.
type Item struct {
	Label  string
	Href   string
	Active bool
}

// Group is a top-level navigation entry. At most one group is active for a
// given path; Active marks the group containing the current page.
type Group struct {
	Label  string
	Items  []Item
	Active bool
}

// Build flattens the backend tree into renderable groups with active state
// for the current path. Submenu slugs become site-root hrefs.
func Build(groups []cms.NavGroup, currentPath string) []Group {
	if currentPath == "" {
		currentPath = "/"
	}
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		group := Group{Label: g.Name}
		for _, s := range g.Submenus {
			href := "/" + strings.Trim(s.Slug, "/")
			item := Item{
				Label:  s.Name,
				Href:   href,
				Active: isActive(href, currentPath),
			}
			if item.Active {
				group.Active = true
			}
			group.Items = append(group.Items, item)
		}
		if len(group.Items) == 0 {
			continue
		}
		out = append(out, group)
	}
	return out
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}
