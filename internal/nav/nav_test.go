package nav

import (
	"testing"

	"ridemio.org/ridemio-web/internal/cms"
)

func testGroups() []cms.NavGroup {
	return []cms.NavGroup{
		{
			ID:   "g1",
			Name: "Services",
			Submenus: []cms.NavSubmenu{
				{Name: "Ride", Slug: "ride"},
				{Name: "Courier", Slug: "courier"},
			},
		},
		{
			ID:   "g2",
			Name: "Company",
			Submenus: []cms.NavSubmenu{
				{Name: "About", Slug: "/about-us/"},
			},
		},
		{ID: "g3", Name: "Empty"},
	}
}

func TestBuildFlattensAndSkipsEmptyGroups(t *testing.T) {
	groups := Build(testGroups(), "/")
	if len(groups) != 2 {
		t.Fatalf("expected empty group skipped, got %d groups", len(groups))
	}
	if groups[0].Label != "Services" || len(groups[0].Items) != 2 {
		t.Fatalf("unexpected first group: %+v", groups[0])
	}
	if got := groups[1].Items[0].Href; got != "/about-us" {
		t.Fatalf("expected slug trimmed into href, got %q", got)
	}
	for _, g := range groups {
		if g.Active {
			t.Fatalf("no group should be active at /: %+v", g)
		}
	}
}

func TestBuildActiveState(t *testing.T) {
	groups := Build(testGroups(), "/courier")
	if !groups[0].Active {
		t.Fatal("expected Services group active for /courier")
	}
	if groups[0].Items[0].Active {
		t.Fatal("ride item should not be active")
	}
	if !groups[0].Items[1].Active {
		t.Fatal("courier item should be active")
	}
	if groups[1].Active {
		t.Fatal("Company group should not be active")
	}
}

func TestBuildActivePrefix(t *testing.T) {
	groups := Build(testGroups(), "/courier/pricing")
	if !groups[0].Items[1].Active {
		t.Fatal("expected /courier active for subpath /courier/pricing")
	}

	// Prefix match requires a path boundary.
	groups = Build(testGroups(), "/courier-express")
	if groups[0].Items[1].Active {
		t.Fatal("/courier-express must not activate /courier")
	}
}

func TestBuildEmptyPathDefaultsToRoot(t *testing.T) {
	groups := Build(testGroups(), "")
	for _, g := range groups {
		if g.Active {
			t.Fatalf("empty path must behave like /: %+v", g)
		}
	}
}
