package seo

import (
	"strings"
	"testing"
)

func TestForPage(t *testing.T) {
	m := ForPage("https://ridemio.example", "/ride", "Ride", "Get there fast.")
	if m.Canonical != "https://ridemio.example/ride" {
		t.Fatalf("canonical = %q", m.Canonical)
	}
	if m.OG.URL != m.Canonical || m.OG.Title != "Ride" || m.OG.SiteName != "Ridemio" {
		t.Fatalf("unexpected OG: %+v", m.OG)
	}
}

func TestForPageWithoutSiteURL(t *testing.T) {
	m := ForPage("", "/ride", "Ride", "")
	if m.Canonical != "" || m.OG.URL != "" {
		t.Fatalf("expected no canonical without a site URL: %+v", m)
	}
}

func TestArticleSchema(t *testing.T) {
	out := string(JSON(Article("Night rides", "https://ridemio.example/blogs/night-rides", "", "Ana", "2025-06-15")))
	for _, want := range []string{`"@type":"Article"`, `"headline":"Night rides"`, `"name":"Ana"`, `"datePublished":"2025-06-15"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in %s", want, out)
		}
	}
	if strings.Contains(out, `"image"`) {
		t.Fatalf("empty image must be omitted: %s", out)
	}
}

func TestOrganizationSchema(t *testing.T) {
	out := string(JSON(Organization("Ridemio", "https://ridemio.example", "")))
	if !strings.Contains(out, `"@type":"Organization"`) || !strings.Contains(out, `"name":"Ridemio"`) {
		t.Fatalf("unexpected schema: %s", out)
	}
}
