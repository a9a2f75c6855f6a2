package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ridemio.org/ridemio-web/internal/cms"
	"ridemio.org/ridemio-web/internal/config"
)

const (
	navigationJSON = `[{"id":"g1","name":"Services","submenus":[{"name":"Ride","slug":"ride"},{"name":"Courier","slug":"courier"}]}]`
	footerJSON     = `{"social_links":{"have_facebook":true,"facebook_url":"https://fb.example/ridemio"},"footer_groups":[{"name":"Company","footer_links":[{"label":"About","slug":"about-us"}]}],"footer_rows":[{"title":"Privacy Policy","slug":"privacy-policy"}]}`
	landingJSON    = `{"banners":[{"title":"Your city, one tap away","image_url":"https://cdn.example/hero.jpg","is_active":true}],"homepage_category_sections":[{"title":"Ride","slug":"ride","is_active":true}],"ad_feature_sections":[]}`
	ridePageJSON   = `{"page_type":"page_content","data":{"slug":"ride","title":"Ride with Ridemio","have_card":true,"card_details":{"title":"Why ride","card_contents":[{"title":"Safe trips","icon":"shield"}]}}}`
	futurePageJSON = `{"page_type":"hologram_page","data":{"beam":true}}`
	blogsJSON      = `{"page_type":"blogs_landing","data":{"categories":[{"id":"c1","name":"Safety"}],"blogs":{"count":12,"next":"https://api.example.com/blogs/?page=2","results":[{"title":"Night rides","slug":"night-rides","published_date":"2025-06-15"}]}}}`
	blogsLastJSON  = `{"page_type":"blogs_landing","data":{"categories":[],"blogs":{"count":12,"next":"","results":[{"title":"Final post","slug":"final-post"}]}}}`
	blogJSON       = `{"blog":{"title":"Night rides","slug":"night-rides","content":"<p>Ride safe after dark.</p>","author":"Ana","published_date":"2025-06-15","cover_image":"https://cdn.example/cover.jpg"},"related":[{"title":"Day rides","slug":"day-rides"}]}`
)

// newMockCMS serves the content API surface the handlers consume.
func newMockCMS(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/navigation/":
			_, _ = w.Write([]byte(navigationJSON))
		case r.URL.Path == "/footer/":
			_, _ = w.Write([]byte(footerJSON))
		case r.URL.Path == "/landing/":
			_, _ = w.Write([]byte(landingJSON))
		case r.URL.Path == "/pages/ride/":
			_, _ = w.Write([]byte(ridePageJSON))
		case r.URL.Path == "/pages/future/":
			_, _ = w.Write([]byte(futurePageJSON))
		case r.URL.Path == "/pages/broken/":
			http.Error(w, "upstream exploded", http.StatusInternalServerError)
		case r.URL.Path == "/blogs/" && r.URL.Query().Get("page") == "2":
			_, _ = w.Write([]byte(blogsLastJSON))
		case r.URL.Path == "/blogs/":
			_, _ = w.Write([]byte(blogsJSON))
		case r.URL.Path == "/blogs/night-rides/":
			_, _ = w.Write([]byte(blogJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// newTestRouter builds a router like main() against a mock content API.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	devMode = true
	templatesDir = "../../templates"
	publicDir = "../../public"
	if _, err := parseTemplates(); err != nil {
		t.Fatalf("parseTemplates failed: %v", err)
	}

	mock := newMockCMS(t)
	cfg = &config.Config{
		Addr:       ":0",
		APIBaseURL: mock.URL,
		SiteURL:    "https://ridemio.example",
		UserApp:    config.StoreLinks{AppStore: "https://apps.example/rider", PlayStore: "https://play.example/rider"},
		DriverApp:  config.StoreLinks{PlayStore: "https://play.example/driver"},
	}
	cmsClient = cms.NewClient(mock.URL)
	cmsClient.SetContentDir("testdata/content")
	t.Cleanup(func() {
		cfg = nil
		cmsClient = nil
	})

	return newRouter()
}

func get(t *testing.T, srv http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthzOK(t *testing.T) {
	srv := newTestRouter(t)
	rec := get(t, srv, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "ok" {
		t.Fatalf("expected body 'ok', got %q", got)
	}
}

func TestHomePageRenders(t *testing.T) {
	srv := newTestRouter(t)
	rec := get(t, srv, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Your city, one tap away") {
		t.Fatalf("expected banner title in body; body=%s", body)
	}
	if !strings.Contains(body, "data-carousel") {
		t.Fatalf("expected carousel marker in body")
	}
	// Shared chrome from the navigation and footer endpoints.
	if !strings.Contains(body, ">Ride<") {
		t.Fatalf("expected nav item in body")
	}
	if !strings.Contains(body, "https://fb.example/ridemio") {
		t.Fatalf("expected footer social link in body")
	}
	if !strings.Contains(body, `"@type":"Organization"`) {
		t.Fatalf("expected Organization JSON-LD in head; body=%s", body)
	}
}

func TestSlugPageRenders(t *testing.T) {
	srv := newTestRouter(t)
	rec := get(t, srv, "/ride")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Ride with Ridemio") {
		t.Fatalf("expected page title in body")
	}
	if !strings.Contains(body, "Safe trips") {
		t.Fatalf("expected card section content in body")
	}
	if !strings.Contains(body, `<link rel="canonical" href="https://ridemio.example/ride">`) {
		t.Fatalf("expected canonical link in head; body=%s", body)
	}
}

func TestUnknownPageTypeStillRenders(t *testing.T) {
	srv := newTestRouter(t)
	rec := get(t, srv, "/future")
	if rec.Code != http.StatusOK {
		t.Fatalf("unknown page type must render, got %d; body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Unknown page type.") {
		t.Fatalf("expected unknown-page copy in body")
	}
}

func TestSlugPageFallsBackToLocalContent(t *testing.T) {
	srv := newTestRouter(t)
	rec := get(t, srv, "/about-us")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from local fallback, got %d; body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "About Ridemio") {
		t.Fatalf("expected fallback page title in body")
	}
	if !strings.Contains(body, "Our story") {
		t.Fatalf("expected rendered markdown heading in body")
	}
}

func TestSlugPageNotFound(t *testing.T) {
	srv := newTestRouter(t)
	rec := get(t, srv, "/no-such-page")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Page not found") {
		t.Fatalf("expected not-found copy in body")
	}
}

func TestSlugPageUpstreamFailure(t *testing.T) {
	srv := newTestRouter(t)
	rec := get(t, srv, "/broken")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Something went wrong") {
		t.Fatalf("expected error copy in body")
	}
	if strings.Contains(body, "upstream exploded") {
		t.Fatalf("upstream error detail must not leak to the user")
	}
}

func TestBlogsPageRenders(t *testing.T) {
	srv := newTestRouter(t)
	rec := get(t, srv, "/blogs")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Night rides") {
		t.Fatalf("expected blog card in body")
	}
	if !strings.Contains(body, `id="blogs-load-more"`) || !strings.Contains(body, `data-next-page="2"`) {
		t.Fatalf("expected load-more button with next page; body=%s", body)
	}
}

func TestBlogsCategoryFilterRestartsListing(t *testing.T) {
	srv := newTestRouter(t)
	rec := get(t, srv, "/blogs?category=c1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	// A fresh filter selection starts from page one and the load-more state
	// carries the category for subsequent fragment fetches.
	if !strings.Contains(body, `data-category="c1"`) {
		t.Fatalf("expected category carried on the grid; body=%s", body)
	}
	if !strings.Contains(body, `data-next-page="2"`) {
		t.Fatalf("expected pagination restarted at the first page")
	}
}

func TestBlogsFragmentPagination(t *testing.T) {
	srv := newTestRouter(t)

	rec := get(t, srv, "/blogs/fragment?page=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("X-Next-Page"); got != "2" {
		t.Fatalf("expected X-Next-Page=2, got %q", got)
	}
	if !strings.Contains(rec.Body.String(), "blog-card") {
		t.Fatalf("expected bare card fragment in body")
	}
	if strings.Contains(rec.Body.String(), "<html") {
		t.Fatalf("fragment must not be a full document")
	}

	// The last page carries no next header, which removes the button client-side.
	rec = get(t, srv, "/blogs/fragment?page=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("X-Next-Page"); got != "" {
		t.Fatalf("expected no X-Next-Page on the last page, got %q", got)
	}
	if !strings.Contains(rec.Body.String(), "Final post") {
		t.Fatalf("expected last page cards in fragment")
	}
}

func TestBlogDetailRenders(t *testing.T) {
	srv := newTestRouter(t)
	rec := get(t, srv, "/blogs/night-rides")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Ride safe after dark.") {
		t.Fatalf("expected article content in body")
	}
	if !strings.Contains(body, "Related stories") {
		t.Fatalf("expected related section in body")
	}
	if !strings.Contains(body, `"@type":"Article"`) {
		t.Fatalf("expected Article JSON-LD in head; body=%s", body)
	}
}

func TestBlogDetailNotFound(t *testing.T) {
	srv := newTestRouter(t)
	rec := get(t, srv, "/blogs/missing-post")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
