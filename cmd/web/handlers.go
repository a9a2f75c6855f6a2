package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ridemio.org/ridemio-web/internal/cms"
	"ridemio.org/ridemio-web/internal/handlers"
	"ridemio.org/ridemio-web/internal/nav"
	"ridemio.org/ridemio-web/internal/pagebuilder"
	"ridemio.org/ridemio-web/internal/platform"
	"ridemio.org/ridemio-web/internal/seo"
)

// renderContext assembles the request-scoped inputs the page views need.
func renderContext(r *http.Request) pagebuilder.Context {
	return pagebuilder.Context{
		Platform:  platform.Detect(r.UserAgent()),
		UserApp:   cfg.UserApp,
		DriverApp: cfg.DriverApp,
	}
}

// layoutNav and layoutFooter fetch the shared chrome. Each fetch fails
// independently: a broken navigation endpoint degrades the header, it does
// not take the page down.
func layoutNav(r *http.Request) []nav.Group {
	groups, err := cmsClient.Navigation(r.Context())
	if err != nil {
		log.Printf("navigation fetch: %v", err)
		return nil
	}
	return nav.Build(groups, r.URL.Path)
}

func layoutFooter(r *http.Request) *cms.FooterData {
	footer, err := cmsClient.Footer(r.Context())
	if err != nil {
		log.Printf("footer fetch: %v", err)
		return nil
	}
	return &footer
}

func renderPage(w http.ResponseWriter, r *http.Request, page pagebuilder.Page, description string) {
	data := handlers.PageData{
		Title:  page.Title,
		SEO:    seo.ForPage(cfg.SiteURL, r.URL.Path, page.Title, description),
		Path:   r.URL.Path,
		Nav:    layoutNav(r),
		Footer: layoutFooter(r),
		Body:   page.Body,
	}
	render(w, http.StatusOK, "base", data)
}

// HomeHandler renders the landing page with the Organization schema.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	home, err := cmsClient.Homepage(r.Context())
	if err != nil {
		serverError(w, r, "homepage fetch", err)
		return
	}
	page := pagebuilder.Home(home, renderContext(r))
	data := handlers.PageData{
		Title:  page.Title,
		SEO:    seo.ForPage(cfg.SiteURL, r.URL.Path, page.Title, "Ridemio - rides and deliveries, one tap away"),
		Path:   r.URL.Path,
		Nav:    layoutNav(r),
		Footer: layoutFooter(r),
		Body:   page.Body,
	}
	data.SEO.JSONLD = append(data.SEO.JSONLD, seo.JSON(seo.Organization("Ridemio", cfg.SiteURL, "")))
	render(w, http.StatusOK, "base", data)
}

// SlugPageHandler resolves a CMS slug through the page envelope pipeline.
// 404 from the API means "no such page": local markdown is consulted before
// giving up, so legal pages survive CMS outages. Any other failure is fatal
// for the request.
func SlugPageHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	env, err := cmsClient.ResolvePage(r.Context(), slug)
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			if local, lerr := cmsClient.LocalContentPage(slug); lerr == nil {
				renderPage(w, r, pagebuilder.ContentFallbackView(local), local.Summary)
				return
			}
			NotFoundHandler(w, r)
			return
		}
		serverError(w, r, "page resolve", err)
		return
	}

	page, err := pagebuilder.Render(env, renderContext(r))
	if err != nil {
		serverError(w, r, "page render", err)
		return
	}
	renderPage(w, r, page, "")
}

// BlogsHandler renders the blog landing page, optionally filtered by
// category. Selecting a category always restarts at page one.
func BlogsHandler(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	data, err := cmsClient.ListBlogs(r.Context(), cms.ListBlogsOptions{Category: category})
	if err != nil {
		serverError(w, r, "blogs fetch", err)
		return
	}
	page := pagebuilder.BlogsLanding(data, category)
	renderPage(w, r, page, "Stories from the Ridemio community")
}

// BlogsFragmentHandler serves one additional listing page as a bare card
// fragment for the load-more control. The response carries the next page
// number (or nothing when exhausted) in X-Next-Page; the client appends the
// cards to the grid it already has.
func BlogsFragmentHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pageNum, _ := strconv.Atoi(q.Get("page"))
	if pageNum < 1 {
		pageNum = 1
	}
	data, err := cmsClient.ListBlogs(r.Context(), cms.ListBlogsOptions{
		Page:     pageNum,
		Category: q.Get("category"),
	})
	if err != nil {
		log.Printf("blogs fragment fetch: %v", err)
		http.Error(w, "failed to load blogs", http.StatusBadGateway)
		return
	}

	if next := cms.PageFromURL(data.Blogs.Next); next > 0 {
		w.Header().Set("X-Next-Page", strconv.Itoa(next))
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(pagebuilder.BlogGrid(data.Blogs.Results)))
}

// BlogDetailHandler renders a single article with related posts.
func BlogDetailHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	detail, err := cmsClient.GetBlog(r.Context(), slug)
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			NotFoundHandler(w, r)
			return
		}
		serverError(w, r, "blog fetch", err)
		return
	}

	page := pagebuilder.BlogDetailView(detail)
	data := handlers.PageData{
		Title:  page.Title,
		SEO:    seo.ForPage(cfg.SiteURL, r.URL.Path, page.Title, ""),
		Path:   r.URL.Path,
		Nav:    layoutNav(r),
		Footer: layoutFooter(r),
		Body:   page.Body,
	}
	data.SEO.JSONLD = append(data.SEO.JSONLD, seo.JSON(seo.Article(
		detail.Blog.Title,
		data.SEO.Canonical,
		detail.Blog.CoverImage,
		detail.Blog.Author,
		detail.Blog.PublishedDate,
	)))
	render(w, http.StatusOK, "base", data)
}

// NotFoundHandler renders the standard not-found page.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	data := handlers.ErrorData{
		Title:   "Page not found",
		Message: "The page you are looking for does not exist or has moved.",
		Nav:     layoutNav(r),
		Footer:  layoutFooter(r),
	}
	render(w, http.StatusNotFound, "notfound", data)
}

// serverError logs the failure and renders the generic failure page. The
// user sees a readable message, never the underlying error.
func serverError(w http.ResponseWriter, r *http.Request, what string, err error) {
	log.Printf("%s: %v", what, err)
	data := handlers.ErrorData{
		Title:   "Something went wrong",
		Message: "We could not load this page. Please try again in a moment.",
		Nav:     layoutNav(r),
		Footer:  layoutFooter(r),
	}
	render(w, http.StatusInternalServerError, "error", data)
}
