package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound is returned when a CMS resource cannot be located (HTTP 404).
// Callers render a standard not-found page for it; anything else is a fatal
// page-load failure.
var ErrNotFound = errors.New("cms: not found")

const defaultTimeout = 5 * time.Second

// Client provides read-only access to the content API.
type Client struct {
	baseURL    string
	contentDir string
	http       *http.Client
}

// NewClient constructs a Client with the provided base URL. When baseURL is
// empty, page resolution falls back to local markdown content only.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// ResolvePage resolves a URL slug to a page envelope.
//
// The literal slug "blogs" is routed to the dedicated listing endpoint
// instead of the generic per-slug endpoint; the backend serves the blog
// landing page only from there. A CMS page whose own slug is "blogs" is
// therefore unreachable.
func (c *Client) ResolvePage(ctx context.Context, slug string) (Envelope, error) {
	slug = strings.Trim(strings.TrimSpace(slug), "/")
	if slug == "" {
		return Envelope{}, ErrNotFound
	}
	if slug == "blogs" {
		return c.blogsEnvelope(ctx, ListBlogsOptions{})
	}

	var env Envelope
	if err := c.getJSON(ctx, nil, &env, "pages", slug); err != nil {
		return Envelope{}, err
	}
	return env, nil
}

// ListBlogsOptions controls blog listing requests. A zero Page means the
// first page; an empty Category means all categories.
type ListBlogsOptions struct {
	Page     int
	Category string
}

// ListBlogs fetches one page of the blog listing.
func (c *Client) ListBlogs(ctx context.Context, opts ListBlogsOptions) (BlogsLandingData, error) {
	env, err := c.blogsEnvelope(ctx, opts)
	if err != nil {
		return BlogsLandingData{}, err
	}
	var data BlogsLandingData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return BlogsLandingData{}, fmt.Errorf("cms: decode blogs listing: %w", err)
	}
	return data, nil
}

func (c *Client) blogsEnvelope(ctx context.Context, opts ListBlogsOptions) (Envelope, error) {
	q := url.Values{}
	if opts.Page > 1 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Category != "" {
		q.Set("category", opts.Category)
	}
	var env Envelope
	if err := c.getJSON(ctx, q, &env, "blogs"); err != nil {
		return Envelope{}, err
	}
	if env.PageType == "" {
		env.PageType = PageTypeBlogsLanding
	}
	return env, nil
}

// GetBlog fetches a single article with its related posts.
func (c *Client) GetBlog(ctx context.Context, slug string) (BlogDetail, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return BlogDetail{}, ErrNotFound
	}
	var detail BlogDetail
	if err := c.getJSON(ctx, nil, &detail, "blogs", slug); err != nil {
		return BlogDetail{}, err
	}
	return detail, nil
}

// Navigation fetches the ordered navigation tree.
func (c *Client) Navigation(ctx context.Context) ([]NavGroup, error) {
	var groups []NavGroup
	if err := c.getJSON(ctx, nil, &groups, "navigation"); err != nil {
		return nil, err
	}
	return groups, nil
}

// Footer fetches the footer composition.
func (c *Client) Footer(ctx context.Context) (FooterData, error) {
	var data FooterData
	if err := c.getJSON(ctx, nil, &data, "footer"); err != nil {
		return FooterData{}, err
	}
	return data, nil
}

// Homepage fetches the landing page composition.
func (c *Client) Homepage(ctx context.Context) (HomepageData, error) {
	var data HomepageData
	if err := c.getJSON(ctx, nil, &data, "landing"); err != nil {
		return HomepageData{}, err
	}
	return data, nil
}

// getJSON issues a GET against baseURL joined with the path segments and
// decodes the JSON body into out. 404 maps to ErrNotFound.
func (c *Client) getJSON(ctx context.Context, query url.Values, out any, segments ...string) error {
	if c == nil || c.baseURL == "" {
		return ErrNotFound
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: defaultTimeout}
	}

	parts := append([]string{c.baseURL}, segments...)
	endpoint, err := url.JoinPath(parts[0], parts[1:]...)
	if err != nil {
		return fmt.Errorf("cms: join path: %w", err)
	}
	// Trailing slash per the backend's routing convention.
	endpoint += "/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("cms: build request: %w", err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cms: request %s: %w", strings.Join(segments, "/"), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("cms: %s status %d: %s", strings.Join(segments, "/"), resp.StatusCode, drainError(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cms: decode %s: %w", strings.Join(segments, "/"), err)
	}
	return nil
}

func drainError(r io.Reader) string {
	if r == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}

// PageFromURL extracts the page number from a pagination URL as returned in
// the listing's next/previous fields. It returns 0 when the URL is empty,
// unparsable, or carries no page parameter.
func PageFromURL(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	u, err := url.Parse(raw)
	if err != nil {
		return 0
	}
	p := u.Query().Get("page")
	if p == "" {
		return 0
	}
	n, err := strconv.Atoi(p)
	if err != nil || n < 1 {
		return 0
	}
	return n
}
