package cms

import (
	"encoding/json"
	"fmt"
)

// PageType tags the envelope variants the site knows how to render.
type PageType string

const (
	PageTypeContent          PageType = "page_content"
	PageTypeHomepageCategory PageType = "homepage_category_section"
	PageTypeBlogsLanding     PageType = "blogs_landing"
	PageTypeCrut             PageType = "crut_page"
	PageTypeCareer           PageType = "career_page"
)

// Envelope is the {page_type, data} wrapper returned by the content API for
// any resolvable page. Data's shape is determined entirely by PageType; it
// stays raw until Decode picks the matching variant.
type Envelope struct {
	PageType PageType        `json:"page_type"`
	Data     json.RawMessage `json:"data"`
}

// PageData is the decoded payload of an envelope. Exactly one concrete type
// implements it per page type, plus UnknownPage for tags the site does not
// recognize.
type PageData interface {
	pageData()
}

func (PageContentData) pageData()             {}
func (HomepageCategorySectionData) pageData() {}
func (BlogsLandingData) pageData()            {}
func (CrutPageData) pageData()                {}
func (CareerPageData) pageData()              {}

// UnknownPage marks an envelope whose page_type matched no known variant.
// It is a renderable terminal state, not an error: backend schema drift must
// degrade to an "unknown page type" page instead of failing the request.
type UnknownPage struct {
	PageType string
}

func (UnknownPage) pageData() {}

// Decode maps the envelope to its typed payload. A malformed payload for a
// known tag is an error; an unrecognized tag is not.
func (e Envelope) Decode() (PageData, error) {
	switch e.PageType {
	case PageTypeContent:
		var d PageContentData
		if err := json.Unmarshal(e.Data, &d); err != nil {
			return nil, fmt.Errorf("cms: decode %s: %w", e.PageType, err)
		}
		return d, nil
	case PageTypeHomepageCategory:
		var d HomepageCategorySectionData
		if err := json.Unmarshal(e.Data, &d); err != nil {
			return nil, fmt.Errorf("cms: decode %s: %w", e.PageType, err)
		}
		return d, nil
	case PageTypeBlogsLanding:
		var d BlogsLandingData
		if err := json.Unmarshal(e.Data, &d); err != nil {
			return nil, fmt.Errorf("cms: decode %s: %w", e.PageType, err)
		}
		return d, nil
	case PageTypeCrut:
		var d CrutPageData
		if err := json.Unmarshal(e.Data, &d); err != nil {
			return nil, fmt.Errorf("cms: decode %s: %w", e.PageType, err)
		}
		return d, nil
	case PageTypeCareer:
		var d CareerPageData
		if err := json.Unmarshal(e.Data, &d); err != nil {
			return nil, fmt.Errorf("cms: decode %s: %w", e.PageType, err)
		}
		return d, nil
	default:
		return UnknownPage{PageType: string(e.PageType)}, nil
	}
}
