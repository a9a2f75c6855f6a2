package cms

import (
	"encoding/json"
	"testing"
)

func TestDecodeDispatchesKnownTypes(t *testing.T) {
	cases := []struct {
		pageType PageType
		payload  string
		check    func(t *testing.T, data PageData)
	}{
		{
			pageType: PageTypeContent,
			payload:  `{"slug":"ride","title":"Ride with us","have_card":true}`,
			check: func(t *testing.T, data PageData) {
				d, ok := data.(PageContentData)
				if !ok {
					t.Fatalf("expected PageContentData, got %T", data)
				}
				if d.Slug != "ride" || !d.HaveCard {
					t.Fatalf("unexpected payload: %+v", d)
				}
			},
		},
		{
			pageType: PageTypeHomepageCategory,
			payload:  `{"title":"Courier","description":"<p>Fast deliveries</p>"}`,
			check: func(t *testing.T, data PageData) {
				d, ok := data.(HomepageCategorySectionData)
				if !ok {
					t.Fatalf("expected HomepageCategorySectionData, got %T", data)
				}
				if d.Title != "Courier" {
					t.Fatalf("unexpected payload: %+v", d)
				}
			},
		},
		{
			pageType: PageTypeBlogsLanding,
			payload:  `{"categories":[{"id":"c1","name":"Safety"}],"blogs":{"count":1,"results":[{"slug":"first"}]}}`,
			check: func(t *testing.T, data PageData) {
				d, ok := data.(BlogsLandingData)
				if !ok {
					t.Fatalf("expected BlogsLandingData, got %T", data)
				}
				if len(d.Categories) != 1 || len(d.Blogs.Results) != 1 {
					t.Fatalf("unexpected payload: %+v", d)
				}
			},
		},
		{
			pageType: PageTypeCrut,
			payload:  `{"page_title":"Terms","crut_contents":[{"title":"Scope","content":"<p>x</p>"}]}`,
			check: func(t *testing.T, data PageData) {
				d, ok := data.(CrutPageData)
				if !ok {
					t.Fatalf("expected CrutPageData, got %T", data)
				}
				if d.PageTitle != "Terms" || len(d.CrutContents) != 1 {
					t.Fatalf("unexpected payload: %+v", d)
				}
			},
		},
		{
			pageType: PageTypeCareer,
			payload:  `{"title":"Join us","position":"Driver","location":"Berlin"}`,
			check: func(t *testing.T, data PageData) {
				d, ok := data.(CareerPageData)
				if !ok {
					t.Fatalf("expected CareerPageData, got %T", data)
				}
				if d.Position != "Driver" {
					t.Fatalf("unexpected payload: %+v", d)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(string(tc.pageType), func(t *testing.T) {
			env := Envelope{PageType: tc.pageType, Data: json.RawMessage(tc.payload)}
			data, err := env.Decode()
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			tc.check(t, data)
		})
	}
}

func TestDecodeUnknownTypeIsNotAnError(t *testing.T) {
	env := Envelope{PageType: "promo_page_v2", Data: json.RawMessage(`{"anything":true}`)}
	data, err := env.Decode()
	if err != nil {
		t.Fatalf("unknown page type must not error, got %v", err)
	}
	u, ok := data.(UnknownPage)
	if !ok {
		t.Fatalf("expected UnknownPage, got %T", data)
	}
	if u.PageType != "promo_page_v2" {
		t.Fatalf("expected tag preserved, got %q", u.PageType)
	}
}

func TestDecodeEmptyTagIsUnknown(t *testing.T) {
	env := Envelope{Data: json.RawMessage(`{}`)}
	data, err := env.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := data.(UnknownPage); !ok {
		t.Fatalf("expected UnknownPage for empty tag, got %T", data)
	}
}

func TestDecodeMalformedPayloadForKnownTag(t *testing.T) {
	env := Envelope{PageType: PageTypeContent, Data: json.RawMessage(`{"slug":42}`)}
	if _, err := env.Decode(); err == nil {
		t.Fatal("expected error for malformed page_content payload")
	}

	// The same garbage under an unknown tag stays raw and succeeds.
	env = Envelope{PageType: "mystery", Data: json.RawMessage(`{"slug":42}`)}
	if _, err := env.Decode(); err != nil {
		t.Fatalf("unknown tag must ignore payload shape, got %v", err)
	}
}

func TestEnvelopeUnmarshalKeepsDataRaw(t *testing.T) {
	raw := `{"page_type":"career_page","data":{"title":"Ops Lead","location":"Accra"}}`
	var env Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if env.PageType != PageTypeCareer {
		t.Fatalf("expected career_page, got %q", env.PageType)
	}
	data, err := env.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	d := data.(CareerPageData)
	if d.Location != "Accra" {
		t.Fatalf("unexpected payload: %+v", d)
	}
}
