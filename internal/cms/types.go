package cms

// Image is the minimal shape the views need from CMS-managed media.
type Image struct {
	URL string `json:"url"`
}

// UploadedFile mirrors the admin upload records attached to homepage content.
type UploadedFile struct {
	ID       string `json:"id"`
	File     string `json:"file"`
	FileType string `json:"file_type"`
}

// CardContent is a single entry of a card section.
type CardContent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CardDetails describes a card section. The button/URL keys are camelCase on
// the wire while every other details object is snake_case; that asymmetry is
// the backend's, not ours.
type CardDetails struct {
	Title        string        `json:"title"`
	HaveButton   bool          `json:"haveButton"`
	ButtonLabel  string        `json:"buttonLabel"`
	IOSURL       string        `json:"iosURL"`
	AndroidURL   string        `json:"androidURL"`
	CardContents []CardContent `json:"card_contents"`
}

// ListContent is a single entry of a list section.
type ListContent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ListDetails describes a list section with an optional companion image.
type ListDetails struct {
	Title        string        `json:"title"`
	HaveButton   bool          `json:"haveButton"`
	ButtonLabel  string        `json:"buttonLabel"`
	IOSURL       string        `json:"iosURL"`
	AndroidURL   string        `json:"androidURL"`
	Image        *Image        `json:"image"`
	ListContents []ListContent `json:"list_contents"`
}

// GridContent is a single entry of a grid section.
type GridContent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GridDetails describes a grid section.
type GridDetails struct {
	Title        string        `json:"title"`
	GridContents []GridContent `json:"grid_contents"`
}

// AdditionalInfo describes the promotional call-to-action banner.
type AdditionalInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       *Image `json:"image"`
	ButtonLabel string `json:"button_label"`
	AndroidURL  string `json:"android_url"`
	IOSURL      string `json:"ios_url"`
}

// ToggleItem is one accordion entry; Content carries admin-authored HTML.
type ToggleItem struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// YoutubeItem is one video entry of a youtube section.
type YoutubeItem struct {
	Title      string `json:"title"`
	YoutubeURL string `json:"youtube_url"`
}

// ImageCard is one entry of an image-card section.
type ImageCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       *Image `json:"image"`
}

// PageContentData is the payload of a page_content envelope.
type PageContentData struct {
	Slug            string `json:"slug"`
	Title           string `json:"title"`
	HaveDescription bool   `json:"have_description"`
	Description     string `json:"description"`
	HaveImage       bool   `json:"have_image"`
	Image           *Image `json:"image"`
	HaveCoverPage   bool   `json:"have_cover_page"`
	CoverPage       *Image `json:"cover_page"`

	HaveYoutubeContent        bool          `json:"have_youtube_content"`
	YoutubeContentTitle       string        `json:"youtube_content_title"`
	YoutubeContentDescription string        `json:"youtube_content_description"`
	YoutubeContents           []YoutubeItem `json:"youtube_contents"`

	HaveToggleContent        bool         `json:"have_toggle_content"`
	ToggleContentTitle       string       `json:"toggle_content_title"`
	ToggleContentDescription string       `json:"toggle_content_description"`
	ToggleContents           []ToggleItem `json:"toggle_contents"`

	HaveImageCard bool        `json:"have_image_card"`
	ImageCards    []ImageCard `json:"image_cards"`

	HaveCard    bool         `json:"have_card"`
	CardDetails *CardDetails `json:"card_details"`

	HaveList    bool         `json:"have_list"`
	ListDetails *ListDetails `json:"list_details"`

	HaveGrid    bool         `json:"have_grid"`
	GridDetails *GridDetails `json:"grid_details"`

	HaveAdditionalInfo    bool            `json:"have_additional_info"`
	AdditionalInfoDetails *AdditionalInfo `json:"additional_info_details"`
}

// HomepageCategorySectionData is the payload of a homepage_category_section
// envelope: a category deep-dive page built from the shared section models.
type HomepageCategorySectionData struct {
	Title       string `json:"title"`
	Description string `json:"description"`

	HaveCard    bool         `json:"have_card"`
	CardDetails *CardDetails `json:"card_details"`

	HaveList    bool         `json:"have_list"`
	ListDetails *ListDetails `json:"list_details"`

	HaveGrid    bool         `json:"have_grid"`
	GridDetails *GridDetails `json:"grid_details"`

	HaveAdditionalInfo    bool            `json:"have_additional_info"`
	AdditionalInfoDetails *AdditionalInfo `json:"additional_info_details"`
}

// Category identifies a blog category.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Blog is a blog card as returned by the listing endpoint.
type Blog struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Author        string   `json:"author"`
	PublishedDate string   `json:"published_date"`
	Category      Category `json:"category"`
	CoverImage    string   `json:"cover_image"`
}

// BlogsPaginated follows the API's {count, next, previous, results}
// convention. Next and Previous are full URLs.
type BlogsPaginated struct {
	Count    int    `json:"count"`
	Next     string `json:"next"`
	Previous string `json:"previous"`
	Results  []Blog `json:"results"`
}

// BlogsLandingData is the payload of a blogs_landing envelope.
type BlogsLandingData struct {
	Categories []Category     `json:"categories"`
	Blogs      BlogsPaginated `json:"blogs"`
}

// BlogPost is the full article shape returned by the detail endpoint.
type BlogPost struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Content       string   `json:"content"`
	Author        string   `json:"author"`
	PublishedDate string   `json:"published_date"`
	Category      Category `json:"category"`
	CoverImage    string   `json:"cover_image"`
}

// BlogDetail bundles an article with its related posts.
type BlogDetail struct {
	Blog    BlogPost `json:"blog"`
	Related []Blog   `json:"related"`
}

// CrutContent is one block of a crut page.
type CrutContent struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CrutPageData is the payload of a crut_page envelope: long-form content
// split into blocks navigated by a scroll-spy sidebar.
type CrutPageData struct {
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	PageTitle    string        `json:"page_title"`
	CrutContents []CrutContent `json:"crut_contents"`
}

// CareerPageData is the payload of a career_page envelope.
type CareerPageData struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Position       string `json:"position"`
	Location       string `json:"location"`
	EmploymentType string `json:"employment_type"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Image          *Image `json:"image"`
}

// NavGroup is one top-level navigation entry from the navigation endpoint.
type NavGroup struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Submenus []NavSubmenu `json:"submenus"`
}

// NavSubmenu is a child link of a navigation group.
type NavSubmenu struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// SocialLinks is the footer's social/platform link block. Each platform is a
// have_X flag paired with an X_url, matching the section gating discipline.
type SocialLinks struct {
	HaveFacebook  bool   `json:"have_facebook"`
	FacebookURL   string `json:"facebook_url"`
	HaveTwitter   bool   `json:"have_twitter"`
	TwitterURL    string `json:"twitter_url"`
	HaveInstagram bool   `json:"have_instagram"`
	InstagramURL  string `json:"instagram_url"`
	HaveLinkedin  bool   `json:"have_linkedin"`
	LinkedinURL   string `json:"linkedin_url"`
	HaveYoutube   bool   `json:"have_youtube"`
	YoutubeURL    string `json:"youtube_url"`

	UserAppPlaystore   string `json:"user_app_playstore"`
	UserAppAppstore    string `json:"user_app_appstore"`
	DriverAppPlaystore string `json:"driver_app_playstore"`
	DriverAppAppstore  string `json:"driver_app_appstore"`
}

// FooterLink is a single footer link.
type FooterLink struct {
	Label string `json:"label"`
	Slug  string `json:"slug"`
}

// FooterGroup is a titled column of footer links.
type FooterGroup struct {
	Name        string       `json:"name"`
	FooterLinks []FooterLink `json:"footer_links"`
}

// FooterRow is a bottom-row footer entry.
type FooterRow struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// FooterData is the payload of the footer endpoint.
type FooterData struct {
	SocialLinks  SocialLinks   `json:"social_links"`
	FooterGroups []FooterGroup `json:"footer_groups"`
	FooterRows   []FooterRow   `json:"footer_rows"`
}

// Banner is a hero carousel slide.
type Banner struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Tagline  string `json:"tagline"`
	ImageURL string `json:"image_url"`
	IsActive bool   `json:"is_active"`
}

// HomepageCategory is a category card on the landing page linking to its
// slug page.
type HomepageCategory struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Icon        *UploadedFile `json:"icon"`
	Slug        string        `json:"slug"`
	IsActive    bool          `json:"is_active"`
}

// AdFeatureItem is one tile of an ad-feature section.
type AdFeatureItem struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Icon            *UploadedFile `json:"icon"`
	ButtonLabel     string        `json:"button_label"`
	ButtonURL       string        `json:"button_url"`
	BackgroundColor string        `json:"background_color"`
	IsActive        bool          `json:"is_active"`
}

// AdFeatureSection is a styled feature strip on the landing page.
type AdFeatureSection struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	TextColor       string          `json:"text_color"`
	BackgroundColor string          `json:"background_color"`
	IsActive        bool            `json:"is_active"`
	Items           []AdFeatureItem `json:"items"`
}

// HomepageData is the landing page composition envelope.
type HomepageData struct {
	Banners                  []Banner           `json:"banners"`
	HomepageCategorySections []HomepageCategory `json:"homepage_category_sections"`
	AdFeatureSections        []AdFeatureSection `json:"ad_feature_sections"`
}
