package domain

// LandingContent is served verbatim from the seed document.
type LandingContent struct {
	Hero     Hero      `json:"hero"`
	Features []Feature `json:"features"`
}

type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTAText  string `json:"ctaText"`
	CTALink  string `json:"ctaLink"`
}

type Feature struct {
	ID          int    `json:"id,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
