package models

// HeroSection is the editable banner at the top of a public page.
type HeroSection struct {
	ID              string `json:"id"`
	BackgroundImage string `json:"backgroundImage"`
	Label           string `json:"label"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
}

type HeroPatch struct {
	BackgroundImage *string `json:"backgroundImage,omitempty"`
	Label           *string `json:"label,omitempty"`
	Title           *string `json:"title,omitempty"`
	Subtitle        *string `json:"subtitle,omitempty"`
}

func (p HeroPatch) Apply(h *HeroSection) {
	if p.BackgroundImage != nil {
		h.BackgroundImage = *p.BackgroundImage
	}
	if p.Label != nil {
		h.Label = *p.Label
	}
	if p.Title != nil {
		h.Title = *p.Title
	}
	if p.Subtitle != nil {
		h.Subtitle = *p.Subtitle
	}
}

// PageContent holds free-form copy and image URLs for one page.
type PageContent struct {
	ID      string            `json:"id"`
	Images  map[string]string `json:"images"`
	Content map[string]string `json:"content"`
}

type PageContentPatch struct {
	Images  map[string]string `json:"images,omitempty"`
	Content map[string]string `json:"content,omitempty"`
}
