package models

type GalleryImage struct {
	ID         string `json:"id"`
	Category   string `json:"category" binding:"required"`
	Src        string `json:"src" binding:"required"`
	Alt        string `json:"alt"`
	CategoryID string `json:"category_id,omitempty"`
}
