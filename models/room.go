package models

type RoomImage struct {
	Name    string `json:"name"`
	Size    int64  `json:"size"`
	Type    string `json:"type"`
	DataURL string `json:"dataUrl"`
}

type Room struct {
	ID          string      `json:"id"`
	Name        string      `json:"name" binding:"required"`
	Type        string      `json:"type"`
	Price       float64     `json:"price" binding:"gte=0"`
	Capacity    int         `json:"capacity" binding:"gte=0"`
	Amenities   []string    `json:"amenities"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Available   bool        `json:"available"`
	Size        string      `json:"size,omitempty"`
	Images      []RoomImage `json:"images,omitempty"`
}

// RoomPatch is applied by admins when editing a room.
type RoomPatch struct {
	Name        *string      `json:"name,omitempty"`
	Type        *string      `json:"type,omitempty"`
	Price       *float64     `json:"price,omitempty" binding:"omitempty,gte=0"`
	Capacity    *int         `json:"capacity,omitempty" binding:"omitempty,gte=0"`
	Amenities   []string     `json:"amenities,omitempty"`
	Description *string      `json:"description,omitempty"`
	Image       *string      `json:"image,omitempty"`
	Available   *bool        `json:"available,omitempty"`
	Size        *string      `json:"size,omitempty"`
	Images      *[]RoomImage `json:"images,omitempty"`
}

func (p RoomPatch) Apply(r *Room) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Price != nil {
		r.Price = *p.Price
	}
	if p.Capacity != nil {
		r.Capacity = *p.Capacity
	}
	if p.Amenities != nil {
		r.Amenities = p.Amenities
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Image != nil {
		r.Image = *p.Image
	}
	if p.Available != nil {
		r.Available = *p.Available
	}
	if p.Size != nil {
		r.Size = *p.Size
	}
	if p.Images != nil {
		r.Images = *p.Images
	}
}
