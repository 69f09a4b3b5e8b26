package models

import "time"

const (
	ReviewPublished = "published"
	ReviewPending   = "pending"
	ReviewHidden    = "hidden"

	RoomReviewPending  = "pending"
	RoomReviewApproved = "approved"
	RoomReviewRejected = "rejected"
)

// Review is a property-level testimonial managed by admins.
type Review struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Status  string `json:"status"`
}

type ReviewPatch struct {
	Name    *string `json:"name,omitempty"`
	Date    *string `json:"date,omitempty"`
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
	Status  *string `json:"status,omitempty" binding:"omitempty,oneof=published pending hidden"`
}

// RoomReview is written by a signed-in guest about one room.
type RoomReview struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"roomId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	Status    string    `json:"status,omitempty"`
}

// ReviewSummary backs the rating breakdown on the public reviews page.
type ReviewSummary struct {
	Count     int         `json:"count"`
	Average   float64     `json:"average"`
	Breakdown map[int]int `json:"breakdown"`
}
