package models

import "time"

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// ValidBookingStatus reports whether s is one of the four booking states.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

type GuestDetails struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

func (g GuestDetails) FullName() string {
	if g.LastName == "" {
		return g.FirstName
	}
	return g.FirstName + " " + g.LastName
}

type Booking struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Reference string `json:"reference,omitempty"`

	RoomType  string    `json:"roomType"`
	RoomName  string    `json:"roomName"`
	CheckIn   time.Time `json:"checkIn"`
	CheckOut  time.Time `json:"checkOut"`
	Guests    int       `json:"guests"`
	RoomCount int       `json:"roomCount,omitempty"`

	Subtotal   float64 `json:"subtotal,omitempty"`
	Discount   float64 `json:"discount,omitempty"`
	PromoCode  string  `json:"promoCode,omitempty"`
	TotalPrice float64 `json:"totalPrice"`

	Status       string       `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	GuestDetails GuestDetails `json:"guestDetails"`
}

// BookingPatch is a shallow merge; nil fields are left untouched.
type BookingPatch struct {
	Status       *string       `json:"status,omitempty" binding:"omitempty,bookingstatus"`
	CheckIn      *time.Time    `json:"checkIn,omitempty"`
	CheckOut     *time.Time    `json:"checkOut,omitempty"`
	Guests       *int          `json:"guests,omitempty"`
	TotalPrice   *float64      `json:"totalPrice,omitempty"`
	GuestDetails *GuestDetails `json:"guestDetails,omitempty"`
}

func (p BookingPatch) Apply(b *Booking) {
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.CheckIn != nil {
		b.CheckIn = *p.CheckIn
	}
	if p.CheckOut != nil {
		b.CheckOut = *p.CheckOut
	}
	if p.Guests != nil {
		b.Guests = *p.Guests
	}
	if p.TotalPrice != nil {
		b.TotalPrice = *p.TotalPrice
	}
	if p.GuestDetails != nil {
		b.GuestDetails = *p.GuestDetails
	}
}
