// Package pricing computes stay length, subtotals and promo-code discounts for a booking.
package pricing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFreeNight  DiscountType = "free_night"
)

// Condition decides whether a promo applies to a stay. now is the evaluation time.
type Condition func(checkIn, checkOut time.Time, nights int, now time.Time) bool

type PromoCode struct {
	Code          string       `json:"code"`
	Name          string       `json:"name"`
	DiscountType  DiscountType `json:"discountType"`
	DiscountValue int64        `json:"discountValue"`
	Condition     Condition    `json:"-"`
	ErrorMessage  string       `json:"errorMessage"`
}

var promoCodes = []PromoCode{
	{
		Code:          "EARLY20",
		Name:          "Early Bird Special",
		DiscountType:  DiscountPercentage,
		DiscountValue: 20,
		Condition: func(checkIn, _ time.Time, _ int, now time.Time) bool {
			return wholeDaysBetween(now, checkIn) >= 14
		},
		ErrorMessage: "This code requires booking at least 14 days in advance.",
	},
	{
		Code:          "STAY3PAY2",
		Name:          "Stay 3, Pay 2",
		DiscountType:  DiscountFreeNight,
		DiscountValue: 1,
		Condition: func(_, _ time.Time, nights int, _ time.Time) bool {
			return nights >= 3
		},
		ErrorMessage: "This code requires a minimum stay of 3 nights.",
	},
	{
		Code:          "WEEKEND15",
		Name:          "Weekend Getaway",
		DiscountType:  DiscountPercentage,
		DiscountValue: 15,
		Condition: func(checkIn, _ time.Time, _ int, _ time.Time) bool {
			switch checkIn.Weekday() {
			case time.Friday, time.Saturday, time.Sunday:
				return true
			}
			return false
		},
		ErrorMessage: "This code is only valid for Friday-Sunday check-ins.",
	},
}

// PromoCodes returns a copy of the promo table.
func PromoCodes() []PromoCode {
	out := make([]PromoCode, len(promoCodes))
	copy(out, promoCodes)
	return out
}

// LookupPromo finds a promo by code after trimming and upper-casing it.
func LookupPromo(code string) (PromoCode, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for _, p := range promoCodes {
		if p.Code == normalized {
			return p, true
		}
	}
	return PromoCode{}, false
}

type ErrorKind string

const (
	EmptyCode    ErrorKind = "empty_code"
	MissingDates ErrorKind = "missing_dates"
	UnknownCode  ErrorKind = "unknown_code"
	Ineligible   ErrorKind = "ineligible"
)

// PromoError is returned when a promo code cannot be applied. Message is safe to show to guests.
type PromoError struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *PromoError) Error() string { return e.Message }

// Result is a successfully applied promo.
type Result struct {
	Promo    PromoCode       `json:"promo"`
	Discount decimal.Decimal `json:"discount"`
}

// Evaluator validates promo codes against an injectable clock.
type Evaluator struct {
	Now func() time.Time
}

func NewEvaluator() Evaluator {
	return Evaluator{Now: time.Now}
}

func (e Evaluator) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// ValidatePromoCode checks code against the stay and returns the discount it grants.
// The discount is not capped here; Quote caps it at the subtotal.
func (e Evaluator) ValidatePromoCode(code string, checkIn, checkOut *time.Time, nights int, roomPrice decimal.Decimal, roomCount int) (Result, error) {
	if strings.TrimSpace(code) == "" {
		return Result{}, &PromoError{Kind: EmptyCode, Message: "Please enter a promo code."}
	}
	if checkIn == nil || checkOut == nil {
		return Result{}, &PromoError{Kind: MissingDates, Message: "Please select check-in and check-out dates first."}
	}

	promo, ok := LookupPromo(code)
	if !ok {
		return Result{}, &PromoError{Kind: UnknownCode, Code: strings.ToUpper(strings.TrimSpace(code)), Message: "Invalid promo code."}
	}
	if !promo.Condition(*checkIn, *checkOut, nights, e.now()) {
		return Result{}, &PromoError{Kind: Ineligible, Code: promo.Code, Message: promo.ErrorMessage}
	}

	var discount decimal.Decimal
	switch promo.DiscountType {
	case DiscountPercentage:
		discount = Subtotal(roomPrice, nights, roomCount).
			Mul(decimal.NewFromInt(promo.DiscountValue)).
			Div(decimal.NewFromInt(100))
	case DiscountFreeNight:
		discount = roomPrice.
			Mul(decimal.NewFromInt(promo.DiscountValue)).
			Mul(decimal.NewFromInt(int64(roomCount)))
	default:
		discount = decimal.Zero
	}
	return Result{Promo: promo, Discount: discount}, nil
}

// ValidatePromoCode evaluates against the wall clock.
func ValidatePromoCode(code string, checkIn, checkOut *time.Time, nights int, roomPrice decimal.Decimal, roomCount int) (Result, error) {
	return NewEvaluator().ValidatePromoCode(code, checkIn, checkOut, nights, roomPrice, roomCount)
}

// wholeDaysBetween counts full 24h periods from a to b, truncated toward zero.
func wholeDaysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
