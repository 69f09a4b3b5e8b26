package pricing

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// StayLength is the number of calendar days between check-in and check-out.
// Values <= 0 mean the stay is invalid.
func StayLength(checkIn, checkOut time.Time) int {
	in := dateOnly(checkIn)
	out := dateOnly(checkOut)
	return int(out.Sub(in).Hours() / 24)
}

func Subtotal(price decimal.Decimal, nights, roomCount int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(nights))).Mul(decimal.NewFromInt(int64(roomCount)))
}

// FormatAmount renders an amount with two decimals for display.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type QuoteInput struct {
	RoomPrice decimal.Decimal
	CheckIn   time.Time
	CheckOut  time.Time
	RoomCount int
	PromoCode string
}

type Breakdown struct {
	Nights    int             `json:"nights"`
	RoomCount int             `json:"roomCount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
	Promo     *PromoCode      `json:"promo,omitempty"`
}

var ErrInvalidStay = errors.New("check-out must be after check-in")

// Quote prices a stay. An empty promo code means no discount. The applied discount
// never exceeds the subtotal, so Total is never negative.
func (e Evaluator) Quote(in QuoteInput) (Breakdown, error) {
	nights := StayLength(in.CheckIn, in.CheckOut)
	if nights <= 0 {
		return Breakdown{}, ErrInvalidStay
	}
	if in.RoomCount < 1 {
		in.RoomCount = 1
	}

	b := Breakdown{
		Nights:    nights,
		RoomCount: in.RoomCount,
		Subtotal:  Subtotal(in.RoomPrice, nights, in.RoomCount),
		Discount:  decimal.Zero,
	}

	if in.PromoCode != "" {
		res, err := e.ValidatePromoCode(in.PromoCode, &in.CheckIn, &in.CheckOut, nights, in.RoomPrice, in.RoomCount)
		if err != nil {
			return Breakdown{}, err
		}
		promo := res.Promo
		b.Promo = &promo
		b.Discount = decimal.Min(res.Discount, b.Subtotal)
	}

	b.Total = b.Subtotal.Sub(b.Discount)
	return b, nil
}

func Quote(in QuoteInput) (Breakdown, error) {
	return NewEvaluator().Quote(in)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
