package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"monipee-hotel/models"
	"monipee-hotel/pricing"
	"monipee-hotel/utils"
)

const (
	dateLayout       = "2006-01-02"
	emailDateLayout  = "January 2, 2006"
	emailSendTimeout = 15 * time.Second
	defaultGuests    = 2
)

var (
	ErrInvalidStay  = pricing.ErrInvalidStay
	ErrInvalidDates = errors.New("Dates must use the YYYY-MM-DD format")
)

var validate = validator.New()

type BookingService struct {
	store    *Store
	rooms    *RoomService
	settings *SettingsService
	mailer   Mailer
	pricing  pricing.Evaluator
}

func NewBookingService(store *Store, rooms *RoomService, settings *SettingsService, mailer Mailer) *BookingService {
	return &BookingService{
		store:    store,
		rooms:    rooms,
		settings: settings,
		mailer:   mailer,
		pricing:  pricing.Evaluator{Now: store.Now},
	}
}

// QuoteRequest carries the booking flow state. The same fields travel in the
// booking page query string, so a bookmarked URL resumes the quote.
type QuoteRequest struct {
	RoomID    string `form:"room" json:"room"`
	CheckIn   string `form:"checkIn" json:"checkIn"`
	CheckOut  string `form:"checkOut" json:"checkOut"`
	Guests    int    `form:"guests" json:"guests" binding:"gte=0"`
	RoomCount int    `form:"roomCount" json:"roomCount" binding:"gte=0"`
	PromoCode string `form:"promo" json:"promo"`
}

type QuoteResult struct {
	Room     models.Room `json:"room"`
	CheckIn  string      `json:"checkIn"`
	CheckOut string      `json:"checkOut"`
	Guests   int         `json:"guests"`
	pricing.Breakdown
}

type CreateBookingRequest struct {
	QuoteRequest
	GuestDetails models.GuestDetails `json:"guestDetails"`
}

// ParseStayDate accepts a calendar date (YYYY-MM-DD) or an RFC 3339 timestamp.
// An empty string yields the zero time.
func ParseStayDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDates
}

func (s *BookingService) ListAll(ctx context.Context) ([]models.Booking, error) {
	bookings, err := readBucket[[]models.Booking](ctx, s.store, keyBookings)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Booking, 0)
	for _, b := range bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (models.Booking, error) {
	bookings, err := s.ListAll(ctx)
	if err != nil {
		return models.Booking{}, err
	}
	for _, b := range bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Booking{}, ErrBookingNotFound
}

// Add stores b with a generated id and creation time.
func (s *BookingService) Add(ctx context.Context, b models.Booking) (models.Booking, error) {
	b.ID = "booking-" + strconv.FormatInt(s.store.nextMillis(), 10)
	b.CreatedAt = s.store.Now()
	if b.Status == "" {
		b.Status = models.BookingPending
	}
	if b.RoomCount < 1 {
		b.RoomCount = 1
	}
	err := updateBucket(ctx, s.store, keyBookings, func(bookings *[]models.Booking) error {
		*bookings = append(*bookings, b)
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

func (s *BookingService) Update(ctx context.Context, id string, patch models.BookingPatch) (models.Booking, error) {
	if patch.Status != nil && !models.ValidBookingStatus(*patch.Status) {
		return models.Booking{}, ErrInvalidStatus
	}
	return s.mutate(ctx, id, func(b *models.Booking) error {
		patch.Apply(b)
		return nil
	})
}

// ValidatePromo checks a promo code against the requested stay without pricing it.
func (s *BookingService) ValidatePromo(ctx context.Context, req QuoteRequest) (pricing.Result, error) {
	room, err := s.rooms.Get(ctx, req.RoomID)
	if err != nil {
		return pricing.Result{}, err
	}
	checkIn, checkOut, err := parseStay(req)
	if err != nil {
		return pricing.Result{}, err
	}
	var in, out *time.Time
	nights := 0
	if !checkIn.IsZero() && !checkOut.IsZero() {
		in, out = &checkIn, &checkOut
		nights = pricing.StayLength(checkIn, checkOut)
		if nights <= 0 {
			return pricing.Result{}, ErrInvalidStay
		}
	}
	return s.pricing.ValidatePromoCode(req.PromoCode, in, out, nights, decimal.NewFromFloat(room.Price), roomCountOrDefault(req.RoomCount))
}

// Quote resolves the room (falling back to the first room), checks the stay
// and applies the promo code if one is given.
func (s *BookingService) Quote(ctx context.Context, req QuoteRequest) (QuoteResult, error) {
	room, err := s.rooms.Get(ctx, req.RoomID)
	if err != nil {
		return QuoteResult{}, err
	}
	checkIn, checkOut, err := parseStay(req)
	if err != nil {
		return QuoteResult{}, err
	}
	if checkIn.IsZero() || checkOut.IsZero() {
		if strings.TrimSpace(req.PromoCode) != "" {
			_, err := s.pricing.ValidatePromoCode(req.PromoCode, nil, nil, 0, decimal.Zero, 1)
			return QuoteResult{}, err
		}
		return QuoteResult{}, ErrInvalidStay
	}

	breakdown, err := s.pricing.Quote(pricing.QuoteInput{
		RoomPrice: decimal.NewFromFloat(room.Price),
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		RoomCount: roomCountOrDefault(req.RoomCount),
		PromoCode: strings.TrimSpace(req.PromoCode),
	})
	if err != nil {
		return QuoteResult{}, err
	}

	guests := req.Guests
	if guests < 1 {
		guests = defaultGuests
	}
	return QuoteResult{
		Room:      room,
		CheckIn:   checkIn.Format(dateLayout),
		CheckOut:  checkOut.Format(dateLayout),
		Guests:    guests,
		Breakdown: breakdown,
	}, nil
}

// CreateBooking prices the stay, stores a pending booking for user and sends the
// confirmation email. Email failures are logged and never fail the booking.
func (s *BookingService) CreateBooking(ctx context.Context, user models.User, req CreateBookingRequest) (models.Booking, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return models.Booking{}, err
	}
	if !settings.EnableBookings {
		return models.Booking{}, ErrBookingsDisabled
	}

	details := trimGuestDetails(req.GuestDetails)
	if err := validate.Struct(details); err != nil {
		return models.Booking{}, ErrIncompleteGuestDetails
	}

	quote, err := s.Quote(ctx, req.QuoteRequest)
	if err != nil {
		return models.Booking{}, err
	}

	ref, err := utils.GenerateBookingReference(s.store.Now())
	if err != nil {
		return models.Booking{}, fmt.Errorf("generate booking reference: %w", err)
	}

	checkIn, _ := time.Parse(dateLayout, quote.CheckIn)
	checkOut, _ := time.Parse(dateLayout, quote.CheckOut)
	booking := models.Booking{
		UserID:       user.ID,
		Reference:    ref,
		RoomType:     quote.Room.Type,
		RoomName:     quote.Room.Name,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Guests:       quote.Guests,
		RoomCount:    quote.RoomCount,
		Subtotal:     quote.Subtotal.InexactFloat64(),
		Discount:     quote.Discount.InexactFloat64(),
		TotalPrice:   quote.Total.InexactFloat64(),
		Status:       models.BookingPending,
		GuestDetails: details,
	}
	if quote.Promo != nil {
		booking.PromoCode = quote.Promo.Code
	}

	booking, err = s.Add(ctx, booking)
	if err != nil {
		return models.Booking{}, err
	}

	logrus.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"reference":  booking.Reference,
		"user_id":    user.ID,
		"room":       quote.Room.ID,
		"nights":     quote.Nights,
		"total":      pricing.FormatAmount(quote.Total),
	}).Info("booking created")

	s.sendConfirmation(ctx, booking, quote)
	return booking, nil
}

// Cancel lets the owner cancel their own booking.
func (s *BookingService) Cancel(ctx context.Context, userID, id string) (models.Booking, error) {
	b, err := s.mutate(ctx, id, func(b *models.Booking) error {
		if b.UserID != userID {
			return ErrBookingNotFound
		}
		if b.Status == models.BookingCancelled {
			return ErrAlreadyCancelled
		}
		b.Status = models.BookingCancelled
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}
	s.sendStatusUpdate(ctx, b)
	return b, nil
}

// SetStatus is the admin transition (confirm, cancel, complete or back to pending).
func (s *BookingService) SetStatus(ctx context.Context, id, status string) (models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return models.Booking{}, ErrInvalidStatus
	}
	b, err := s.mutate(ctx, id, func(b *models.Booking) error {
		b.Status = status
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}
	s.sendStatusUpdate(ctx, b)
	return b, nil
}

func (s *BookingService) mutate(ctx context.Context, id string, fn func(b *models.Booking) error) (models.Booking, error) {
	var updated models.Booking
	err := updateBucket(ctx, s.store, keyBookings, func(bookings *[]models.Booking) error {
		for i := range *bookings {
			if (*bookings)[i].ID == id {
				if err := fn(&(*bookings)[i]); err != nil {
					return err
				}
				updated = (*bookings)[i]
				return nil
			}
		}
		return ErrBookingNotFound
	})
	return updated, err
}

func (s *BookingService) sendConfirmation(ctx context.Context, b models.Booking, q QuoteResult) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), emailSendTimeout)
	defer cancel()

	data := utils.BookingEmailData{
		GuestName:        b.GuestDetails.FullName(),
		GuestEmail:       b.GuestDetails.Email,
		GuestPhone:       b.GuestDetails.Phone,
		RoomName:         b.RoomName,
		CheckIn:          b.CheckIn.Format(emailDateLayout),
		CheckOut:         b.CheckOut.Format(emailDateLayout),
		Nights:           q.Nights,
		Guests:           b.Guests,
		RoomCount:        b.RoomCount,
		Subtotal:         pricing.FormatAmount(q.Subtotal),
		Discount:         pricing.FormatAmount(q.Discount),
		Total:            pricing.FormatAmount(q.Total),
		BookingReference: b.Reference,
		SpecialRequests:  b.GuestDetails.SpecialRequests,
	}
	if err := s.mailer.SendBookingConfirmation(ctx, data); err != nil {
		logrus.WithError(err).WithField("booking_id", b.ID).Warn("booking confirmation email failed")
	}
}

func (s *BookingService) sendStatusUpdate(ctx context.Context, b models.Booking) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), emailSendTimeout)
	defer cancel()

	data := utils.StatusEmailData{
		GuestName:  b.GuestDetails.FullName(),
		GuestEmail: b.GuestDetails.Email,
		BookingID:  b.ID,
		Status:     b.Status,
		RoomName:   b.RoomName,
		CheckIn:    b.CheckIn.Format(emailDateLayout),
		CheckOut:   b.CheckOut.Format(emailDateLayout),
		Total:      pricing.FormatAmount(decimal.NewFromFloat(b.TotalPrice)),
	}
	if err := s.mailer.SendBookingStatusUpdate(ctx, data); err != nil {
		logrus.WithError(err).WithField("booking_id", b.ID).Warn("booking status email failed")
	}
}

func parseStay(req QuoteRequest) (time.Time, time.Time, error) {
	checkIn, err := ParseStayDate(req.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err := ParseStayDate(req.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

func roomCountOrDefault(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func trimGuestDetails(g models.GuestDetails) models.GuestDetails {
	return models.GuestDetails{
		FirstName:       strings.TrimSpace(g.FirstName),
		LastName:        strings.TrimSpace(g.LastName),
		Email:           strings.TrimSpace(g.Email),
		Phone:           strings.TrimSpace(g.Phone),
		SpecialRequests: strings.TrimSpace(g.SpecialRequests),
	}
}
