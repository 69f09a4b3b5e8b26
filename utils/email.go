package utils

import (
	"context"
	"fmt"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	FromName string
}

func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.Port != "" && c.Username != "" && c.Password != ""
}

// BookingEmailData is the flat payload of a booking confirmation.
type BookingEmailData struct {
	GuestName        string
	GuestEmail       string
	GuestPhone       string
	RoomName         string
	CheckIn          string
	CheckOut         string
	Nights           int
	Guests           int
	RoomCount        int
	Subtotal         string
	Discount         string
	Total            string
	BookingReference string
	SpecialRequests  string
}

func (d BookingEmailData) Fields() map[string]string {
	requests := strings.TrimSpace(d.SpecialRequests)
	if requests == "" {
		requests = "None"
	}
	return map[string]string{
		"guest_name":        d.GuestName,
		"guest_email":       d.GuestEmail,
		"guest_phone":       d.GuestPhone,
		"room_name":         d.RoomName,
		"check_in":          d.CheckIn,
		"check_out":         d.CheckOut,
		"nights":            strconv.Itoa(d.Nights),
		"guests":            strconv.Itoa(d.Guests),
		"room_count":        strconv.Itoa(d.RoomCount),
		"subtotal":          d.Subtotal,
		"discount":          d.Discount,
		"total":             d.Total,
		"booking_reference": d.BookingReference,
		"special_requests":  requests,
		"to_email":          d.GuestEmail,
	}
}

// StatusEmailData is sent when a booking changes status.
type StatusEmailData struct {
	GuestName  string
	GuestEmail string
	BookingID  string
	Status     string
	RoomName   string
	CheckIn    string
	CheckOut   string
	Total      string
}

func (d StatusEmailData) Fields() map[string]string {
	return map[string]string{
		"guest_name":     d.GuestName,
		"guest_email":    d.GuestEmail,
		"booking_id":     d.BookingID,
		"booking_status": d.Status,
		"room_name":      d.RoomName,
		"check_in":       d.CheckIn,
		"check_out":      d.CheckOut,
		"total":          d.Total,
		"to_email":       d.GuestEmail,
	}
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer delivers transactional email over SMTP. Without SMTP settings it logs the
// payload and reports success so callers are never blocked.
type Mailer struct {
	cfg  SMTPConfig
	send sendFunc
}

func NewMailer(cfg SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg, send: smtp.SendMail}
}

func (m *Mailer) Configured() bool { return m.cfg.Configured() }

func (m *Mailer) SendBookingConfirmation(ctx context.Context, data BookingEmailData) error {
	subject := fmt.Sprintf("Booking Confirmation - %s", data.BookingReference)
	plain := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Thank you for booking with us! Here are your booking details:\n\n"+
			"Booking Reference: %s\n"+
			"Room: %s x %d\n"+
			"Check-In: %s\n"+
			"Check-Out: %s\n"+
			"Nights: %d\n"+
			"Guests: %d\n"+
			"Subtotal: %s\n"+
			"Discount: %s\n"+
			"Total: %s\n"+
			"Special Requests: %s\n\n"+
			"We look forward to welcoming you.\n",
		data.GuestName, data.BookingReference, data.RoomName, data.RoomCount,
		data.CheckIn, data.CheckOut, data.Nights, data.Guests,
		data.Subtotal, data.Discount, data.Total, data.Fields()["special_requests"],
	)
	return m.deliver(ctx, "booking_confirmation", data.GuestEmail, subject, plain, data.Fields())
}

func (m *Mailer) SendBookingStatusUpdate(ctx context.Context, data StatusEmailData) error {
	subject := fmt.Sprintf("Your booking is now %s", data.Status)
	plain := fmt.Sprintf(
		"Dear %s,\n\n"+
			"The status of your booking %s has been updated to: %s\n\n"+
			"Room: %s\n"+
			"Check-In: %s\n"+
			"Check-Out: %s\n"+
			"Total: %s\n",
		data.GuestName, data.BookingID, data.Status,
		data.RoomName, data.CheckIn, data.CheckOut, data.Total,
	)
	return m.deliver(ctx, "booking_status", data.GuestEmail, subject, plain, data.Fields())
}

func (m *Mailer) SendPasswordReset(ctx context.Context, email, name, link string) error {
	plain := fmt.Sprintf(
		"Hi %s,\n\n"+
			"We received a request to reset your password. Use the link below within the next hour:\n%s\n\n"+
			"If you did not ask for this, you can ignore this email.\n",
		name, link,
	)
	fields := map[string]string{"to_email": email, "reset_link": link}
	return m.deliver(ctx, "password_reset", email, "Reset your password", plain, fields)
}

func (m *Mailer) deliver(ctx context.Context, kind, to, subject, plain string, fields map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !m.cfg.Configured() {
		logrus.WithFields(logFields(kind, fields)).Info("[MOCK EMAIL] smtp not configured")
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}

	from := fmt.Sprintf("%s <%s>", safe(m.cfg.FromName), m.cfg.Username)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", safe(to)))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", safe(subject)))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plain + "\r\n")

	if err := m.send(addr, auth, m.cfg.Username, []string{to}, []byte(sb.String())); err != nil {
		logrus.WithError(err).WithField("to", MaskEmail(to)).Errorf("failed to send %s email", kind)
		return fmt.Errorf("send %s email: %w", kind, err)
	}

	logrus.WithField("to", MaskEmail(to)).Infof("%s email sent", kind)
	return nil
}

func logFields(kind string, fields map[string]string) logrus.Fields {
	out := logrus.Fields{"email": kind}
	for k, v := range fields {
		out[k] = v
	}
	return out
}
