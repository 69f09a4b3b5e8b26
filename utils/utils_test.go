package utils

import (
	"context"
	"errors"
	"net/smtp"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecureToken(t *testing.T) {
	tok, err := GenerateSecureToken(16)
	require.NoError(t, err)
	assert.Len(t, tok, 32)

	other, err := GenerateSecureToken(16)
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)

	_, err = GenerateSecureToken(0)
	assert.Error(t, err)
}

func TestGenerateBookingReference(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	ref, err := GenerateBookingReference(now)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^MH-[0-9A-Z]+-[0-9A-Z]{4}$`), ref)
	assert.True(t, strings.HasPrefix(ref, "MH-LOYW3V28-"), ref)
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j**n@e******.com", MaskEmail("john@example.com"))
	assert.Equal(t, "a*@x.io", MaskEmail("ab@x.io"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}

func TestBuildResetLink(t *testing.T) {
	link := BuildResetLink("https://hotel.test/", "abc", "a+b@x.com")
	assert.Equal(t, "https://hotel.test/reset-password?token=abc&email=a%2Bb%40x.com", link)
}

func TestMailer_UnconfiguredLogsAndSucceeds(t *testing.T) {
	m := NewMailer(SMTPConfig{})
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be called without smtp settings")
		return nil
	}
	err := m.SendBookingConfirmation(context.Background(), BookingEmailData{GuestEmail: "g@x.com", BookingReference: "MH-1-ABCD"})
	assert.NoError(t, err)
}

func TestMailer_SendsConfirmation(t *testing.T) {
	m := NewMailer(SMTPConfig{Host: "smtp.test", Port: "587", Username: "bot@hotel.test", Password: "pw", FromName: "Monipee Hotel"})

	var gotAddr string
	var gotTo []string
	var gotMsg string
	m.send = func(addr string, _ smtp.Auth, _ string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, string(msg)
		return nil
	}

	err := m.SendBookingConfirmation(context.Background(), BookingEmailData{
		GuestName:        "Ama Mensah",
		GuestEmail:       "ama@example.com",
		RoomName:         "Deluxe Room",
		Nights:           2,
		Guests:           2,
		RoomCount:        1,
		Total:            "1100.00",
		BookingReference: "MH-XYZ-1234",
	})
	require.NoError(t, err)
	assert.Equal(t, "smtp.test:587", gotAddr)
	assert.Equal(t, []string{"ama@example.com"}, gotTo)
	assert.Contains(t, gotMsg, "Subject: Booking Confirmation - MH-XYZ-1234")
	assert.Contains(t, gotMsg, "Special Requests: None")
	assert.Contains(t, gotMsg, "Total: 1100.00")
}

func TestMailer_SendFailureIsReturned(t *testing.T) {
	m := NewMailer(SMTPConfig{Host: "h", Port: "25", Username: "u", Password: "p"})
	m.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("connection refused") }

	err := m.SendBookingStatusUpdate(context.Background(), StatusEmailData{GuestEmail: "g@x.com", Status: "confirmed"})
	assert.ErrorContains(t, err, "connection refused")
}

func TestMailer_RespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewMailer(SMTPConfig{}).SendPasswordReset(ctx, "g@x.com", "G", "http://x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBookingEmailFields(t *testing.T) {
	f := BookingEmailData{GuestEmail: "g@x.com", Nights: 3, SpecialRequests: "late arrival"}.Fields()
	assert.Equal(t, "3", f["nights"])
	assert.Equal(t, "late arrival", f["special_requests"])
	assert.Equal(t, "g@x.com", f["to_email"])
}
