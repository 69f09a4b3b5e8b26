package services

import (
	"context"

	"monipee-hotel/utils"
)

// Mailer sends transactional email. utils.Mailer is the SMTP implementation.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, data utils.BookingEmailData) error
	SendBookingStatusUpdate(ctx context.Context, data utils.StatusEmailData) error
	SendPasswordReset(ctx context.Context, email, name, link string) error
}
