package services

import "errors"

// Messages mirror what guests see in the UI.
var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrEmailTaken         = errors.New("Email already registered")
	ErrUnauthenticated    = errors.New("Sign in required")
	ErrSessionExpired     = errors.New("Session expired, please sign in again")
	ErrUserNotFound       = errors.New("User not found.")
	ErrInvalidResetToken  = errors.New("Invalid or expired reset token.")
	ErrResetTokenExpired  = errors.New("Reset token has expired.")
	ErrPasswordTooLong    = errors.New("Password must be at most 72 bytes")

	ErrBookingNotFound        = errors.New("Booking not found")
	ErrAlreadyCancelled       = errors.New("Booking is already cancelled")
	ErrInvalidStatus          = errors.New("Invalid booking status")
	ErrIncompleteGuestDetails = errors.New("Please fill in all required guest details")
	ErrBookingsDisabled       = errors.New("Online bookings are currently disabled")

	ErrRoomNotFound     = errors.New("Room not found")
	ErrRoomExists       = errors.New("A room with this id already exists")
	ErrRoomNameRequired = errors.New("Room name or type must contain letters or digits")

	ErrMessageNotFound = errors.New("Message not found")
	ErrEmptyMessage    = errors.New("Message content is required")

	ErrImageNotFound = errors.New("Image not found")

	ErrReviewNotFound      = errors.New("Review not found")
	ErrCommentRequired     = errors.New("Comment is required")
	ErrRatingRequired      = errors.New("Rating is required")
	ErrReviewsDisabled     = errors.New("Reviews are currently disabled")
	ErrInvalidReviewStatus = errors.New("Invalid review status")
)
