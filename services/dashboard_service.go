package services

import (
	"context"
	"sort"

	"monipee-hotel/models"
)

const recentBookingsLimit = 5

type DashboardService struct {
	store *Store
}

func NewDashboardService(store *Store) *DashboardService {
	return &DashboardService{store: store}
}

// Stats summarizes bookings, customers and the message inbox for the admin overview.
// Revenue counts every booking that was not cancelled.
func (s *DashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	bookings, err := readBucket[[]models.Booking](ctx, s.store, keyBookings)
	if err != nil {
		return models.DashboardStats{}, err
	}
	users, err := readBucket[[]models.UserRecord](ctx, s.store, keyUsers)
	if err != nil {
		return models.DashboardStats{}, err
	}
	messages, err := readBucket[[]models.Message](ctx, s.store, keyMessages)
	if err != nil {
		return models.DashboardStats{}, err
	}

	stats := models.DashboardStats{TotalBookings: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case models.BookingPending:
			stats.PendingBookings++
		case models.BookingConfirmed:
			stats.ConfirmedBookings++
		case models.BookingCompleted:
			stats.CompletedBookings++
		case models.BookingCancelled:
			stats.CancelledBookings++
		}
		if b.Status != models.BookingCancelled {
			stats.TotalRevenue += b.TotalPrice
		}
	}
	for _, u := range users {
		if u.Role == models.RoleCustomer {
			stats.Customers++
		}
	}
	for _, m := range messages {
		if m.Status == models.MessageUnread {
			stats.UnreadMessages++
		}
	}

	recent := make([]models.Booking, len(bookings))
	copy(recent, bookings)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentBookingsLimit {
		recent = recent[:recentBookingsLimit]
	}
	stats.RecentBookings = recent
	return stats, nil
}
