package services

import (
	"context"

	"monipee-hotel/models"
)

type UserService struct {
	store *Store
}

func NewUserService(store *Store) *UserService {
	return &UserService{store: store}
}

// ListAll returns every account with the password hash stripped.
func (s *UserService) ListAll(ctx context.Context) ([]models.User, error) {
	users, err := readBucket[[]models.UserRecord](ctx, s.store, keyUsers)
	if err != nil {
		return nil, err
	}
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.User)
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	users, err := s.ListAll(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// Customers lists customer accounts with their booking count and the amount
// spent on bookings that were not cancelled.
func (s *UserService) Customers(ctx context.Context) ([]models.CustomerSummary, error) {
	users, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := readBucket[[]models.Booking](ctx, s.store, keyBookings)
	if err != nil {
		return nil, err
	}

	type agg struct {
		count int
		spent float64
	}
	byUser := map[string]agg{}
	for _, b := range bookings {
		a := byUser[b.UserID]
		a.count++
		if b.Status != models.BookingCancelled {
			a.spent += b.TotalPrice
		}
		byUser[b.UserID] = a
	}

	out := make([]models.CustomerSummary, 0, len(users))
	for _, u := range users {
		if u.Role != models.RoleCustomer {
			continue
		}
		a := byUser[u.ID]
		out = append(out, models.CustomerSummary{User: u, BookingCount: a.count, TotalSpent: a.spent})
	}
	return out, nil
}
