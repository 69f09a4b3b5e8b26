package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"monipee-hotel/models"
	"monipee-hotel/storage"
)

// SchemaVersion is the bucket layout this build reads and writes.
const SchemaVersion = 1

type migration struct {
	version int
	name    string
	apply   func(ctx context.Context, s *Store) error
}

var migrations = []migration{
	{version: 1, name: "normalize reviews and bookings", apply: migrateV1},
}

func (s *Store) migrate(ctx context.Context) error {
	current, err := readBucket[int](ctx, s, keySchemaVersion)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := m.apply(ctx, s); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
		v := m.version
		if err := updateBucket(ctx, s, keySchemaVersion, func(stored *int) error {
			if *stored >= v {
				return storage.ErrSkipWrite
			}
			*stored = v
			return nil
		}); err != nil {
			return err
		}
		current = v
		logrus.WithFields(logrus.Fields{"version": v, "name": m.name}).Info("schema migrated")
	}
	return nil
}

// SchemaVersion reports the version recorded in the store.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	return readBucket[int](ctx, s, keySchemaVersion)
}

func migrateV1(ctx context.Context, s *Store) error {
	if err := updateBucket(ctx, s, keyRoomReviews, func(byRoom *map[string][]models.RoomReview) error {
		for roomID, list := range *byRoom {
			for i := range list {
				if list[i].Status == "" {
					list[i].Status = models.RoomReviewApproved
				}
				if list[i].RoomID == "" {
					list[i].RoomID = roomID
				}
				list[i].Rating = clampRating(list[i].Rating)
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if err := updateBucket(ctx, s, keyReviews, func(reviews *[]models.Review) error {
		for i := range *reviews {
			r := &(*reviews)[i]
			r.Rating = clampRating(r.Rating)
			if r.Status == "" {
				r.Status = models.ReviewPublished
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return updateBucket(ctx, s, keyBookings, func(bookings *[]models.Booking) error {
		for i := range *bookings {
			if (*bookings)[i].RoomCount < 1 {
				(*bookings)[i].RoomCount = 1
			}
		}
		return nil
	})
}

// clampRating forces a stored rating into 1..5.
func clampRating(r int) int {
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}
