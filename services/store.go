package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"monipee-hotel/models"
	"monipee-hotel/storage"
)

// Bucket keys. Each holds one entity kind serialized as JSON.
const (
	keyUsers         = "users"
	keySessions      = "current_sessions"
	keyBookings      = "bookings"
	keyMessages      = "messages"
	keyRooms         = "rooms"
	keyGallery       = "gallery"
	keyReviews       = "reviews"
	keyRoomReviews   = "room_reviews"
	keyHeroSections  = "hero_sections"
	keyPageContents  = "page_contents"
	keySettings      = "settings"
	keyResets        = "resets"
	keySchemaVersion = "schema_version"
)

// Store is the process-wide repository over a bucket backend.
type Store struct {
	backend      storage.Backend
	now          func() time.Time
	passwordCost int

	idMu   sync.Mutex
	lastID int64
}

type StoreOption func(*Store)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithPasswordCost sets the bcrypt cost used for new password hashes.
func WithPasswordCost(cost int) StoreOption {
	return func(s *Store) { s.passwordCost = cost }
}

func NewStore(backend storage.Backend, opts ...StoreOption) *Store {
	s := &Store{
		backend:      backend,
		now:          time.Now,
		passwordCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Now() time.Time { return s.now().UTC() }

func (s *Store) Close() error { return s.backend.Close() }

// nextMillis returns a unix-millisecond stamp for generated ids, strictly
// increasing within the process so two ids minted in the same millisecond differ.
func (s *Store) nextMillis() int64 {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	ms := s.now().UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms
	return ms
}

// bcrypt only reads the first 72 bytes.
const maxPasswordBytes = 72

func (s *Store) hashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.passwordCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// readBucket decodes a bucket. A missing or empty bucket yields the zero value.
func readBucket[T any](ctx context.Context, s *Store, key string) (T, error) {
	var v T
	raw, err := s.backend.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return v, nil
	}
	if err != nil {
		return v, fmt.Errorf("read %s: %w", key, err)
	}
	if len(raw) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", key, err)
	}
	return v, nil
}

// updateBucket atomically decodes, mutates and re-encodes one bucket.
// Errors returned by fn abort the write and are passed through unchanged.
func updateBucket[T any](ctx context.Context, s *Store, key string, fn func(v *T) error) error {
	return s.backend.Update(ctx, key, func(cur []byte, exists bool) ([]byte, error) {
		var v T
		if exists && len(cur) > 0 {
			if err := json.Unmarshal(cur, &v); err != nil {
				return nil, fmt.Errorf("decode %s: %w", key, err)
			}
		}
		if err := fn(&v); err != nil {
			return nil, err
		}
		out, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		return out, nil
	})
}

// seedIfAbsent writes def only when the bucket has never been written.
func seedIfAbsent[T any](ctx context.Context, s *Store, key string, def T) error {
	return s.backend.Update(ctx, key, func(cur []byte, exists bool) ([]byte, error) {
		if exists && len(cur) > 0 {
			return nil, storage.ErrSkipWrite
		}
		logrus.WithField("bucket", key).Info("seeding defaults")
		return json.Marshal(def)
	})
}

// Init seeds missing buckets and brings stored data up to the current schema.
// Buckets that already hold data are left as they are.
func (s *Store) Init(ctx context.Context) error {
	if err := s.seedAdmin(ctx); err != nil {
		return err
	}

	seeds := []func() error{
		func() error { return seedIfAbsent(ctx, s, keySettings, defaultSettings()) },
		func() error { return seedIfAbsent(ctx, s, keyRooms, defaultRooms()) },
		func() error { return s.seedGallery(ctx) },
		func() error { return seedIfAbsent(ctx, s, keyReviews, defaultReviews()) },
		func() error { return seedIfAbsent(ctx, s, keyRoomReviews, map[string][]models.RoomReview{}) },
		func() error { return seedIfAbsent(ctx, s, keyHeroSections, defaultHeroSections()) },
		func() error { return seedIfAbsent(ctx, s, keyPageContents, defaultPageContents()) },
	}
	for _, seed := range seeds {
		if err := seed(); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	return s.migrate(ctx)
}

func (s *Store) seedAdmin(ctx context.Context) error {
	return updateBucket(ctx, s, keyUsers, func(users *[]models.UserRecord) error {
		for _, u := range *users {
			if u.Role == models.RoleAdmin {
				return storage.ErrSkipWrite
			}
		}
		hash, err := s.hashPassword(defaultAdminPassword)
		if err != nil {
			return err
		}
		*users = append(*users, models.UserRecord{
			User: models.User{
				ID:        defaultAdminID,
				Email:     defaultAdminEmail,
				Name:      defaultAdminName,
				Role:      models.RoleAdmin,
				CreatedAt: s.Now(),
			},
			Password: hash,
		})
		logrus.WithField("email", defaultAdminEmail).Info("default admin seeded")
		return nil
	})
}

// seedGallery also replaces an empty or unreadable gallery with the defaults.
func (s *Store) seedGallery(ctx context.Context) error {
	return s.backend.Update(ctx, keyGallery, func(cur []byte, exists bool) ([]byte, error) {
		if exists && len(cur) > 0 {
			var images []models.GalleryImage
			err := json.Unmarshal(cur, &images)
			if err == nil && len(images) > 0 {
				return nil, storage.ErrSkipWrite
			}
			if err != nil {
				logrus.WithError(err).Warn("failed to parse gallery images, restoring defaults")
			}
		}
		return json.Marshal(defaultGallery())
	})
}
