package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"monipee-hotel/models"
	"monipee-hotel/storage"
	"monipee-hotel/utils"
)

// Monday 2 March 2026, 10:00 UTC.
var testNow = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeMailer struct {
	mu            sync.Mutex
	confirmations []utils.BookingEmailData
	statuses      []utils.StatusEmailData
	resets        []string
	err           error
}

func (m *fakeMailer) SendBookingConfirmation(_ context.Context, d utils.BookingEmailData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.confirmations = append(m.confirmations, d)
	return m.err
}

func (m *fakeMailer) SendBookingStatusUpdate(_ context.Context, d utils.StatusEmailData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses = append(m.statuses, d)
	return m.err
}

func (m *fakeMailer) SendPasswordReset(_ context.Context, _, _, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets = append(m.resets, link)
	return m.err
}

type fixture struct {
	ctx      context.Context
	backend  *storage.MemoryBackend
	clock    *fakeClock
	mailer   *fakeMailer
	store    *Store
	auth     *AuthService
	rooms    *RoomService
	settings *SettingsService
	bookings *BookingService
	messages *MessageService
	users    *UserService
	gallery  *GalleryService
	reviews  *ReviewService
	roomRevs *RoomReviewService
	content  *ContentService
	stats    *DashboardService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		ctx:     context.Background(),
		backend: storage.NewMemoryBackend(),
		clock:   &fakeClock{now: testNow},
		mailer:  &fakeMailer{},
	}
	f.store = NewStore(f.backend, WithClock(f.clock.Now), WithPasswordCost(bcrypt.MinCost))
	require.NoError(t, f.store.Init(f.ctx))

	f.auth = NewAuthService(f.store, f.mailer, AuthOptions{SessionTTL: 24 * time.Hour, ResetTokenTTL: time.Hour, FrontendURL: "https://monipee.test"})
	f.rooms = NewRoomService(f.store)
	f.settings = NewSettingsService(f.store)
	f.bookings = NewBookingService(f.store, f.rooms, f.settings, f.mailer)
	f.messages = NewMessageService(f.store)
	f.users = NewUserService(f.store)
	f.gallery = NewGalleryService(f.store)
	f.reviews = NewReviewService(f.store)
	f.roomRevs = NewRoomReviewService(f.store, f.settings)
	f.content = NewContentService(f.store)
	f.stats = NewDashboardService(f.store)
	return f
}

func (f *fixture) register(t *testing.T, email string) models.Session {
	t.Helper()
	sess, err := f.auth.Register(f.ctx, RegisterInput{Email: email, Password: "secret123", Name: "Ama Mensah", Phone: "024 000 0000"})
	require.NoError(t, err)
	return sess
}

func guest() models.GuestDetails {
	return models.GuestDetails{FirstName: "Ama", LastName: "Mensah", Email: "ama@example.com", Phone: "024 000 0000"}
}
