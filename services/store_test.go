package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"monipee-hotel/models"
	"monipee-hotel/storage"
)

func TestStoreInit_SeedsDefaults(t *testing.T) {
	f := newFixture(t)

	users, err := f.users.ListAll(f.ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin-001", users[0].ID)
	assert.Equal(t, models.RoleAdmin, users[0].Role)

	rooms, err := f.rooms.List(f.ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, []float64{350, 550, 850}, []float64{rooms[0].Price, rooms[1].Price, rooms[2].Price})

	images, err := f.gallery.List(f.ctx)
	require.NoError(t, err)
	assert.Len(t, images, 17)

	reviews, err := f.reviews.List(f.ctx, true)
	require.NoError(t, err)
	assert.Len(t, reviews, 9)

	heroes, err := f.content.ListHeroSections(f.ctx)
	require.NoError(t, err)
	assert.Len(t, heroes, 10)

	settings, err := f.settings.Get(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, defaultSettings(), settings)

	v, err := f.store.SchemaVersion(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, v)
}

func TestStoreInit_AdminCanLogIn(t *testing.T) {
	f := newFixture(t)
	sess, err := f.auth.Login(f.ctx, "admin@monipee.com", "admin123")
	require.NoError(t, err)
	assert.True(t, sess.User.IsAdmin())
}

func TestStoreInit_DoesNotReapplyDefaults(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.rooms.Delete(f.ctx, "suite"))
	_, err := f.reviews.Add(f.ctx, ReviewInput{Name: "Kofi", Rating: 5, Comment: "Lovely"})
	require.NoError(t, err)

	require.NoError(t, f.store.Init(f.ctx))

	rooms, err := f.rooms.List(f.ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)

	reviews, err := f.reviews.List(f.ctx, false)
	require.NoError(t, err)
	assert.Len(t, reviews, 10)

	users, err := f.users.ListAll(f.ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1, "admin must be seeded only once")
}

func TestStoreInit_EmptyRoomListIsKept(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	require.NoError(t, backend.Set(ctx, keyRooms, []byte(`[]`)))

	s := NewStore(backend, WithPasswordCost(bcrypt.MinCost))
	require.NoError(t, s.Init(ctx))

	rooms, err := NewRoomService(s).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestStoreInit_RestoresUnreadableGallery(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	require.NoError(t, backend.Set(ctx, keyGallery, []byte(`{not json`)))

	s := NewStore(backend, WithPasswordCost(bcrypt.MinCost))
	require.NoError(t, s.Init(ctx))

	images, err := NewGalleryService(s).List(ctx)
	require.NoError(t, err)
	assert.Len(t, images, 17)
}

func TestStoreInit_MigratesLegacyData(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()

	legacyReviews := map[string][]map[string]any{
		"deluxe": {
			{"id": "room-review-1", "userId": "u1", "userName": "Esi", "rating": 9, "comment": "Great", "createdAt": "2025-01-01T10:00:00Z"},
		},
	}
	raw, err := json.Marshal(legacyReviews)
	require.NoError(t, err)
	require.NoError(t, backend.Set(ctx, keyRoomReviews, raw))
	require.NoError(t, backend.Set(ctx, keyBookings, []byte(`[{"id":"booking-1","userId":"u1","status":"confirmed","totalPrice":700}]`)))

	s := NewStore(backend, WithPasswordCost(bcrypt.MinCost))
	require.NoError(t, s.Init(ctx))

	list, err := NewRoomReviewService(s, NewSettingsService(s)).ListForRoom(ctx, "deluxe")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.RoomReviewApproved, list[0].Status)
	assert.Equal(t, 5, list[0].Rating)
	assert.Equal(t, "deluxe", list[0].RoomID)

	b, err := NewBookingService(s, NewRoomService(s), NewSettingsService(s), &fakeMailer{}).Get(ctx, "booking-1")
	require.NoError(t, err)
	assert.Equal(t, 1, b.RoomCount)
}

func TestStore_NextMillisIsStrictlyIncreasing(t *testing.T) {
	f := newFixture(t)
	a := f.store.nextMillis()
	b := f.store.nextMillis()
	assert.Greater(t, b, a)
}

func TestSettings_PartialRecordKeepsDefaults(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	require.NoError(t, backend.Set(ctx, keySettings, []byte(`{"hotelName":"Renamed","enableBookings":false}`)))

	s := NewStore(backend, WithPasswordCost(bcrypt.MinCost))
	require.NoError(t, s.Init(ctx))

	settings, err := NewSettingsService(s).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", settings.HotelName)
	assert.False(t, settings.EnableBookings)
	assert.Equal(t, "GH₵", settings.Currency)
	assert.True(t, settings.EnableReviews)
}
