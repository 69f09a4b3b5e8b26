package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monipee-hotel/models"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Executive Suite":    "executive-suite",
		"  Family   Room  ":  "family-room",
		"Chambre Économique": "chambre-economique",
		"Deluxe (Sea View)!": "deluxe-sea-view",
		"already-a-slug":     "already-a-slug",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestRooms_AddUpdateDelete(t *testing.T) {
	f := newFixture(t)

	room, err := f.rooms.Add(f.ctx, models.Room{Name: "Executive Suite", Price: 1200, Capacity: 4})
	require.NoError(t, err)
	assert.Equal(t, "executive-suite", room.ID)
	assert.Equal(t, "executive-suite", room.Type)
	assert.Equal(t, "/11.jpeg", room.Image)
	assert.Equal(t, "25m²", room.Size)

	_, err = f.rooms.Add(f.ctx, models.Room{Name: "Executive Suite"})
	assert.ErrorIs(t, err, ErrRoomExists)

	price := 999.0
	updated, err := f.rooms.Update(f.ctx, room.ID, models.RoomPatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 999.0, updated.Price)
	assert.Equal(t, "Executive Suite", updated.Name)

	require.NoError(t, f.rooms.Delete(f.ctx, room.ID))
	_, err = f.rooms.Lookup(f.ctx, room.ID)
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.ErrorIs(t, f.rooms.Delete(f.ctx, room.ID), ErrRoomNotFound)
}

func TestRooms_AddNeedsSluggableName(t *testing.T) {
	f := newFixture(t)

	_, err := f.rooms.Add(f.ctx, models.Room{Name: "!!!", Price: 100})
	assert.ErrorIs(t, err, ErrRoomNameRequired)
	_, err = f.rooms.Add(f.ctx, models.Room{Name: "Garden Room", Type: "???", Price: 100})
	assert.ErrorIs(t, err, ErrRoomNameRequired)

	rooms, err := f.rooms.List(f.ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 3)
}

func TestRooms_GetWithoutRooms(t *testing.T) {
	f := newFixture(t)
	for _, id := range []string{"standard", "deluxe", "suite"} {
		require.NoError(t, f.rooms.Delete(f.ctx, id))
	}
	_, err := f.rooms.Get(f.ctx, "standard")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestGallery(t *testing.T) {
	f := newFixture(t)

	dining, err := f.gallery.ListByCategory(f.ctx, "Dining")
	require.NoError(t, err)
	assert.Len(t, dining, 3)

	all, err := f.gallery.ListByCategory(f.ctx, "All")
	require.NoError(t, err)
	assert.Len(t, all, 17)

	img, err := f.gallery.Add(f.ctx, models.GalleryImage{Category: "Pool", Src: "/pool.jpeg", Alt: "Pool"})
	require.NoError(t, err)
	assert.NotEmpty(t, img.ID)

	require.NoError(t, f.gallery.Delete(f.ctx, img.ID))
	assert.ErrorIs(t, f.gallery.Delete(f.ctx, img.ID), ErrImageNotFound)
}

func TestReviews_AddValidatesAndClamps(t *testing.T) {
	f := newFixture(t)

	_, err := f.reviews.Add(f.ctx, ReviewInput{Name: "Kofi", Rating: 0, Comment: "Nice"})
	assert.ErrorIs(t, err, ErrRatingRequired)
	assert.Equal(t, "Rating is required", err.Error())

	_, err = f.reviews.Add(f.ctx, ReviewInput{Name: "Kofi", Rating: 4, Comment: "  "})
	assert.ErrorIs(t, err, ErrCommentRequired)

	r, err := f.reviews.Add(f.ctx, ReviewInput{Name: "Kofi", Rating: 7, Comment: "Superb stay"})
	require.NoError(t, err)
	assert.Equal(t, 5, r.Rating)
	assert.Equal(t, "March 2026", r.Date)
	assert.Equal(t, models.ReviewPublished, r.Status)

	list, err := f.reviews.List(f.ctx, true)
	require.NoError(t, err)
	assert.Equal(t, r.ID, list[0].ID, "new reviews come first")
}

func TestReviews_UpdateRejectsMissingRating(t *testing.T) {
	f := newFixture(t)
	r, err := f.reviews.Add(f.ctx, ReviewInput{Name: "Kofi", Rating: 4, Comment: "Good"})
	require.NoError(t, err)

	zero := 0
	_, err = f.reviews.Update(f.ctx, r.ID, models.ReviewPatch{Rating: &zero})
	assert.ErrorIs(t, err, ErrRatingRequired)

	high := 9
	updated, err := f.reviews.Update(f.ctx, r.ID, models.ReviewPatch{Rating: &high})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
}

func TestReviews_HiddenAreNotPublic(t *testing.T) {
	f := newFixture(t)

	hidden := models.ReviewHidden
	_, err := f.reviews.Update(f.ctx, "review-gideon-ofori", models.ReviewPatch{Status: &hidden})
	require.NoError(t, err)

	public, err := f.reviews.List(f.ctx, true)
	require.NoError(t, err)
	assert.Len(t, public, 8)

	all, err := f.reviews.List(f.ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 9)

	require.NoError(t, f.reviews.Delete(f.ctx, "review-gideon-ofori"))
	assert.ErrorIs(t, f.reviews.Delete(f.ctx, "review-gideon-ofori"), ErrReviewNotFound)
}

func TestReviews_Summary(t *testing.T) {
	f := newFixture(t)

	s, err := f.reviews.Summary(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, s.Count)
	// 4+5+4+5+4+1+1+3+5 = 32
	assert.Equal(t, 3.6, s.Average)
	assert.Equal(t, map[int]int{1: 2, 2: 0, 3: 1, 4: 3, 5: 3}, s.Breakdown)
}

func TestRoomReviews(t *testing.T) {
	f := newFixture(t)
	sess := f.register(t, "ama@example.com")

	_, err := f.roomRevs.Add(f.ctx, "deluxe", models.User{}, RoomReviewInput{Rating: 5, Comment: "Great"})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = f.roomRevs.Add(f.ctx, "deluxe", sess.User, RoomReviewInput{Rating: 0, Comment: "Great"})
	assert.ErrorIs(t, err, ErrRatingRequired)

	r, err := f.roomRevs.Add(f.ctx, "deluxe", sess.User, RoomReviewInput{Rating: 9, Comment: "Great room"})
	require.NoError(t, err)
	assert.Equal(t, 5, r.Rating)
	assert.Equal(t, models.RoomReviewPending, r.Status)
	assert.Equal(t, "Ama Mensah", r.UserName)

	public, err := f.roomRevs.ListForRoom(f.ctx, "deluxe")
	require.NoError(t, err)
	assert.Empty(t, public, "pending reviews are not public")

	_, err = f.roomRevs.SetStatus(f.ctx, r.ID, "bogus")
	assert.ErrorIs(t, err, ErrInvalidReviewStatus)

	_, err = f.roomRevs.SetStatus(f.ctx, r.ID, models.RoomReviewApproved)
	require.NoError(t, err)
	public, err = f.roomRevs.ListForRoom(f.ctx, "deluxe")
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, r.ID, public[0].ID)

	all, err := f.roomRevs.ListAll(f.ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	off := false
	_, err = f.settings.Update(f.ctx, models.HotelSettingsPatch{EnableReviews: &off})
	require.NoError(t, err)
	_, err = f.roomRevs.Add(f.ctx, "deluxe", sess.User, RoomReviewInput{Rating: 4, Comment: "Again"})
	assert.ErrorIs(t, err, ErrReviewsDisabled)
}

func TestMessages_Thread(t *testing.T) {
	f := newFixture(t)
	sess := f.register(t, "ama@example.com")

	_, err := f.messages.Add(f.ctx, sess.User.ID, MessageInput{Subject: "Hi", Content: " "})
	assert.ErrorIs(t, err, ErrEmptyMessage)

	msg, err := f.messages.Add(f.ctx, sess.User.ID, MessageInput{Subject: "Airport pickup", Content: "Do you offer pickup?"})
	require.NoError(t, err)
	assert.Equal(t, models.MessageUnread, msg.Status)

	msg, err = f.messages.MarkRead(f.ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MessageRead, msg.Status)

	msg, err = f.messages.Reply(f.ctx, msg.ID, "Yes, from Kumasi.", true)
	require.NoError(t, err)
	assert.Equal(t, models.MessageReplied, msg.Status)

	msg, err = f.messages.Reply(f.ctx, msg.ID, "Great, thanks!", false)
	require.NoError(t, err)
	assert.Equal(t, models.MessageUnread, msg.Status)
	require.Len(t, msg.Replies, 2)
	assert.True(t, msg.Replies[0].IsAdmin)
	assert.False(t, msg.Replies[1].IsAdmin)

	mine, err := f.messages.ListByUser(f.ctx, sess.User.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = f.messages.Reply(f.ctx, "msg-404", "hello", true)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestContent_HeroAndPages(t *testing.T) {
	f := newFixture(t)

	home, err := f.content.HeroSection(f.ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, "★★★ 3-Star Luxury Hotel", home.Label)

	blank, err := f.content.HeroSection(f.ctx, "spa")
	require.NoError(t, err)
	assert.Equal(t, models.HeroSection{ID: "spa"}, blank)

	title := "Welcome Home"
	h, err := f.content.UpdateHeroSection(f.ctx, "home", models.HeroPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, h.Title)
	assert.Equal(t, home.Label, h.Label)

	spaTitle := "Spa"
	_, err = f.content.UpdateHeroSection(f.ctx, "spa", models.HeroPatch{Title: &spaTitle})
	require.NoError(t, err)
	heroes, err := f.content.ListHeroSections(f.ctx)
	require.NoError(t, err)
	assert.Len(t, heroes, 11)

	page, err := f.content.PageContent(f.ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, "331", page.Content["heroStartingPrice"])

	merged, err := f.content.UpdatePageContent(f.ctx, "home", models.PageContentPatch{Content: map[string]string{"heroStartingPrice": "350"}})
	require.NoError(t, err)
	assert.Equal(t, "350", merged.Content["heroStartingPrice"])
	assert.Equal(t, len(page.Content), len(merged.Content), "other keys are kept")

	unknown, err := f.content.PageContent(f.ctx, "careers")
	require.NoError(t, err)
	assert.NotNil(t, unknown.Images)
	assert.NotNil(t, unknown.Content)
}
