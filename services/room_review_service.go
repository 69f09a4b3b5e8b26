package services

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"monipee-hotel/models"
)

type RoomReviewService struct {
	store    *Store
	settings *SettingsService
}

func NewRoomReviewService(store *Store, settings *SettingsService) *RoomReviewService {
	return &RoomReviewService{store: store, settings: settings}
}

type RoomReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (s *RoomReviewService) load(ctx context.Context) (map[string][]models.RoomReview, error) {
	return readBucket[map[string][]models.RoomReview](ctx, s.store, keyRoomReviews)
}

// ListForRoom returns approved reviews of one room, newest first.
func (s *RoomReviewService) ListForRoom(ctx context.Context, roomID string) ([]models.RoomReview, error) {
	byRoom, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.RoomReview, 0, len(byRoom[roomID]))
	for _, r := range byRoom[roomID] {
		r = withDefaultStatus(r)
		if r.Status == models.RoomReviewApproved {
			out = append(out, r)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

// ListAll returns every room review for moderation, newest first.
func (s *RoomReviewService) ListAll(ctx context.Context) ([]models.RoomReview, error) {
	byRoom, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.RoomReview{}
	for _, list := range byRoom {
		for _, r := range list {
			out = append(out, withDefaultStatus(r))
		}
	}
	sortNewestFirst(out)
	return out, nil
}

// Add records a pending review by user. Ratings above 5 are clamped; zero or
// negative ratings are rejected.
func (s *RoomReviewService) Add(ctx context.Context, roomID string, user models.User, in RoomReviewInput) (models.RoomReview, error) {
	if user.ID == "" {
		return models.RoomReview{}, ErrUnauthenticated
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return models.RoomReview{}, err
	}
	if !settings.EnableReviews {
		return models.RoomReview{}, ErrReviewsDisabled
	}

	comment := strings.TrimSpace(in.Comment)
	if comment == "" {
		return models.RoomReview{}, ErrCommentRequired
	}
	if in.Rating <= 0 {
		return models.RoomReview{}, ErrRatingRequired
	}

	review := models.RoomReview{
		ID:        "room-review-" + strconv.FormatInt(s.store.nextMillis(), 10),
		RoomID:    roomID,
		UserID:    user.ID,
		UserName:  user.Name,
		Rating:    clampRating(in.Rating),
		Comment:   comment,
		CreatedAt: s.store.Now(),
		Status:    models.RoomReviewPending,
	}
	err = updateBucket(ctx, s.store, keyRoomReviews, func(byRoom *map[string][]models.RoomReview) error {
		if *byRoom == nil {
			*byRoom = map[string][]models.RoomReview{}
		}
		(*byRoom)[roomID] = append([]models.RoomReview{review}, (*byRoom)[roomID]...)
		return nil
	})
	if err != nil {
		return models.RoomReview{}, err
	}
	return review, nil
}

func (s *RoomReviewService) SetStatus(ctx context.Context, id, status string) (models.RoomReview, error) {
	switch status {
	case models.RoomReviewPending, models.RoomReviewApproved, models.RoomReviewRejected:
	default:
		return models.RoomReview{}, ErrInvalidReviewStatus
	}

	var updated models.RoomReview
	err := updateBucket(ctx, s.store, keyRoomReviews, func(byRoom *map[string][]models.RoomReview) error {
		for _, list := range *byRoom {
			for i := range list {
				if list[i].ID == id {
					list[i].Status = status
					updated = list[i]
					return nil
				}
			}
		}
		return ErrReviewNotFound
	})
	return updated, err
}

func withDefaultStatus(r models.RoomReview) models.RoomReview {
	if r.Status == "" {
		r.Status = models.RoomReviewApproved
	}
	return r
}

func sortNewestFirst(reviews []models.RoomReview) {
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
}
