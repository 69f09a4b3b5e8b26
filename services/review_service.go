package services

import (
	"context"
	"math"
	"strconv"
	"strings"

	"monipee-hotel/models"
)

type ReviewService struct {
	store *Store
}

func NewReviewService(store *Store) *ReviewService {
	return &ReviewService{store: store}
}

type ReviewInput struct {
	Name    string `json:"name" binding:"required"`
	Date    string `json:"date"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Status  string `json:"status" binding:"omitempty,oneof=published pending hidden"`
}

// List returns reviews newest first; publishedOnly hides pending and hidden ones.
func (s *ReviewService) List(ctx context.Context, publishedOnly bool) ([]models.Review, error) {
	reviews, err := readBucket[[]models.Review](ctx, s.store, keyReviews)
	if err != nil {
		return nil, err
	}
	out := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		if publishedOnly && r.Status != models.ReviewPublished {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *ReviewService) Add(ctx context.Context, in ReviewInput) (models.Review, error) {
	if strings.TrimSpace(in.Comment) == "" {
		return models.Review{}, ErrCommentRequired
	}
	if in.Rating <= 0 {
		return models.Review{}, ErrRatingRequired
	}
	review := models.Review{
		ID:      "review-" + strconv.FormatInt(s.store.nextMillis(), 10),
		Name:    strings.TrimSpace(in.Name),
		Date:    in.Date,
		Rating:  clampRating(in.Rating),
		Comment: strings.TrimSpace(in.Comment),
		Status:  in.Status,
	}
	if review.Date == "" {
		review.Date = s.store.Now().Format("January 2006")
	}
	if review.Status == "" {
		review.Status = models.ReviewPublished
	}

	err := updateBucket(ctx, s.store, keyReviews, func(reviews *[]models.Review) error {
		*reviews = append([]models.Review{review}, *reviews...)
		return nil
	})
	if err != nil {
		return models.Review{}, err
	}
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, id string, patch models.ReviewPatch) (models.Review, error) {
	var updated models.Review
	err := updateBucket(ctx, s.store, keyReviews, func(reviews *[]models.Review) error {
		for i := range *reviews {
			r := &(*reviews)[i]
			if r.ID != id {
				continue
			}
			if patch.Name != nil {
				r.Name = *patch.Name
			}
			if patch.Date != nil {
				r.Date = *patch.Date
			}
			if patch.Rating != nil {
				if *patch.Rating <= 0 {
					return ErrRatingRequired
				}
				r.Rating = clampRating(*patch.Rating)
			}
			if patch.Comment != nil {
				r.Comment = *patch.Comment
			}
			if patch.Status != nil {
				r.Status = *patch.Status
			}
			updated = *r
			return nil
		}
		return ErrReviewNotFound
	})
	return updated, err
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	return updateBucket(ctx, s.store, keyReviews, func(reviews *[]models.Review) error {
		for i := range *reviews {
			if (*reviews)[i].ID == id {
				*reviews = append((*reviews)[:i], (*reviews)[i+1:]...)
				return nil
			}
		}
		return ErrReviewNotFound
	})
}

// Summary aggregates published reviews into an average and a per-star count.
func (s *ReviewService) Summary(ctx context.Context) (models.ReviewSummary, error) {
	reviews, err := s.List(ctx, true)
	if err != nil {
		return models.ReviewSummary{}, err
	}
	summary := models.ReviewSummary{Breakdown: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}
	total := 0
	for _, r := range reviews {
		stars := clampRating(r.Rating)
		summary.Breakdown[stars]++
		total += stars
	}
	summary.Count = len(reviews)
	if summary.Count > 0 {
		avg := float64(total) / float64(summary.Count)
		summary.Average = math.Round(avg*10) / 10
	}
	return summary, nil
}
