package services

import (
	"context"
	"strconv"

	"monipee-hotel/models"
)

type GalleryService struct {
	store *Store
}

func NewGalleryService(store *Store) *GalleryService {
	return &GalleryService{store: store}
}

func (s *GalleryService) List(ctx context.Context) ([]models.GalleryImage, error) {
	images, err := readBucket[[]models.GalleryImage](ctx, s.store, keyGallery)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []models.GalleryImage{}
	}
	return images, nil
}

// ListByCategory filters by category; an empty category or "All" returns everything.
func (s *GalleryService) ListByCategory(ctx context.Context, category string) ([]models.GalleryImage, error) {
	images, err := s.List(ctx)
	if err != nil || category == "" || category == "All" {
		return images, err
	}
	out := make([]models.GalleryImage, 0, len(images))
	for _, img := range images {
		if img.Category == category {
			out = append(out, img)
		}
	}
	return out, nil
}

func (s *GalleryService) Add(ctx context.Context, img models.GalleryImage) (models.GalleryImage, error) {
	img.ID = strconv.FormatInt(s.store.nextMillis(), 10)
	err := updateBucket(ctx, s.store, keyGallery, func(images *[]models.GalleryImage) error {
		*images = append(*images, img)
		return nil
	})
	if err != nil {
		return models.GalleryImage{}, err
	}
	return img, nil
}

func (s *GalleryService) Delete(ctx context.Context, id string) error {
	return updateBucket(ctx, s.store, keyGallery, func(images *[]models.GalleryImage) error {
		for i := range *images {
			if (*images)[i].ID == id {
				*images = append((*images)[:i], (*images)[i+1:]...)
				return nil
			}
		}
		return ErrImageNotFound
	})
}
