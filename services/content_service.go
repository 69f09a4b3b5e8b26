package services

import (
	"context"

	"monipee-hotel/models"
)

// ContentService manages the per-page hero banners and page copy.
type ContentService struct {
	store *Store
}

func NewContentService(store *Store) *ContentService {
	return &ContentService{store: store}
}

func (s *ContentService) ListHeroSections(ctx context.Context) ([]models.HeroSection, error) {
	sections, err := readBucket[[]models.HeroSection](ctx, s.store, keyHeroSections)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return defaultHeroSections(), nil
	}
	return sections, nil
}

// HeroSection falls back to the built-in default for id, then to an empty record.
func (s *ContentService) HeroSection(ctx context.Context, id string) (models.HeroSection, error) {
	sections, err := readBucket[[]models.HeroSection](ctx, s.store, keyHeroSections)
	if err != nil {
		return models.HeroSection{}, err
	}
	if h, ok := findHero(sections, id); ok {
		return h, nil
	}
	if h, ok := findHero(defaultHeroSections(), id); ok {
		return h, nil
	}
	return models.HeroSection{ID: id}, nil
}

// UpdateHeroSection merges patch into the section, creating it when absent.
func (s *ContentService) UpdateHeroSection(ctx context.Context, id string, patch models.HeroPatch) (models.HeroSection, error) {
	var updated models.HeroSection
	err := updateBucket(ctx, s.store, keyHeroSections, func(sections *[]models.HeroSection) error {
		if len(*sections) == 0 {
			*sections = defaultHeroSections()
		}
		for i := range *sections {
			if (*sections)[i].ID == id {
				patch.Apply(&(*sections)[i])
				updated = (*sections)[i]
				return nil
			}
		}
		updated = models.HeroSection{ID: id}
		patch.Apply(&updated)
		*sections = append(*sections, updated)
		return nil
	})
	return updated, err
}

func findHero(sections []models.HeroSection, id string) (models.HeroSection, bool) {
	for _, h := range sections {
		if h.ID == id {
			return h, true
		}
	}
	return models.HeroSection{}, false
}

func (s *ContentService) PageContent(ctx context.Context, id string) (models.PageContent, error) {
	pages, err := readBucket[[]models.PageContent](ctx, s.store, keyPageContents)
	if err != nil {
		return models.PageContent{}, err
	}
	return resolvePage(pages, id), nil
}

// UpdatePageContent merges the image and content maps key by key.
func (s *ContentService) UpdatePageContent(ctx context.Context, id string, patch models.PageContentPatch) (models.PageContent, error) {
	var merged models.PageContent
	err := updateBucket(ctx, s.store, keyPageContents, func(pages *[]models.PageContent) error {
		if len(*pages) == 0 {
			*pages = defaultPageContents()
		}
		existing := resolvePage(*pages, id)
		merged = models.PageContent{
			ID:      id,
			Images:  mergeMaps(existing.Images, patch.Images),
			Content: mergeMaps(existing.Content, patch.Content),
		}
		for i := range *pages {
			if (*pages)[i].ID == id {
				(*pages)[i] = merged
				return nil
			}
		}
		*pages = append(*pages, merged)
		return nil
	})
	return merged, err
}

func resolvePage(pages []models.PageContent, id string) models.PageContent {
	for _, p := range pages {
		if p.ID == id {
			return normalizePage(p)
		}
	}
	for _, p := range defaultPageContents() {
		if p.ID == id {
			return p
		}
	}
	return normalizePage(models.PageContent{ID: id})
}

func normalizePage(p models.PageContent) models.PageContent {
	if p.Images == nil {
		p.Images = map[string]string{}
	}
	if p.Content == nil {
		p.Content = map[string]string{}
	}
	return p
}

func mergeMaps(base, patch map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(patch))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}
	return out
}
