package services

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"monipee-hotel/models"
)

type SettingsService struct {
	store *Store
}

func NewSettingsService(store *Store) *SettingsService {
	return &SettingsService{store: store}
}

// Get decodes the stored settings over the defaults, so fields missing from
// an older record keep their default values.
func (s *SettingsService) Get(ctx context.Context) (models.HotelSettings, error) {
	raw, err := readBucket[json.RawMessage](ctx, s.store, keySettings)
	if err != nil {
		return models.HotelSettings{}, err
	}
	settings := defaultSettings()
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &settings); err != nil {
			logrus.WithError(err).Warn("failed to parse settings, using defaults")
			return defaultSettings(), nil
		}
	}
	return settings, nil
}

func (s *SettingsService) Update(ctx context.Context, patch models.HotelSettingsPatch) (models.HotelSettings, error) {
	var updated models.HotelSettings
	err := s.store.backend.Update(ctx, keySettings, func(cur []byte, exists bool) ([]byte, error) {
		updated = defaultSettings()
		if exists && len(cur) > 0 {
			if err := json.Unmarshal(cur, &updated); err != nil {
				logrus.WithError(err).Warn("stored settings unreadable, rebuilding from defaults")
				updated = defaultSettings()
			}
		}
		patch.Apply(&updated)
		return json.Marshal(updated)
	})
	return updated, err
}
