package services

import (
	"context"
	"strings"

	"github.com/mozillazg/go-unidecode"

	"monipee-hotel/models"
)

const (
	defaultRoomImage = "/11.jpeg"
	defaultRoomSize  = "25m²"
)

type RoomService struct {
	store *Store
}

func NewRoomService(store *Store) *RoomService {
	return &RoomService{store: store}
}

func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	rooms, err := readBucket[[]models.Room](ctx, s.store, keyRooms)
	if err != nil {
		return nil, err
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	return rooms, nil
}

// Get returns the room with id, or the first room when id is unknown.
// ErrRoomNotFound only when there are no rooms at all.
func (s *RoomService) Get(ctx context.Context, id string) (models.Room, error) {
	rooms, err := s.List(ctx)
	if err != nil {
		return models.Room{}, err
	}
	for _, r := range rooms {
		if r.ID == id {
			return r, nil
		}
	}
	if len(rooms) == 0 {
		return models.Room{}, ErrRoomNotFound
	}
	return rooms[0], nil
}

// Lookup is the strict variant of Get.
func (s *RoomService) Lookup(ctx context.Context, id string) (models.Room, error) {
	rooms, err := s.List(ctx)
	if err != nil {
		return models.Room{}, err
	}
	for _, r := range rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Room{}, ErrRoomNotFound
}

// Add stores a new room. Its id (and type) is the slug of the type, or of the name
// when no type is given.
func (s *RoomService) Add(ctx context.Context, room models.Room) (models.Room, error) {
	if room.ID == "" {
		if room.Type != "" {
			room.ID = Slugify(room.Type)
		} else {
			room.ID = Slugify(room.Name)
		}
	}
	if room.ID == "" {
		return models.Room{}, ErrRoomNameRequired
	}
	if room.Type == "" {
		room.Type = room.ID
	}
	if room.Image == "" {
		room.Image = defaultRoomImage
		for _, img := range room.Images {
			if img.DataURL != "" {
				room.Image = img.DataURL
				break
			}
		}
	}
	if room.Size == "" {
		room.Size = defaultRoomSize
	}
	if room.Amenities == nil {
		room.Amenities = []string{}
	}

	err := updateBucket(ctx, s.store, keyRooms, func(rooms *[]models.Room) error {
		for _, r := range *rooms {
			if r.ID == room.ID {
				return ErrRoomExists
			}
		}
		*rooms = append(*rooms, room)
		return nil
	})
	if err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (s *RoomService) Update(ctx context.Context, id string, patch models.RoomPatch) (models.Room, error) {
	var updated models.Room
	err := updateBucket(ctx, s.store, keyRooms, func(rooms *[]models.Room) error {
		for i := range *rooms {
			if (*rooms)[i].ID == id {
				patch.Apply(&(*rooms)[i])
				updated = (*rooms)[i]
				return nil
			}
		}
		return ErrRoomNotFound
	})
	return updated, err
}

func (s *RoomService) Delete(ctx context.Context, id string) error {
	return updateBucket(ctx, s.store, keyRooms, func(rooms *[]models.Room) error {
		for i := range *rooms {
			if (*rooms)[i].ID == id {
				*rooms = append((*rooms)[:i], (*rooms)[i+1:]...)
				return nil
			}
		}
		return ErrRoomNotFound
	})
}

// Slugify lower-cases s, transliterates it to ASCII and joins words with dashes.
func Slugify(s string) string {
	ascii := strings.ToLower(unidecode.Unidecode(strings.TrimSpace(s)))
	var b strings.Builder
	dash := false
	for _, r := range ascii {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
