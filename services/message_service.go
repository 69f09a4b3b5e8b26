package services

import (
	"context"
	"strconv"
	"strings"

	"monipee-hotel/models"
)

type MessageService struct {
	store *Store
}

func NewMessageService(store *Store) *MessageService {
	return &MessageService{store: store}
}

type MessageInput struct {
	Subject string `json:"subject" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type MessagePatch struct {
	Subject *string `json:"subject,omitempty"`
	Content *string `json:"content,omitempty"`
	Status  *string `json:"status,omitempty" binding:"omitempty,oneof=unread read replied"`
}

func (s *MessageService) ListAll(ctx context.Context) ([]models.Message, error) {
	messages, err := readBucket[[]models.Message](ctx, s.store, keyMessages)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

func (s *MessageService) ListByUser(ctx context.Context, userID string) ([]models.Message, error) {
	messages, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Message, 0)
	for _, m := range messages {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *MessageService) Get(ctx context.Context, id string) (models.Message, error) {
	messages, err := s.ListAll(ctx)
	if err != nil {
		return models.Message{}, err
	}
	for _, m := range messages {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Message{}, ErrMessageNotFound
}

func (s *MessageService) Add(ctx context.Context, userID string, in MessageInput) (models.Message, error) {
	if strings.TrimSpace(in.Content) == "" {
		return models.Message{}, ErrEmptyMessage
	}
	msg := models.Message{
		ID:        "msg-" + strconv.FormatInt(s.store.nextMillis(), 10),
		UserID:    userID,
		Subject:   strings.TrimSpace(in.Subject),
		Content:   strings.TrimSpace(in.Content),
		Status:    models.MessageUnread,
		CreatedAt: s.store.Now(),
	}
	err := updateBucket(ctx, s.store, keyMessages, func(messages *[]models.Message) error {
		*messages = append(*messages, msg)
		return nil
	})
	if err != nil {
		return models.Message{}, err
	}
	return msg, nil
}

func (s *MessageService) Update(ctx context.Context, id string, patch MessagePatch) (models.Message, error) {
	return s.mutate(ctx, id, func(m *models.Message) {
		if patch.Subject != nil {
			m.Subject = *patch.Subject
		}
		if patch.Content != nil {
			m.Content = *patch.Content
		}
		if patch.Status != nil {
			m.Status = *patch.Status
		}
	})
}

func (s *MessageService) MarkRead(ctx context.Context, id string) (models.Message, error) {
	return s.mutate(ctx, id, func(m *models.Message) {
		if m.Status == models.MessageUnread {
			m.Status = models.MessageRead
		}
	})
}

// Reply appends to the thread. An admin reply marks the message replied; a
// guest follow-up marks it unread again for the front desk.
func (s *MessageService) Reply(ctx context.Context, id, content string, isAdmin bool) (models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Message{}, ErrEmptyMessage
	}
	reply := models.Reply{Content: content, CreatedAt: s.store.Now(), IsAdmin: isAdmin}
	return s.mutate(ctx, id, func(m *models.Message) {
		m.Replies = append(m.Replies, reply)
		if isAdmin {
			m.Status = models.MessageReplied
		} else {
			m.Status = models.MessageUnread
		}
	})
}

func (s *MessageService) mutate(ctx context.Context, id string, fn func(m *models.Message)) (models.Message, error) {
	var updated models.Message
	err := updateBucket(ctx, s.store, keyMessages, func(messages *[]models.Message) error {
		for i := range *messages {
			if (*messages)[i].ID == id {
				fn(&(*messages)[i])
				updated = (*messages)[i]
				return nil
			}
		}
		return ErrMessageNotFound
	})
	return updated, err
}
