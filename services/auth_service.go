package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"monipee-hotel/models"
	"monipee-hotel/storage"
	"monipee-hotel/utils"
)

// ForgotPasswordMessage is returned whether or not the account exists.
const ForgotPasswordMessage = "If an account exists with this email, password reset instructions have been sent."

type AuthOptions struct {
	SessionTTL    time.Duration
	ResetTokenTTL time.Duration
	FrontendURL   string
}

type AuthService struct {
	store  *Store
	mailer Mailer
	opts   AuthOptions
}

func NewAuthService(store *Store, mailer Mailer, opts AuthOptions) *AuthService {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 7 * 24 * time.Hour
	}
	if opts.ResetTokenTTL <= 0 {
		opts.ResetTokenTTL = time.Hour
	}
	return &AuthService{store: store, mailer: mailer, opts: opts}
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}

type ProfileInput struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Phone *string `json:"phone,omitempty"`
}

func (s *AuthService) Login(ctx context.Context, email, password string) (models.Session, error) {
	users, err := readBucket[[]models.UserRecord](ctx, s.store, keyUsers)
	if err != nil {
		return models.Session{}, err
	}

	for _, u := range users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
			return models.Session{}, ErrInvalidCredentials
		}
		return s.startSession(ctx, u.User)
	}
	return models.Session{}, ErrInvalidCredentials
}

// Register creates a customer account and signs it in. Email matching is case-sensitive.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (models.Session, error) {
	hash, err := s.store.hashPassword(in.Password)
	if err != nil {
		return models.Session{}, err
	}

	var created models.User
	err = updateBucket(ctx, s.store, keyUsers, func(users *[]models.UserRecord) error {
		for _, u := range *users {
			if u.Email == in.Email {
				return ErrEmailTaken
			}
		}
		created = models.User{
			ID:        "user-" + strconv.FormatInt(s.store.nextMillis(), 10),
			Email:     in.Email,
			Name:      strings.TrimSpace(in.Name),
			Phone:     strings.TrimSpace(in.Phone),
			Role:      models.RoleCustomer,
			CreatedAt: s.store.Now(),
		}
		*users = append(*users, models.UserRecord{User: created, Password: hash})
		return nil
	})
	if err != nil {
		return models.Session{}, err
	}

	logrus.WithFields(logrus.Fields{"user_id": created.ID, "email": utils.MaskEmail(created.Email)}).Info("user registered")
	return s.startSession(ctx, created)
}

func (s *AuthService) startSession(ctx context.Context, u models.User) (models.Session, error) {
	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return models.Session{}, fmt.Errorf("generate session token: %w", err)
	}
	now := s.store.Now()
	session := models.Session{
		Token:     token,
		User:      u,
		CreatedAt: now,
		ExpiresAt: now.Add(s.opts.SessionTTL),
	}
	err = updateBucket(ctx, s.store, keySessions, func(sessions *map[string]models.Session) error {
		if *sessions == nil {
			*sessions = map[string]models.Session{}
		}
		(*sessions)[token] = session
		return nil
	})
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// Logout clears only the given session.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return updateBucket(ctx, s.store, keySessions, func(sessions *map[string]models.Session) error {
		if _, ok := (*sessions)[token]; !ok {
			return storage.ErrSkipWrite
		}
		delete(*sessions, token)
		return nil
	})
}

// CurrentUser resolves a bearer token. Expired sessions are removed on sight.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrUnauthenticated
	}
	sessions, err := readBucket[map[string]models.Session](ctx, s.store, keySessions)
	if err != nil {
		return models.User{}, err
	}
	session, ok := sessions[token]
	if !ok {
		return models.User{}, ErrUnauthenticated
	}
	if session.Expired(s.store.Now()) {
		if err := s.Logout(ctx, token); err != nil {
			logrus.WithError(err).Warn("failed to drop expired session")
		}
		return models.User{}, ErrSessionExpired
	}
	return session.User, nil
}

// UpdateProfile merges name and phone into the account and its live sessions.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (models.User, error) {
	var updated models.User
	err := updateBucket(ctx, s.store, keyUsers, func(users *[]models.UserRecord) error {
		for i := range *users {
			u := &(*users)[i]
			if u.ID != userID {
				continue
			}
			if in.Name != nil {
				u.Name = strings.TrimSpace(*in.Name)
			}
			if in.Phone != nil {
				u.Phone = strings.TrimSpace(*in.Phone)
			}
			updated = u.User
			return nil
		}
		return ErrUserNotFound
	})
	if err != nil {
		return models.User{}, err
	}

	err = updateBucket(ctx, s.store, keySessions, func(sessions *map[string]models.Session) error {
		changed := false
		for token, sess := range *sessions {
			if sess.User.ID == userID {
				sess.User = updated
				(*sessions)[token] = sess
				changed = true
			}
		}
		if !changed {
			return storage.ErrSkipWrite
		}
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	return updated, nil
}

// ForgotPassword always answers with the same message so callers cannot probe for accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	users, err := readBucket[[]models.UserRecord](ctx, s.store, keyUsers)
	if err != nil {
		return "", err
	}

	var found *models.UserRecord
	for i := range users {
		if users[i].Email == email {
			found = &users[i]
			break
		}
	}
	if found == nil {
		logrus.WithField("email", utils.MaskEmail(email)).Info("password reset requested for unknown email")
		return ForgotPasswordMessage, nil
	}

	token, err := utils.GenerateSecureToken(16)
	if err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	entry := models.ResetToken{Token: token, ExpiresAt: s.store.Now().Add(s.opts.ResetTokenTTL)}
	err = updateBucket(ctx, s.store, keyResets, func(resets *map[string]models.ResetToken) error {
		if *resets == nil {
			*resets = map[string]models.ResetToken{}
		}
		(*resets)[email] = entry
		return nil
	})
	if err != nil {
		return "", err
	}

	link := utils.BuildResetLink(s.opts.FrontendURL, token, email)
	if err := s.mailer.SendPasswordReset(ctx, email, found.Name, link); err != nil {
		logrus.WithError(err).WithField("email", utils.MaskEmail(email)).Warn("password reset email failed")
	}
	return ForgotPasswordMessage, nil
}

// ResetPassword consumes a reset token and stores the new password hash.
func (s *AuthService) ResetPassword(ctx context.Context, password, token, email string) error {
	resets, err := readBucket[map[string]models.ResetToken](ctx, s.store, keyResets)
	if err != nil {
		return err
	}
	entry, ok := resets[email]
	if !ok || entry.Token != token {
		return ErrInvalidResetToken
	}
	if s.store.Now().After(entry.ExpiresAt) {
		return ErrResetTokenExpired
	}

	hash, err := s.store.hashPassword(password)
	if err != nil {
		return err
	}
	err = updateBucket(ctx, s.store, keyUsers, func(users *[]models.UserRecord) error {
		for i := range *users {
			if (*users)[i].Email == email {
				(*users)[i].Password = hash
				return nil
			}
		}
		return ErrUserNotFound
	})
	if err != nil {
		return err
	}

	err = updateBucket(ctx, s.store, keyResets, func(resets *map[string]models.ResetToken) error {
		if cur, ok := (*resets)[email]; !ok || cur.Token != token {
			return storage.ErrSkipWrite
		}
		delete(*resets, email)
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("email", utils.MaskEmail(email)).Info("password reset")
	return nil
}

// PurgeExpired drops expired sessions and reset tokens and reports how many went.
func (s *AuthService) PurgeExpired(ctx context.Context, now time.Time) (sessions, resets int, err error) {
	err = updateBucket(ctx, s.store, keySessions, func(m *map[string]models.Session) error {
		sessions = 0
		for token, sess := range *m {
			if sess.Expired(now) {
				delete(*m, token)
				sessions++
			}
		}
		if sessions == 0 {
			return storage.ErrSkipWrite
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	err = updateBucket(ctx, s.store, keyResets, func(m *map[string]models.ResetToken) error {
		resets = 0
		for email, entry := range *m {
			if now.After(entry.ExpiresAt) {
				delete(*m, email)
				resets++
			}
		}
		if resets == 0 {
			return storage.ErrSkipWrite
		}
		return nil
	})
	if err != nil {
		return sessions, 0, err
	}
	return sessions, resets, nil
}

// IsAuthError reports whether err means the caller has no valid session.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthenticated) || errors.Is(err, ErrSessionExpired)
}
