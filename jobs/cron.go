package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const purgeTimeout = time.Minute

// SessionPurger removes expired sessions and reset tokens.
type SessionPurger interface {
	PurgeExpired(ctx context.Context, now time.Time) (sessions, resets int, err error)
}

// PurgeExpired runs one purge pass and logs what it removed.
func PurgeExpired(ctx context.Context, p SessionPurger, now time.Time) {
	ctx, cancel := context.WithTimeout(ctx, purgeTimeout)
	defer cancel()

	sessions, resets, err := p.PurgeExpired(ctx, now)
	if err != nil {
		logrus.WithError(err).Error("purge of expired sessions failed")
		return
	}
	if sessions > 0 || resets > 0 {
		logrus.WithFields(logrus.Fields{"sessions": sessions, "reset_tokens": resets}).Info("expired auth records purged")
	}
}

// InitCronJobs registers the background jobs on c and starts it.
func InitCronJobs(c *cron.Cron, schedule string, p SessionPurger) error {
	_, err := c.AddFunc(schedule, func() {
		PurgeExpired(context.Background(), p, time.Now())
	})
	if err != nil {
		return err
	}

	c.Start()
	logrus.WithField("schedule", schedule).Info("cron jobs initialized")
	return nil
}
