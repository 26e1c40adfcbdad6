package digest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Hiyashree/birthday-project/mailer"
	"github.com/Hiyashree/birthday-project/models"
)

// AccountSource lists every account the digest should consider.
type AccountSource interface {
	All(ctx context.Context) ([]models.User, error)
}

// FriendSource selects the friend candidates for one account. The digest only
// ever sees friends through this interface, so the candidate-selection
// semantics can be swapped without touching the job itself.
type FriendSource interface {
	AcceptedFriends(ctx context.Context, userID string) ([]models.User, error)
}

// Job composes and sends one birthday digest email per account whose friends
// have a birthday today. It runs once per calendar day.
type Job struct {
	accounts AccountSource
	friends  FriendSource
	sender   mailer.Sender
	log      *zap.SugaredLogger
	now      func() time.Time
}

func NewJob(accounts AccountSource, friends FriendSource, sender mailer.Sender, log *zap.SugaredLogger) *Job {
	return &Job{
		accounts: accounts,
		friends:  friends,
		sender:   sender,
		log:      log,
		now:      time.Now,
	}
}

// Register schedules the job on the given cron runner. Run errors are logged;
// the next scheduled run is unaffected.
func (j *Job) Register(c *cron.Cron, spec string) error {
	_, err := c.AddFunc(spec, func() {
		j.log.Infow("running birthday digest")
		if err := j.Run(context.Background()); err != nil {
			j.log.Errorw("birthday digest aborted", "error", err)
		}
	})
	return err
}

// Run walks every account once. Sends are not retried, and the first send
// failure aborts the rest of the run.
func (j *Job) Run(ctx context.Context) error {
	today := j.now().Format("01-02")

	users, err := j.accounts.All(ctx)
	if err != nil {
		return err
	}

	for i := range users {
		user := &users[i]

		friends, err := j.friends.AcceptedFriends(ctx, user.ID)
		if err != nil {
			return err
		}

		var names []string
		for _, f := range friends {
			if monthDay(f.Birthday) == today {
				names = append(names, f.Name)
			}
		}
		if len(names) == 0 {
			continue
		}

		body := fmt.Sprintf(
			"Hey %s, today is %s's birthday!\n\nMake sure to send them your wishes!",
			user.Name, strings.Join(names, ", "),
		)
		if err := j.sender.Send(user.Email, "Birthday Alert!", body); err != nil {
			return err
		}
		j.log.Infow("sent birthday digest", "to", user.Email, "birthdays", len(names))
	}

	return nil
}

// monthDay extracts MM-DD from a YYYY-MM-DD birthday string. Anything shorter
// never matches.
func monthDay(birthday string) string {
	if len(birthday) < 10 {
		return ""
	}
	return birthday[5:10]
}
