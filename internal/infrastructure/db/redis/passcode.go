package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// passcodeTTL bounds how long an arrival passcode stays redeemable.
const passcodeTTL = 30 * time.Minute

// PasscodeStore holds one-time arrival passcodes in Redis.
// Key format: passcode:<job_id>
type PasscodeStore struct {
	client *redis.Client
}

// NewPasscodeStore creates a PasscodeStore wrapping the given Redis client.
func NewPasscodeStore(client *redis.Client) *PasscodeStore {
	return &PasscodeStore{client: client}
}

// Issue stores the passcode for the job, replacing any previous one. The code
// expires after passcodeTTL.
func (s *PasscodeStore) Issue(ctx context.Context, jobID, code string) error {
	if err := s.client.Set(ctx, s.key(jobID), code, passcodeTTL).Err(); err != nil {
		return fmt.Errorf("issue passcode: %w", err)
	}
	return nil
}

// Redeem reports whether the supplied code matches the job's stored passcode
// and deletes it on a match, making the code single use. An absent or expired
// code never matches.
func (s *PasscodeStore) Redeem(ctx context.Context, jobID, code string) (bool, error) {
	key := s.key(jobID)
	stored, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redeem passcode: %w", err)
	}
	if stored != code {
		return false, nil
	}
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return false, fmt.Errorf("consume passcode: %w", err)
	}
	return true, nil
}

func (s *PasscodeStore) key(jobID string) string {
	return "passcode:" + jobID
}
