package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// CaptchaPrefix is the Redis key prefix for login captcha answers
	CaptchaPrefix = "turnero:captcha:"
	// CaptchaTTL is the default lifetime of a captcha challenge
	CaptchaTTL = 5 * time.Minute
)

// ErrCaptchaNotFound is returned when a challenge expired or was already used.
var ErrCaptchaNotFound = errors.New("captcha not found or expired")

// CaptchaStore keeps login captcha answers in Redis. Answers are single use.
type CaptchaStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewCaptchaStore(client *redis.Client, ttl time.Duration) *CaptchaStore {
	if ttl <= 0 {
		ttl = CaptchaTTL
	}
	return &CaptchaStore{
		client: client,
		prefix: CaptchaPrefix,
		ttl:    ttl,
	}
}

func (s *CaptchaStore) Save(ctx context.Context, captchaID, answer string) error {
	if captchaID == "" || answer == "" {
		return errors.New("captcha id and answer are required")
	}

	if err := s.client.Set(ctx, s.prefix+captchaID, answer, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store captcha in redis: %w", err)
	}
	return nil
}

// Consume returns the stored answer and deletes it in one GETDEL.
func (s *CaptchaStore) Consume(ctx context.Context, captchaID string) (string, error) {
	if captchaID == "" {
		return "", ErrCaptchaNotFound
	}

	answer, err := s.client.GetDel(ctx, s.prefix+captchaID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCaptchaNotFound
		}
		return "", fmt.Errorf("failed to read captcha from redis: %w", err)
	}
	return answer, nil
}

func (s *CaptchaStore) TTL() time.Duration {
	return s.ttl
}
