package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/hernifleitas/sos-delivery-sub000/pkg/e"

	goredis "github.com/redis/go-redis/v9"
)

// SessionResolver reads the session tokens the external auth service keeps
// in redis. It only answers "who sent this"; it grants nothing.
type SessionResolver struct {
	client *goredis.Client
	prefix string
}

func NewSessionResolver(r *Redis) *SessionResolver {
	return &SessionResolver{
		client: r.Client,
		prefix: "sessions:",
	}
}

func (s *SessionResolver) Resolve(ctx context.Context, credential string) (string, error) {
	if credential == "" {
		return "", e.ErrUnknownIdentity
	}

	identity, err := s.client.Get(ctx, s.prefix+credential).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", e.ErrUnknownIdentity
		}
		return "", fmt.Errorf("session lookup: %w", e.ErrCollaborator)
	}
	return identity, nil
}
