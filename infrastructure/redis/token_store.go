package redis

import (
	"context"
	"time"
)

const refreshTokenPrefix = "refresh_token:"

// TokenStore keeps issued refresh tokens so they can be revoked before expiry.
// The key's TTL tracks the token's own lifetime.
type TokenStore struct {
	client *Client
}

func NewTokenStore(client *Client) *TokenStore {
	return &TokenStore{client: client}
}

// Save whitelists a refresh token id for the given user until ttl elapses.
func (s *TokenStore) Save(ctx context.Context, tokenID, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, refreshTokenPrefix+tokenID, userID, ttl)
}

// IsValid reports whether the refresh token id is still whitelisted.
func (s *TokenStore) IsValid(ctx context.Context, tokenID string) (bool, error) {
	return s.client.Exists(ctx, refreshTokenPrefix+tokenID)
}

// Revoke drops the token id; subsequent refreshes with it fail.
func (s *TokenStore) Revoke(ctx context.Context, tokenID string) error {
	return s.client.Del(ctx, refreshTokenPrefix+tokenID)
}
