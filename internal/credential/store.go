package credential

import (
	"context"
	"errors"
	"sync"

	"github.com/dailyhub/dailyhub/internal/cache"
)

// Store persists cached credentials by name.
type Store interface {
	Load(ctx context.Context, name string) (Credential, bool, error)
	Save(ctx context.Context, name string, cred Credential) error
}

// MemoryStore keeps credentials in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	creds map[string]Credential
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{creds: make(map[string]Credential)}
}

// Load returns the stored credential, if any.
func (s *MemoryStore) Load(_ context.Context, name string) (Credential, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cred, ok := s.creds[name]
	return cred, ok, nil
}

// Save overwrites the stored credential.
func (s *MemoryStore) Save(_ context.Context, name string, cred Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds[name] = cred
	return nil
}

// RedisStore shares credentials between gateway replicas through Redis.
type RedisStore struct {
	cache *cache.Cache
}

// NewRedisStore creates a RedisStore.
func NewRedisStore(c *cache.Cache) *RedisStore {
	return &RedisStore{cache: c}
}

// Load returns the stored credential, if any.
func (s *RedisStore) Load(ctx context.Context, name string) (Credential, bool, error) {
	token, expiresAt, err := s.cache.GetCredential(ctx, name)
	if errors.Is(err, cache.ErrCacheMiss) {
		return Credential{}, false, nil
	}
	if err != nil {
		return Credential{}, false, err
	}
	return Credential{Token: token, ExpiresAt: expiresAt}, true, nil
}

// Save stores the credential until it expires.
func (s *RedisStore) Save(ctx context.Context, name string, cred Credential) error {
	return s.cache.SetCredential(ctx, name, cred.Token, cred.ExpiresAt)
}
