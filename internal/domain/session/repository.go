package session

import (
	"context"
	"errors"
	"sync"
)

var ErrInvalidSession = errors.New("invalid session")

type Repository interface {
	Save(ctx context.Context, tokenHash string, id Identity) error
	Find(ctx context.Context, tokenHash string) (Identity, error)
	Delete(ctx context.Context, tokenHash string) error
}

// MemoryRepository держит сессии в памяти процесса: без TTL и без
// персистентности, рестарт сервера разлогинивает всех.
type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]Identity
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		sessions: make(map[string]Identity),
	}
}

func (r *MemoryRepository) Save(_ context.Context, tokenHash string, id Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[tokenHash] = id
	return nil
}

func (r *MemoryRepository) Find(_ context.Context, tokenHash string) (Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.sessions[tokenHash]
	if !ok {
		return Identity{}, ErrInvalidSession
	}
	return id, nil
}

func (r *MemoryRepository) Delete(_ context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, tokenHash)
	return nil
}
