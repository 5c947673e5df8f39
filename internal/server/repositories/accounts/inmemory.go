package accounts

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/keywarden/internal/common"
	"github.com/dmitrijs2005/keywarden/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used in tests and
// single-process setups.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byUID   map[string]*models.Account
	byEmail map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byUID:   make(map[string]*models.Account),
		byEmail: make(map[string]string),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[account.Email]; exists {
		return nil, common.ErrAccountExists
	}

	stored := *account
	stored.Version = 1
	stored.CreatedAt = time.Now()
	r.byUID[stored.UID] = &stored
	r.byEmail[stored.Email] = stored.UID

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	uid, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *r.byUID[uid]
	return &out, nil
}

func (r *InMemoryRepository) GetByUID(ctx context.Context, uid string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byUID[uid]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *account
	return &out, nil
}

func (r *InMemoryRepository) UpdateVerifierCAS(ctx context.Context, uid string, version int64, upd VerifierUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byUID[uid]
	if !ok {
		return common.ErrNotFound
	}
	if account.Version != version {
		return common.ErrVersionConflict
	}

	account.AuthSalt = upd.AuthSalt
	account.VerifyHash = upd.VerifyHash
	account.Verifier = upd.Verifier
	account.VerifierVersion = upd.VerifierVersion
	account.WrapWrapKb = upd.WrapWrapKb
	account.Version++
	return nil
}

func (r *InMemoryRepository) SetEmailVerified(ctx context.Context, uid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byUID[uid]
	if !ok {
		return common.ErrNotFound
	}
	account.EmailVerified = true
	return nil
}

func (r *InMemoryRepository) SetLocked(ctx context.Context, uid string, locked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byUID[uid]
	if !ok {
		return common.ErrNotFound
	}
	if locked {
		now := time.Now()
		account.LockedAt = &now
	} else {
		account.LockedAt = nil
	}
	return nil
}
