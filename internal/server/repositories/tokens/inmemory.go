package tokens

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/keywarden/internal/common"
	"github.com/dmitrijs2005/keywarden/internal/server/models"
)

type recordKey struct {
	kind string
	id   string
}

// InMemoryRepository is a map-backed Repository used in tests and
// single-process setups.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[recordKey]*models.TokenRecord
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{records: make(map[recordKey]*models.TokenRecord)}
}

func (r *InMemoryRepository) Put(ctx context.Context, record *models.TokenRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *record
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.records[recordKey{record.Kind, record.ID}] = &stored
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, kind, id string) (*models.TokenRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[recordKey{kind, id}]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *record
	return &out, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, kind, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, recordKey{kind, id})
	return nil
}

func (r *InMemoryRepository) DeleteAllForAccount(ctx context.Context, uid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, record := range r.records {
		if record.UID == uid {
			delete(r.records, key)
		}
	}
	return nil
}

func (r *InMemoryRepository) SetVerified(ctx context.Context, kind, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[recordKey{kind, id}]
	if !ok {
		return common.ErrNotFound
	}
	record.VerificationID = nil
	return nil
}

func (r *InMemoryRepository) FindByVerificationCode(ctx context.Context, uid, code string) (*models.TokenRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, record := range r.records {
		if record.UID == uid && record.VerificationID != nil && *record.VerificationID == code {
			out := *record
			return &out, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *InMemoryRepository) UpdateTries(ctx context.Context, kind, id string, tries int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[recordKey{kind, id}]
	if !ok {
		return common.ErrNotFound
	}
	record.Tries = tries
	return nil
}
