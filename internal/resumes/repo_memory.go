package resumes

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo for tests and DB-less development.
type MemoryRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]Resume
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1, items: map[int64]Resume{}}
}

func (r *MemoryRepo) Create(ctx context.Context, fileName, rawText string) (Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resume := Resume{
		ID:         r.nextID,
		FileName:   fileName,
		UploadedAt: time.Now().UTC(),
		RawText:    &rawText,
	}
	resume.Profile.normalize()
	r.nextID++
	r.items[resume.ID] = resume
	return resume, nil
}

func (r *MemoryRepo) Update(ctx context.Context, id int64, upd Update) (Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resume, ok := r.items[id]
	if !ok {
		return Resume{}, ErrNotFound
	}

	resume.FileName = upd.FileName
	resume.RawText = &upd.RawText
	resume.Profile = upd.Profile
	analysis := upd.Analysis
	resume.Analysis = &analysis
	r.items[id] = resume
	return resume, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resume, ok := r.items[id]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return resume, nil
}

func (r *MemoryRepo) List(ctx context.Context, skip, limit int) ([]Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}

	ids := make([]int64, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []Resume{}
	for _, id := range ids {
		if skip > 0 {
			skip--
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id int64) (Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resume, ok := r.items[id]
	if !ok {
		return Resume{}, ErrNotFound
	}
	delete(r.items, id)
	return resume, nil
}

var _ Repo = (*MemoryRepo)(nil)
