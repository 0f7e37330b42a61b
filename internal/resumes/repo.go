package resumes

import "context"

// Repo is the persistence boundary for resume records.
//
// Create inserts a pending record holding only the file name and raw text.
// Update applies the one-shot enrichment and returns the full record.
// Both Update and Delete return ErrNotFound when the id does not exist.
type Repo interface {
	Create(ctx context.Context, fileName, rawText string) (Resume, error)
	Update(ctx context.Context, id int64, upd Update) (Resume, error)
	GetByID(ctx context.Context, id int64) (Resume, error)
	List(ctx context.Context, skip, limit int) ([]Resume, error)
	Delete(ctx context.Context, id int64) (Resume, error)
}
