package repository

import (
	"context"

	"github.com/azamatb/notekeeper/internal/domain"
)

// NoteRepository persists notes. Every lookup and mutation takes the owner's
// user ID alongside the note ID; a note that exists under a different owner
// must be reported as domain.ErrNoteNotFound.
//
// Usecases depend on the interface so tests can inject a fake and the
// storage backend stays swappable.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Note, error)
	GetByID(ctx context.Context, noteID, ownerID string) (*domain.Note, error)
	Update(ctx context.Context, noteID, ownerID, title, content string) error
	Delete(ctx context.Context, noteID, ownerID string) error
}
