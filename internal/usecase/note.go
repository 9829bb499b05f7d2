package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/azamatb/notekeeper/internal/domain"
	"github.com/azamatb/notekeeper/internal/repository"
	"github.com/google/uuid"
)

// NoteUsecase implements owner-scoped CRUD over notes. The owner ID always
// comes from the verified access token, never from the request body or path.
type NoteUsecase struct {
	repo repository.NoteRepository
}

func NewNoteUsecase(repo repository.NoteRepository) *NoteUsecase {
	return &NoteUsecase{repo: repo}
}

func (u *NoteUsecase) Create(ctx context.Context, ownerID, title, content string) (*domain.Note, error) {
	if title == "" || content == "" {
		return nil, domain.ErrValidation
	}

	note := &domain.Note{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

// List returns every note the owner has. No notes is an empty list, not an
// error.
func (u *NoteUsecase) List(ctx context.Context, ownerID string) ([]*domain.Note, error) {
	notes, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (u *NoteUsecase) Get(ctx context.Context, ownerID, noteID string) (*domain.Note, error) {
	note, err := u.repo.GetByID(ctx, noteID, ownerID)
	if err != nil {
		return nil, err
	}
	return note, nil
}

// Update replaces title and content wholesale; createdAt is immutable.
func (u *NoteUsecase) Update(ctx context.Context, ownerID, noteID, title, content string) error {
	if title == "" || content == "" {
		return domain.ErrValidation
	}
	return u.repo.Update(ctx, noteID, ownerID, title, content)
}

func (u *NoteUsecase) Delete(ctx context.Context, ownerID, noteID string) error {
	return u.repo.Delete(ctx, noteID, ownerID)
}
