package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/azamatb/notekeeper/internal/domain"
	"github.com/jackc/pgx/v5"
)

type NoteRepository struct {
	pool Pool
}

func NewNoteRepository(pool Pool) *NoteRepository {
	return &NoteRepository{pool: pool}
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO notes (id, user_id, title, content, created_at) VALUES ($1, $2, $3, $4, $5)`,
		note.ID, note.UserID, note.Title, note.Content, note.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

func (r *NoteRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Note, error) {
	query := `
		SELECT id, user_id, title, content, created_at
		FROM notes
		WHERE user_id = $1`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// GetByID filters by both note ID and owner, so a note belonging to another
// user is indistinguishable from a missing one.
func (r *NoteRepository) GetByID(ctx context.Context, noteID, ownerID string) (*domain.Note, error) {
	query := `
		SELECT id, user_id, title, content, created_at
		FROM notes
		WHERE id = $1 AND user_id = $2`

	row := r.pool.QueryRow(ctx, query, noteID, ownerID)
	return scanNote(row)
}

// Update replaces title and content wholesale. created_at is never touched.
func (r *NoteRepository) Update(ctx context.Context, noteID, ownerID, title, content string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE notes SET title = $3, content = $4 WHERE id = $1 AND user_id = $2`,
		noteID, ownerID, title, content,
	)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, noteID, ownerID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND user_id = $2`,
		noteID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

func scanNote(row pgx.Row) (*domain.Note, error) {
	var n domain.Note
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("scan note: %w", err)
	}
	return &n, nil
}
