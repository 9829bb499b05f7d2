package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/azamatb/notekeeper/internal/domain"
	"github.com/azamatb/notekeeper/internal/metrics"
	"github.com/gin-gonic/gin"
)

// noteUsecaser is the subset of NoteUsecase the handler needs.
type noteUsecaser interface {
	Create(ctx context.Context, ownerID, title, content string) (*domain.Note, error)
	List(ctx context.Context, ownerID string) ([]*domain.Note, error)
	Get(ctx context.Context, ownerID, noteID string) (*domain.Note, error)
	Update(ctx context.Context, ownerID, noteID, title, content string) error
	Delete(ctx context.Context, ownerID, noteID string) error
}

type NoteHandler struct {
	notes  noteUsecaser
	logger *slog.Logger
}

func NewNoteHandler(notes noteUsecaser, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{notes: notes, logger: logger.With("component", "note_handler")}
}

type noteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type noteResponse struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func toNoteResponse(n *domain.Note) noteResponse {
	return noteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
	}
}

// POST /api/notes
func (h *NoteHandler) Create(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingNoteFields})
		return
	}

	note, err := h.notes.Create(c.Request.Context(), c.GetString("userID"), req.Title, req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errMissingNoteFields})
			return
		}
		h.logger.Error("create note", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.NoteOperationsTotal.WithLabelValues("create").Inc()
	c.JSON(http.StatusOK, gin.H{"_id": note.ID, "message": "Note created successfully"})
}

// GET /api/notes
func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.notes.List(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.logger.Error("list notes", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	resp := make([]noteResponse, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, toNoteResponse(n))
	}

	metrics.NoteOperationsTotal.WithLabelValues("list").Inc()
	c.JSON(http.StatusOK, resp)
}

// GET /api/notes/:id
func (h *NoteHandler) Get(c *gin.Context) {
	note, err := h.notes.Get(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errNoteNotFound})
			return
		}
		h.logger.Error("get note", "note_id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.NoteOperationsTotal.WithLabelValues("get").Inc()
	c.JSON(http.StatusOK, toNoteResponse(note))
}

// PUT /api/notes/:id
func (h *NoteHandler) Update(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingNoteFields})
		return
	}

	err := h.notes.Update(c.Request.Context(), c.GetString("userID"), c.Param("id"), req.Title, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": errMissingNoteFields})
		case errors.Is(err, domain.ErrNoteNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errNoteNotFound})
		default:
			h.logger.Error("update note", "note_id", c.Param("id"), "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	metrics.NoteOperationsTotal.WithLabelValues("update").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Note updated successfully"})
}

// DELETE /api/notes/:id
func (h *NoteHandler) Delete(c *gin.Context) {
	err := h.notes.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errNoteNotFound})
			return
		}
		h.logger.Error("delete note", "note_id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.NoteOperationsTotal.WithLabelValues("delete").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
