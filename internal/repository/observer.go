package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/NamanBalaji/tmodal/internal/dialog"
	"github.com/NamanBalaji/tmodal/internal/logger"
)

// HistoryObserver records every dialog shown by a dialog.Manager.
// Storage failures are logged and never reach the dialog.
type HistoryObserver struct {
	repo *BoltDBRepository
	now  func() time.Time
}

// NewHistoryObserver creates an observer writing to repo.
func NewHistoryObserver(repo *BoltDBRepository) *HistoryObserver {
	return &HistoryObserver{
		repo: repo,
		now:  time.Now,
	}
}

func (h *HistoryObserver) DialogShown(id uuid.UUID, content dialog.Content, allocated int) {
	record := &Record{
		ID:      id,
		Title:   content.Title(),
		Body:    content.Body(),
		Icon:    string(content.Icon()),
		Buttons: content.Labels(),
		Shown:   allocated,
		ShownAt: h.now(),
	}

	if err := h.repo.Save(record); err != nil {
		logger.Errorf("Failed to record dialog %s: %v", id, err)
	}
}

func (h *HistoryObserver) ButtonPressed(id uuid.UUID, _ int, label string) {
	err := h.repo.Update(id, func(r *Record) {
		r.Pressed = label
	})
	if err != nil {
		logger.Errorf("Failed to record press of %q on dialog %s: %v", label, id, err)
	}
}

func (h *HistoryObserver) DialogClosed(id uuid.UUID) {
	err := h.repo.Update(id, func(r *Record) {
		r.ClosedAt = h.now()
	})
	if err != nil {
		logger.Errorf("Failed to record close of dialog %s: %v", id, err)
	}
}
