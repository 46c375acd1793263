package dialog

import (
	"sync"

	"github.com/NamanBalaji/tmodal/internal/logger"
)

var (
	instanceMu sync.Mutex
	instance   *Manager
)

// Install makes m the application-wide manager returned by Instance.
func Install(m *Manager) {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	instance = m
}

// Uninstall forgets the application-wide manager.
func Uninstall() {
	Install(nil)
}

// Instance returns the application-wide manager. Every call returns the same
// pointer until Install is called again.
func Instance() (*Manager, error) {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance == nil {
		logger.Errorf("No modal manager installed: wire one with dialog.Install before showing dialogs")
		return nil, ErrNotConfigured
	}

	return instance, nil
}
