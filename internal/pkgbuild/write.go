package pkgbuild

import (
	"fmt"

	"github.com/google/renameio/v2"
)

// WriteFile renders the recipe to path, replacing any existing file. The
// write goes through a pending temp file and an atomic rename, so a failed
// run never leaves a partial recipe behind.
func WriteFile(path string, r *Recipe) error {
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending recipe file: %w", err)
	}
	defer pending.Cleanup()

	if err := Write(pending, r); err != nil {
		return fmt.Errorf("write recipe: %w", err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace recipe file: %w", err)
	}

	return nil
}
