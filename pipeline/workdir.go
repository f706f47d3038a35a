package pipeline

import (
	"os"
	"path/filepath"

	"github.com/venicegeo/bf-shoreline-harness/util"
)

// Workdir is the transient directory that owns all per-run output files
// until cleanup. It is exclusively owned by one run for its full lifetime.
type Workdir struct {
	Path     string
	released bool
}

// AcquireWorkdir creates a fresh, uniquely-named transient directory under
// root
func AcquireWorkdir(root string) (*Workdir, error) {
	id, err := util.PsuUUID()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(root, "bf-shoreline-"+id)
	if err = os.MkdirAll(path, 0755); err != nil {
		return nil, err
	}
	return &Workdir{Path: path}, nil
}

// Release recursively removes the directory. Safe to call more than once;
// the removal itself happens exactly once.
func (w *Workdir) Release() error {
	if w.released {
		return nil
	}
	w.released = true
	return os.RemoveAll(w.Path)
}
