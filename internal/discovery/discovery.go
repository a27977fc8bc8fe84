package discovery

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"repodepot/internal/domain"
)

// maxDepth is the depth of <owner>/<name> below the clone directory
const maxDepth = 2

// Inventory records the repositories already present in a clone directory,
// keyed by "owner/name".
type Inventory struct {
	mu    sync.RWMutex
	repos map[string]string
}

// NewInventory returns an empty inventory
func NewInventory() *Inventory {
	return &Inventory{repos: make(map[string]string)}
}

// Add records a checkout at path
func (inv *Inventory) Add(owner, name, path string) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.repos[key(owner, name)] = path
}

// Contains reports whether the repository identified by id is already
// checked out.
func (inv *Inventory) Contains(id string) bool {
	if inv == nil {
		return false
	}
	owner, name, ok := domain.OwnerAndName(id)
	if !ok {
		return false
	}
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	_, found := inv.repos[key(owner, name)]
	return found
}

// Len returns the number of known checkouts
func (inv *Inventory) Len() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.repos)
}

func key(owner, name string) string {
	return strings.ToLower(owner + "/" + name)
}

// Scan walks root looking for <owner>/<name> directories that contain a
// .git entry. A missing root yields an empty inventory.
func Scan(ctx context.Context, root string) (*Inventory, error) {
	inv := NewInventory()

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			if path == root && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			log.Printf("Error walking path %s: %v", path, err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		relPath, _ := filepath.Rel(root, path)
		if relPath == "." {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return fs.SkipDir
		}

		depth := strings.Count(relPath, string(filepath.Separator)) + 1
		if depth < maxDepth {
			return nil
		}

		if isCheckout(path) {
			owner := filepath.Base(filepath.Dir(path))
			inv.Add(owner, d.Name(), path)
		}
		// Never descend into a checkout or past <owner>/<name>
		return fs.SkipDir
	})

	if err != nil {
		log.Printf("Error scanning directory %s: %v", root, err)
		return inv, err
	}
	log.Printf("Found %d existing checkouts in %s", inv.Len(), root)
	return inv, nil
}

// isCheckout reports whether dir holds a .git directory or gitfile
func isCheckout(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
