// Package cache prunes stale files from the application cache directory.
package cache

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/vidrock-cli/vidrock/filesystem"
	"github.com/vidrock-cli/vidrock/log"
	"github.com/vidrock-cli/vidrock/util"
	"github.com/vidrock-cli/vidrock/where"
)

// TTL is how long an untouched cache file survives.
const TTL = 30 * 24 * time.Hour

// Prune removes files under dir not modified since before now-TTL, along with
// leftover temporary files of interrupted writes. It returns the removed paths.
func Prune(dir string, now time.Time) ([]string, error) {
	fs := filesystem.API()
	var removed []string

	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		stale := now.Sub(info.ModTime()) > TTL
		if !stale && !strings.HasSuffix(info.Name(), ".tmp") {
			return nil
		}

		if err := fs.Remove(path); err != nil {
			log.Warnf("cache: remove %s: %v", filepath.Base(path), err)
			return nil
		}
		removed = append(removed, path)
		return nil
	})

	return removed, err
}

// CollectGarbage prunes the cache directory in the background.
func CollectGarbage() {
	go func() {
		removed, err := Prune(where.Cache(), time.Now())
		if err != nil {
			log.Warnf("cache: %v", err)
			return
		}
		if len(removed) > 0 {
			log.Infof("cache: pruned %s", util.Quantify(len(removed), "file", "files"))
		}
	}()
}
