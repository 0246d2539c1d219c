package configloader

import (
	"os"
	"path/filepath"
)

// discoverProjectConfig walks upward from workDir looking for the
// project configuration file. Returns the first hit or "".
func discoverProjectConfig(workDir string) string {
	dir := workDir
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
