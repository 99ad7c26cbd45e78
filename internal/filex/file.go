// Package filex contains small filesystem helpers for the CLI.
package filex

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MaxAvatarSize bounds the image files accepted by ReadDataURL.
const MaxAvatarSize = 2 << 20

// EnsureParentDir creates the directory that will hold path, so that a
// database file can be opened there. Paths without a directory component
// and SQLite in-memory DSNs are left alone.
func EnsureParentDir(path string) error {
	if path == "" || path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// ReadDataURL reads an image file and returns it as a base64 data URL
// ("data:image/png;base64,...").
func ReadDataURL(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.Size() > MaxAvatarSize {
		return "", fmt.Errorf("%s is too large (%d bytes, max %d)", path, fi.Size(), MaxAvatarSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%s is not an image (%s)", path, mime)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
