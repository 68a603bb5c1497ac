package fsx

import (
	"context"
	"io"
	"path"
	"strings"
)

// FileSystem stores uploaded files under slash-separated keys
type FileSystem interface {
	WriteFile(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	ReadFile(ctx context.Context, key string) ([]byte, error)
	DeleteFile(ctx context.Context, key string) error
}

// Join builds a clean key from parts, dropping empty ones and any leading slash
func Join(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.Trim(p, "/"); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.TrimPrefix(path.Clean("/"+strings.Join(kept, "/")), "/")
}

// SanitizeName keeps the base name of an uploaded file and replaces characters unsafe in keys
func SanitizeName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if out := b.String(); out != "" && out != "." && out != ".." {
		return out
	}
	return "file"
}
