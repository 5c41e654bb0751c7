package core

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/donedone/dod-core/core/generator"
)

// PersistArtifacts writes each generated DoD document into the filesystem
// under the given root directory as <ticket-key>-dod.md.
// Behavior:
// - Creates parent directories as needed (0755 perms).
// - Overwrites existing files (0644 perms).
// - Rejects ticket keys that would escape the provided root via path traversal.
func PersistArtifacts(_ context.Context, root string, artifacts []generator.Artifact) error {
	log := slog.With("op", "PersistArtifacts")
	if strings.TrimSpace(root) == "" {
		return fmt.Errorf("root path cannot be empty")
	}

	root = filepath.Clean(root)

	for i, a := range artifacts {
		if strings.TrimSpace(a.TicketKey) == "" {
			return fmt.Errorf("artifact %d: ticket key cannot be empty", i)
		}
		if a.Content == "" {
			return fmt.Errorf("artifact %d: content cannot be empty", i)
		}

		rel := filepath.Clean(strings.ToLower(a.TicketKey) + "-dod.md")
		if filepath.IsAbs(rel) {
			rel = strings.TrimPrefix(rel, string(os.PathSeparator))
		}
		full := filepath.Clean(filepath.Join(root, rel))

		if !isPathWithinRoot(root, full) {
			return fmt.Errorf("artifact %d: path escapes root: %s", i, a.TicketKey)
		}

		dir := filepath.Dir(full)
		log.Debug("Creating directory", "dir", dir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("artifact %d: failed to create directories for %s: %w", i, full, err)
		}

		content := fmt.Sprintf("<!-- dod %s generated %s -->\n%s",
			a.ID, a.GeneratedAt.Format("2006-01-02T15:04:05Z"), a.Content)

		log.Debug("Writing artifact", "rel", rel, "full", full)
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			return fmt.Errorf("artifact %d: failed to write file %s: %w", i, full, err)
		}
	}
	return nil
}

// isPathWithinRoot checks whether target is inside root directory.
func isPathWithinRoot(root, target string) bool {
	rootClean := filepath.Clean(root)
	targetClean := filepath.Clean(target)

	rel, err := filepath.Rel(rootClean, targetClean)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	if rel == ".." {
		return false
	}
	if strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return false
	}
	return true
}
