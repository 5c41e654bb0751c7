// Package testutil provides shared helpers for tests that build fixture trees.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteFixture writes content to dir/name, creating parent directories, and
// returns the full path.
func WriteFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create fixture dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
	return path
}

// BackendTicketJSON returns a minimal valid backend ticket fixture.
func BackendTicketJSON(key string) string {
	return fmt.Sprintf(`{
  "key": %q,
  "summary": "Expose bulk export endpoint",
  "type": "backend",
  "services": ["export-api"]
}`, key)
}

// MergeRequestJSON returns a minimal valid merge-request fixture with the
// given pipeline status.
func MergeRequestJSON(id int, status string) string {
	return fmt.Sprintf(`{
  "id": %d,
  "title": "Add export endpoint",
  "source_branch": "feature/bulk-export",
  "target_branch": "main",
  "pipeline_status": %q
}`, id, status)
}
