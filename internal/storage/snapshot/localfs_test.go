// internal/storage/snapshot/localfs_test.go
package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestLocalFS_ImplementsSource(t *testing.T) {
	var _ Source = (*LocalFS)(nil)
}

func writeFile(t *testing.T, dir, path, data string) {
	t.Helper()
	full := filepath.Join(dir, path)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestNewLocalFS_MissingDir(t *testing.T) {
	if _, err := NewLocalFS(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestLocalFS_Read(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "markets/42/yes.json", "[]")

	fs, err := NewLocalFS(dir)
	if err != nil {
		t.Fatalf("NewLocalFS: %v", err)
	}

	got, err := fs.Read(context.Background(), "markets/42/yes.json")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("got %q, want []", got)
	}
}

func TestLocalFS_RejectsEscape(t *testing.T) {
	fs, _ := NewLocalFS(t.TempDir())
	if _, err := fs.Read(context.Background(), "../../etc/passwd"); err == nil {
		t.Error("expected error for path outside snapshot dir")
	}
}

func TestLocalFS_Exists(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", "{}")
	fs, _ := NewLocalFS(dir)
	ctx := context.Background()

	if ok, err := fs.Exists(ctx, "a.json"); err != nil || !ok {
		t.Errorf("Exists(a.json) = %v, %v", ok, err)
	}
	if ok, err := fs.Exists(ctx, "b.json"); err != nil || ok {
		t.Errorf("Exists(b.json) = %v, %v", ok, err)
	}
}

func TestLocalFS_List(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "markets/1/yes.json", "[]")
	writeFile(t, dir, "markets/1/no.json", "[]")
	writeFile(t, dir, "other/x.json", "[]")
	fs, _ := NewLocalFS(dir)

	paths, err := fs.List(context.Background(), "markets")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	sort.Strings(paths)
	want := []string{"markets/1/no.json", "markets/1/yes.json"}
	if len(paths) != len(want) {
		t.Fatalf("got %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %s, want %s", i, paths[i], want[i])
		}
	}

	empty, err := fs.List(context.Background(), "nothing")
	if err != nil || len(empty) != 0 {
		t.Errorf("List(nothing) = %v, %v", empty, err)
	}
}
