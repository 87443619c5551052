package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/linesplice/internal/configloader"
)

func mkdirs(t *testing.T, parts ...string) string {
	t.Helper()
	dir := filepath.Join(parts...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	return dir
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("target: index.html\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFindProjectConfig(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkdirs(t, root, ".git")
	nested := mkdirs(t, root, "site", "public")
	touch(t, filepath.Join(root, configloader.ProjectConfigName))

	got, err := configloader.FindProjectConfig(context.Background(), nested)
	if err != nil {
		t.Fatalf("FindProjectConfig: %v", err)
	}
	if want := filepath.Join(root, configloader.ProjectConfigName); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFindProjectConfig_NearestWins(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkdirs(t, root, ".git")
	site := mkdirs(t, root, "site")
	touch(t, filepath.Join(root, configloader.ProjectConfigName))
	touch(t, filepath.Join(site, "linesplice.yaml"))

	got, err := configloader.FindProjectConfig(context.Background(), site)
	if err != nil {
		t.Fatalf("FindProjectConfig: %v", err)
	}
	if want := filepath.Join(site, "linesplice.yaml"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	touch(t, filepath.Join(outer, configloader.ProjectConfigName))
	repo := mkdirs(t, outer, "repo")
	mkdirs(t, repo, ".git")

	got, err := configloader.FindProjectConfig(context.Background(), repo)
	if err != nil {
		t.Fatalf("FindProjectConfig: %v", err)
	}
	if got != "" {
		t.Errorf("search crossed the VCS root, found %q", got)
	}
}

func TestFindProjectConfig_IgnoresDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkdirs(t, root, ".git")
	mkdirs(t, root, configloader.ProjectConfigName)

	got, err := configloader.FindProjectConfig(context.Background(), root)
	if err != nil {
		t.Fatalf("FindProjectConfig: %v", err)
	}
	if got != "" {
		t.Errorf("expected no config, got %q", got)
	}
}

func TestDiscoverPaths_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := configloader.DiscoverPaths(ctx, t.TempDir()); err == nil {
		t.Error("expected error for cancelled context")
	}
}
