package hooks_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/foxfetch/pkg/errors"
	"github.com/glorpus-work/foxfetch/pkg/hooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadHookFile(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "check.tengo")
	require.NoError(t, os.WriteFile(script, []byte(`err := "from file"`), 0o644))

	executor := hooks.NewTengoExecutor()
	require.NoError(t, hooks.LoadHookFile(executor, hooks.PostDownload, script))
	assert.True(t, executor.HasScript(hooks.PostDownload))

	err := executor.Execute(context.Background(), hooks.PostDownload, hooks.HookContext{})
	assert.ErrorIs(t, err, errors.ErrHookScript)
}

func TestLoadHookFile_Errors(t *testing.T) {
	dir := t.TempDir()
	wrongExt := filepath.Join(dir, "check.sh")
	require.NoError(t, os.WriteFile(wrongExt, []byte("echo"), 0o644))

	executor := hooks.NewTengoExecutor()
	assert.ErrorIs(t, hooks.LoadHookFile(executor, hooks.PostDownload, wrongExt), errors.ErrHookLoad)
	assert.ErrorIs(t, hooks.LoadHookFile(executor, hooks.PostDownload, filepath.Join(dir, "missing.tengo")), errors.ErrHookLoad)
	assert.False(t, executor.HasScript(hooks.PostDownload))
}

func TestLoadHooksFromDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"post-download.tengo":   "a := 1",
		"download-failed.tengo": "b := 2",
		"pre-install.tengo":     "c := 3",
		"notes.txt":             "ignored",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "post-download.tengo.d"), 0o755))

	executor := hooks.NewTengoExecutor()
	require.NoError(t, hooks.LoadHooksFromDir(executor, dir))
	assert.True(t, executor.HasScript(hooks.PostDownload))
	assert.True(t, executor.HasScript(hooks.DownloadFailed))
	assert.False(t, executor.HasScript("pre-install"))
}

func TestLoadHooksFromDir_Missing(t *testing.T) {
	executor := hooks.NewTengoExecutor()
	assert.NoError(t, hooks.LoadHooksFromDir(executor, filepath.Join(t.TempDir(), "missing")))
}

func TestHookTemplate(t *testing.T) {
	for _, hookType := range hooks.ValidHookTypes() {
		t.Run(string(hookType), func(t *testing.T) {
			template := hooks.HookTemplate(hookType)
			assert.NotContains(t, template, "Unknown hooks type")

			// templates only contain comments and must run as-is
			executor := hooks.NewTengoExecutor()
			executor.AddScript(hookType, template)
			assert.NoError(t, executor.Execute(context.Background(), hookType, hooks.HookContext{}))
		})
	}
	assert.Contains(t, hooks.HookTemplate("pre-install"), "Unknown hooks type")
}
