package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanServiceRun(t *testing.T) {
	dir := t.TempDir()
	content := "export noise\nName,Age\n主要人员 2,x\nAlice,30\n\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte(content), 0o644))

	s := NewCleanService(testConfig(t), false, false, nil)
	summary, err := s.Run(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Files)
	assert.Zero(t, summary.Failed)
	assert.Equal(t, 2, summary.Kept)
	assert.Equal(t, 3, summary.Dropped)
	assert.Empty(t, summary.BackupDir)

	out, err := os.ReadFile(filepath.Join(dir, "a.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Name,Age\nAlice,30\n", string(out))
}

func TestCleanServiceDryRun(t *testing.T) {
	dir := t.TempDir()
	content := "noise\nAlice,30\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte(content), 0o644))

	s := NewCleanService(testConfig(t), true, true, nil)
	summary, err := s.Run(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Kept)
	assert.Equal(t, 1, summary.Dropped)

	out, err := os.ReadFile(filepath.Join(dir, "a.csv"))
	require.NoError(t, err)
	assert.Equal(t, content, string(out))
}

func TestCleanServiceBackup(t *testing.T) {
	dir := t.TempDir()
	content := "noise\nAlice,30\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte(content), 0o644))

	s := NewCleanService(testConfig(t), false, true, nil)
	summary, err := s.Run(context.Background(), dir)
	require.NoError(t, err)

	require.NotEmpty(t, summary.BackupDir)
	backed, err := os.ReadFile(filepath.Join(summary.BackupDir, "a.csv"))
	require.NoError(t, err)
	assert.Equal(t, content, string(backed))
}

func TestCleanServiceEmptyFolder(t *testing.T) {
	s := NewCleanService(testConfig(t), false, false, nil)
	summary, err := s.Run(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, summary.Files)
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.CSV"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "backup"), 0o755))

	files, err := listFiles(dir, ".csv")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "a.CSV"), files[0])
	assert.Equal(t, filepath.Join(dir, "b.csv"), files[1])
}
