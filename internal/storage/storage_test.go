package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/income-recorder/backend/internal/models"
	"github.com/income-recorder/backend/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, code, description, date, income, wht string) models.Record {
	t.Helper()

	r, err := models.NewRecord(code, description, date,
		decimal.RequireFromString(income), decimal.RequireFromString(wht))
	require.NoError(t, err)

	return r
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data", "income_data.txt")
	records := []models.Record{
		record(t, "IN001", "Freelance Work", "25/07/2025", "10000", "1000"),
		record(t, "IN002", "Salary July", "31/07/2025", "50000", "5000"),
	}

	require.NoError(t, storage.Save(path, records))

	loaded, skipped, err := storage.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Len(t, loaded, 2)
	assert.Equal(t, records[0].StorageLine(), loaded[0].StorageLine())
	assert.Equal(t, records[1].StorageLine(), loaded[1].StorageLine())
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	records, skipped, err := storage.Load(filepath.Join(t.TempDir(), "does_not_exist.txt"))
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 0, skipped)
}

func TestLoadSkipsBadLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "income_data.txt")
	content := "IN001|Freelance Work|25/07/2025|10000.00|1000.00\n" +
		"this is not a record\n" +
		"\n" +
		"IN002|Salary July|31/07/2025|50000.00|5000.00\n" +
		"IN003|Bad Date|32/01/2025|100.00|0.00\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, skipped, err := storage.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, skipped, "bad lines are skipped and counted, blank lines are ignored")
	require.Len(t, records, 2)
	assert.Equal(t, "IN001", records[0].Code)
	assert.Equal(t, "IN002", records[1].Code)
}

func TestSaveOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "income_data.txt")

	require.NoError(t, storage.Save(path, []models.Record{
		record(t, "IN001", "Freelance Work", "25/07/2025", "10000", "1000"),
	}))
	require.NoError(t, storage.Save(path, []models.Record{
		record(t, "IN002", "Salary July", "31/07/2025", "50000", "5000"),
	}))

	records, _, err := storage.Load(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "IN002", records[0].Code)

	// No temporary files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "income_data.txt")
	require.NoError(t, storage.Save(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestBackup(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "income_data.txt")
	require.NoError(t, storage.Save(path, []models.Record{
		record(t, "IN001", "Freelance Work", "25/07/2025", "10000", "1000"),
	}))

	backup, err := storage.Backup(path)
	require.NoError(t, err)

	assert.Contains(t, backup, "income_data_backup_")
	assert.Equal(t, ".txt", filepath.Ext(backup))

	original, err := os.ReadFile(path)
	require.NoError(t, err)
	copied, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, original, copied)
}

func TestBackupMissingFile(t *testing.T) {
	t.Parallel()

	_, err := storage.Backup(filepath.Join(t.TempDir(), "does_not_exist.txt"))
	assert.Error(t, err)
}
