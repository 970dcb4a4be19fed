// Package storage persists income records to a flat pipe-delimited file,
// one storage line per record.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/income-recorder/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// Load reads all records from the data file at path.
//
// Lines that cannot be parsed are skipped and counted so that a single bad
// line does not lose the rest of the file, the number of skipped lines is
// returned alongside the records. A missing file yields no records and no
// error so that a fresh installation starts with empty data.
func Load(path string) ([]models.Record, int, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("opening data file: %w", err)
	}
	defer f.Close()

	records := make([]models.Record, 0)
	var skipped, line int

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		record, err := models.FromStorageLine(text)
		if err != nil {
			log.Warn().Str("file", path).Int("line", line).Err(err).Msg("skipping line")
			skipped++
			continue
		}

		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading data file: %w", err)
	}

	return records, skipped, nil
}

// Save writes all records to the data file at path, creating the directory
// if needed.
//
// The records are written to a temporary file in the same directory first
// and moved into place, so a failed write does not truncate existing data.
func Save(path string, records []models.Record) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary data file: %w", err)
	}

	writer := bufio.NewWriter(tmp)
	for _, record := range records {
		if _, err := fmt.Fprintln(writer, record.StorageLine()); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return fmt.Errorf("writing data file: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing data file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temporary data file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing data file: %w", err)
	}

	return nil
}

// Backup copies the data file at path to a timestamped file next to it and
// returns the path of the backup.
func Backup(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading data file: %w", err)
	}

	ext := filepath.Ext(path)
	backup := fmt.Sprintf("%s_backup_%s%s",
		strings.TrimSuffix(path, ext), time.Now().Format("20060102_150405"), ext)

	if err := os.WriteFile(backup, data, 0o644); err != nil {
		return "", fmt.Errorf("writing backup file: %w", err)
	}

	return backup, nil
}
