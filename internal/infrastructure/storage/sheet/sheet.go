// Package sheet реализует репозитории поверх плоских CSV-таблиц, заменяющих
// исходные xlsx-книги. Контракт прежний: load-all, append как
// load + добавить строку + перезаписать файл целиком.
package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// table — одна CSV-таблица с фиксированным заголовком. Мьютекс
// сериализует писателей: без него два одновременных append теряют строку
// (load-modify-save). Перезапись идет через временный файл и rename, чтобы
// упавший посередине процесс не оставил таблицу наполовину записанной.
type table struct {
	mu     sync.Mutex
	path   string
	header []string
}

func newTable(path string, header []string) *table {
	return &table{
		path:   path,
		header: header,
	}
}

// load возвращает все строки данных (без заголовка). Отсутствующий файл —
// это просто пустая таблица.
func (t *table) load() ([][]string, error) {
	f, err := os.Open(t.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open table %s: %w", t.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(t.header)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", t.path, err)
	}

	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}

// append дописывает строку в конец и атомарно заменяет файл.
func (t *table) append(row []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.load()
	if err != nil {
		return err
	}
	rows = append(rows, row)

	return t.rewrite(rows)
}

func (t *table) rewrite(rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(t.path), filepath.Base(t.path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp table: %w", err)
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)
	if err := writer.Write(t.header); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("write rows: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush table: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp table: %w", err)
	}

	if err := os.Rename(tmp.Name(), t.path); err != nil {
		return fmt.Errorf("replace table %s: %w", t.path, err)
	}
	return nil
}
