package client

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStorage — локальный кэш результатов скрининга. История хранится
// на стороне клиента, чтобы ее можно было смотреть без сессии на сервере.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("открытие базы: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("проверка соединения: %w", err)
	}

	storage := &SQLiteStorage{db: db}
	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, err
	}

	return storage, nil
}

func (s *SQLiteStorage) initTables() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS screening_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		glucose REAL NOT NULL,
		bmi REAL NOT NULL,
		age REAL NOT NULL,
		result TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("создание таблиц: %w", err)
	}

	return nil
}

// SaveResult сохраняет результат скрининга в локальную историю
func (s *SQLiteStorage) SaveResult(m Measurements, result string) error {
	_, err := s.db.Exec(
		`INSERT INTO screening_history (glucose, bmi, age, result) VALUES (?, ?, ?, ?)`,
		m.Glucose, m.BMI, m.Age, result,
	)
	if err != nil {
		return fmt.Errorf("сохранение результата: %w", err)
	}

	return nil
}

// ListResults возвращает историю скринингов, новые записи первыми
func (s *SQLiteStorage) ListResults() ([]HistoryEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, glucose, bmi, age, result, created_at
		 FROM screening_history ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("чтение истории: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.Glucose, &e.BMI, &e.Age, &e.Result, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("чтение строки истории: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
