// Package sqlite — альтернатива CSV-таблицам: то же самое append-only
// хранилище поверх встраиваемой транзакционной базы. Выбирается через
// STORAGE_DRIVER=sqlite.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type Storage struct {
	db *sql.DB
}

func New(path string) (*Storage, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	storage := &Storage{db: db}
	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init tables: %w", err)
	}

	return storage, nil
}

func (s *Storage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS patients_register (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			patient_name TEXT NOT NULL,
			age INTEGER NOT NULL,
			address TEXT NOT NULL,
			mobile TEXT NOT NULL,
			problem TEXT NOT NULL,
			user_id TEXT NOT NULL,
			password TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS patients_data (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			patient_name TEXT NOT NULL,
			glucose REAL NOT NULL,
			bmi REAL NOT NULL,
			age REAL NOT NULL,
			prediction TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_register_user_id ON patients_register(user_id);
		CREATE INDEX IF NOT EXISTS idx_data_user_id ON patients_data(user_id);
	`)
	return err
}

func (s *Storage) DB() *sql.DB {
	return s.db
}

func (s *Storage) Close() error {
	return s.db.Close()
}
