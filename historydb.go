package flashdeck

import (
	"database/sql"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	_ "github.com/mattn/go-sqlite3"
)

// DB represents the study-history database connection. It stores quiz
// results and a generation audit trail. Flashcards themselves are never
// persisted; only topics and aggregates are.
type DB struct {
	db *sql.DB
}

// OpenDB opens a new database connection
func OpenDB(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db: db}, nil
}

// CloseDB closes the database connection
func (db *DB) CloseDB() error {
	return db.db.Close()
}

// CreateTables creates the necessary tables if they don't exist
func (db *DB) CreateTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS generations (
			id TEXT PRIMARY KEY,
			topic TEXT NOT NULL,
			num_cards INTEGER NOT NULL,
			status TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS quiz_results (
			id TEXT PRIMARY KEY,
			topic TEXT NOT NULL,
			score INTEGER NOT NULL,
			total INTEGER NOT NULL,
			percent INTEGER NOT NULL,
			finished_at DATETIME NOT NULL
		)`,
	}

	for _, query := range queries {
		if _, err := db.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute %s: %w", query, err)
		}
	}
	return nil
}

// RecordGeneration records one generation attempt in the audit trail
func (db *DB) RecordGeneration(topic string, numCards int, status string) error {
	id, err := gonanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate id: %w", err)
	}

	_, err = db.db.Exec(
		"INSERT INTO generations (id, topic, num_cards, status, created_at) VALUES (?, ?, ?, ?, ?)",
		id, topic, numCards, status, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to record generation: %w", err)
	}
	return nil
}

// RecordQuizResult stores the summary of a finished quiz
func (db *DB) RecordQuizResult(topic string, summary QuizSummary) error {
	id, err := gonanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate id: %w", err)
	}

	_, err = db.db.Exec(
		"INSERT INTO quiz_results (id, topic, score, total, percent, finished_at) VALUES (?, ?, ?, ?, ?, ?)",
		id, topic, summary.Score, summary.Total, summary.Percent, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to record quiz result: %w", err)
	}
	return nil
}

// GetRecentResults retrieves finished quizzes, newest first, optionally
// limited by count
func (db *DB) GetRecentResults(limit int) ([]QuizResult, error) {
	query := "SELECT id, topic, score, total, percent, finished_at FROM quiz_results ORDER BY finished_at DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz results: %w", err)
	}
	defer rows.Close()

	var results []QuizResult
	for rows.Next() {
		var r QuizResult
		if err := rows.Scan(&r.ID, &r.Topic, &r.Score, &r.Total, &r.Percent, &r.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quiz result: %w", err)
		}
		results = append(results, r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quiz results: %w", err)
	}

	return results, nil
}

// GetRecentGenerations retrieves generation attempts, newest first
func (db *DB) GetRecentGenerations(limit int) ([]GenerationRecord, error) {
	query := "SELECT id, topic, num_cards, status, created_at FROM generations ORDER BY created_at DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get generations: %w", err)
	}
	defer rows.Close()

	var records []GenerationRecord
	for rows.Next() {
		var rec GenerationRecord
		if err := rows.Scan(&rec.ID, &rec.Topic, &rec.NumCards, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating generations: %w", err)
	}

	return records, nil
}
