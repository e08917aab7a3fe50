package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Run statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusEscalated = "escalated"
	StatusFailed    = "failed"
)

// Run is one production run.
type Run struct {
	ID                  string
	Title               string
	Status              string
	EpisodesPlanned     int
	EpisodesDelivered   int
	RequiresHumanReview bool
	StartedAt           time.Time
	FinishedAt          time.Time
}

// EpisodeRecord is a delivered episode belonging to a run.
type EpisodeRecord struct {
	ID            int64
	RunID         string
	EpisodeNumber int
	Title         string
	Script        string
	DeliveredAt   time.Time
}

// Fixed-width timestamps keep lexicographic and chronological order aligned
// for the ORDER BY in ListRuns.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// CreateRun inserts a new running row.
func (s *Store) CreateRun(ctx context.Context, id, title string, episodesPlanned int) error {
	return s.execWithRetry(ctx,
		`INSERT INTO runs (id, title, status, episodes_planned, started_at) VALUES (?, ?, ?, ?, ?)`,
		id, title, StatusRunning, episodesPlanned, time.Now().UTC().Format(timeLayout))
}

// SaveEpisode appends a delivered episode and bumps the run's delivered
// counter.
func (s *Store) SaveEpisode(ctx context.Context, runID string, episodeNumber int, title, script string) error {
	if err := s.execWithRetry(ctx,
		`INSERT INTO episodes (run_id, episode_number, title, script, delivered_at) VALUES (?, ?, ?, ?, ?)`,
		runID, episodeNumber, title, script, time.Now().UTC().Format(timeLayout)); err != nil {
		return fmt.Errorf("save episode %d: %w", episodeNumber, err)
	}
	return s.execWithRetry(ctx,
		`UPDATE runs SET episodes_delivered = episodes_delivered + 1 WHERE id = ?`, runID)
}

// FinishRun finalizes a run's status and review flag.
func (s *Store) FinishRun(ctx context.Context, runID, status string, requiresHumanReview bool) error {
	review := 0
	if requiresHumanReview {
		review = 1
	}
	return s.execWithRetry(ctx,
		`UPDATE runs SET status = ?, requires_human_review = ?, finished_at = ? WHERE id = ?`,
		status, review, time.Now().UTC().Format(timeLayout), runID)
}

// GetRun loads a single run.
func (s *Store) GetRun(ctx context.Context, runID string) (Run, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, status, episodes_planned, episodes_delivered, requires_human_review, started_at, finished_at
		 FROM runs WHERE id = ?`, runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return run, err
}

// ListRuns returns runs ordered most recent first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	ctx = ensureContext(ctx)
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, status, episodes_planned, episodes_delivered, requires_human_review, started_at, finished_at
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// EpisodesForRun returns a run's delivered episodes in episode order.
func (s *Store) EpisodesForRun(ctx context.Context, runID string) ([]EpisodeRecord, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, episode_number, title, script, delivered_at
		 FROM episodes WHERE run_id = ? ORDER BY episode_number ASC`, runID)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	defer rows.Close()

	var episodes []EpisodeRecord
	for rows.Next() {
		var (
			record      EpisodeRecord
			deliveredAt string
		)
		if err := rows.Scan(&record.ID, &record.RunID, &record.EpisodeNumber, &record.Title, &record.Script, &deliveredAt); err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		record.DeliveredAt = parseTime(deliveredAt)
		episodes = append(episodes, record)
	}
	return episodes, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var (
		run        Run
		review     int
		startedAt  string
		finishedAt sql.NullString
	)
	if err := row.Scan(&run.ID, &run.Title, &run.Status, &run.EpisodesPlanned, &run.EpisodesDelivered, &review, &startedAt, &finishedAt); err != nil {
		return Run{}, err
	}
	run.RequiresHumanReview = review != 0
	run.StartedAt = parseTime(startedAt)
	if finishedAt.Valid {
		run.FinishedAt = parseTime(finishedAt.String)
	}
	return run, nil
}

func parseTime(value string) time.Time {
	parsed, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
