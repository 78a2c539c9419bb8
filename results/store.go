package results

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for session data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			stimuli INTEGER NOT NULL,
			angles_per_quadrant INTEGER NOT NULL,
			use_correct_quadrant INTEGER NOT NULL,
			correct_quadrant INTEGER NOT NULL,
			degree_variance REAL NOT NULL,
			profile TEXT NOT NULL,
			seed INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS trials (
			session_id INTEGER NOT NULL,
			trial_index INTEGER NOT NULL,
			target_angle REAL NOT NULL,
			selected_angle REAL NOT NULL,
			correct INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			PRIMARY KEY (session_id, trial_index)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_ended_at ON sessions(ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
	}
	return nil
}

// InsertSession stores a completed session and its trials.
func (s *Store) InsertSession(ctx context.Context, sess Session, trials []Trial) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO sessions (started_at, ended_at, stimuli, angles_per_quadrant, use_correct_quadrant, correct_quadrant, degree_variance, profile, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.StartedAt.Format(time.RFC3339Nano),
		sess.EndedAt.Format(time.RFC3339Nano),
		sess.StimulusCount,
		sess.AnglesPerQuadrant,
		boolToInt(sess.UseCorrectQuadrant),
		sess.CorrectQuadrant,
		sess.DegreeVariance,
		sess.Profile,
		sess.Seed,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(trials) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO trials (session_id, trial_index, target_angle, selected_angle, correct, elapsed_ms)
			 VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for _, tr := range trials {
			if _, err := stmt.ExecContext(ctx, id, tr.Index, tr.TargetAngle, tr.SelectedAngle, boolToInt(tr.Correct), tr.ElapsedMs); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

const sessionColumns = `s.id, s.started_at, s.ended_at, s.stimuli, s.angles_per_quadrant,
	s.use_correct_quadrant, s.correct_quadrant, s.degree_variance, s.profile, s.seed,
	COUNT(t.trial_index), COALESCE(SUM(t.correct), 0)`

// ListSessions returns all stored sessions, most recent first.
func (s *Store) ListSessions(ctx context.Context) ([]SessionRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+sessionColumns+`
		 FROM sessions s
		 LEFT JOIN trials t ON t.session_id = s.id
		 GROUP BY s.id
		 ORDER BY s.ended_at DESC, s.id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var out []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSession returns one stored session by id.
func (s *Store) GetSession(ctx context.Context, id int64) (SessionRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+sessionColumns+`
		 FROM sessions s
		 LEFT JOIN trials t ON t.session_id = s.id
		 WHERE s.id = ?
		 GROUP BY s.id`, id)
	rec, err := scanSession(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return SessionRecord{}, fmt.Errorf("session %d not found", id)
	}
	if err != nil {
		return SessionRecord{}, err
	}
	return rec, nil
}

// ListTrials returns a session's trials in presentation order.
func (s *Store) ListTrials(ctx context.Context, sessionID int64) ([]Trial, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT trial_index, target_angle, selected_angle, correct, elapsed_ms
		 FROM trials
		 WHERE session_id = ?
		 ORDER BY trial_index`, sessionID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var out []Trial
	for rows.Next() {
		var tr Trial
		var correct int
		if err := rows.Scan(&tr.Index, &tr.TargetAngle, &tr.SelectedAngle, &correct, &tr.ElapsedMs); err != nil {
			return nil, err
		}
		tr.Correct = correct != 0
		out = append(out, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanSession(scan func(dest ...any) error) (SessionRecord, error) {
	var (
		rec                SessionRecord
		startedAt, endedAt string
		useCorrectQuadrant int
	)
	err := scan(&rec.ID, &startedAt, &endedAt, &rec.StimulusCount, &rec.AnglesPerQuadrant,
		&useCorrectQuadrant, &rec.CorrectQuadrant, &rec.DegreeVariance, &rec.Profile, &rec.Seed,
		&rec.TrialCount, &rec.CorrectCount)
	if err != nil {
		return SessionRecord{}, err
	}
	rec.UseCorrectQuadrant = useCorrectQuadrant != 0
	if rec.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
		return SessionRecord{}, fmt.Errorf("failed to parse started_at: %w", err)
	}
	if rec.EndedAt, err = time.Parse(time.RFC3339Nano, endedAt); err != nil {
		return SessionRecord{}, fmt.Errorf("failed to parse ended_at: %w", err)
	}
	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
