package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ramavi/balans/internal/db"
	"github.com/ramavi/balans/internal/domain"
)

const taskColumns = `id, user_id, category, timeframe, difficulty, name, description,
	estimated_min, status, is_ai_generated, active_session_start,
	total_time_spent_sec, created_at, completed_at`

// SQLiteTaskRepo implements TaskRepo against a SQLite database or
// transaction.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		string(t.Category),
		string(t.Timeframe),
		string(t.Difficulty),
		t.Name,
		t.Description,
		t.EstimatedMin,
		string(t.Status),
		boolToInt(t.IsAIGenerated),
		nullableTimeToString(t.TimeTracking.ActiveSessionStart),
		t.TimeTracking.TotalTimeSpent,
		t.CreatedAt.UTC().Format(time.RFC3339),
		nullableTimeToString(t.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := r.scanTask(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadChildren(ctx, []*domain.Task{t}); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTaskRepo) ListByUser(ctx context.Context, userID string, f TaskFilter) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ?`
	args := []any{userID}

	if f.Category != nil {
		query += ` AND category = ?`
		args = append(args, string(*f.Category))
	}
	if f.Timeframe != nil {
		query += ` AND timeframe = ?`
		args = append(args, string(*f.Timeframe))
	}
	if f.Status != nil {
		query += ` AND status = ?`
		args = append(args, string(*f.Status))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	tasks, err := r.scanTasks(rows)
	if err != nil {
		return nil, err
	}
	if err := r.loadChildren(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET
		category = ?, timeframe = ?, difficulty = ?, name = ?, description = ?,
		estimated_min = ?, status = ?, active_session_start = ?,
		total_time_spent_sec = ?, completed_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(t.Category),
		string(t.Timeframe),
		string(t.Difficulty),
		t.Name,
		t.Description,
		t.EstimatedMin,
		string(t.Status),
		nullableTimeToString(t.TimeTracking.ActiveSessionStart),
		t.TimeTracking.TotalTimeSpent,
		nullableTimeToString(t.CompletedAt),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireRow(res, "task")
}

func (r *SQLiteTaskRepo) OpenSession(ctx context.Context, taskID string, start time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET active_session_start = ?, status = ? WHERE id = ?`,
		start.UTC().Format(time.RFC3339), string(domain.StatusInProgress), taskID,
	)
	if err != nil {
		return fmt.Errorf("opening session: %w", err)
	}
	return requireRow(res, "task")
}

func (r *SQLiteTaskRepo) CloseSession(ctx context.Context, taskID string, deltaSec int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET active_session_start = NULL,
			total_time_spent_sec = total_time_spent_sec + ?
			WHERE id = ?`,
		deltaSec, taskID,
	)
	if err != nil {
		return fmt.Errorf("closing session: %w", err)
	}
	return requireRow(res, "task")
}

func (r *SQLiteTaskRepo) AppendSession(ctx context.Context, s *domain.Session) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO task_sessions (id, task_id, started_at, ended_at, duration_sec)
			VALUES (?, ?, ?, ?, ?)`,
		s.ID,
		s.TaskID,
		s.StartedAt.UTC().Format(time.RFC3339),
		s.EndedAt.UTC().Format(time.RFC3339),
		s.DurationSec,
	)
	if err != nil {
		return fmt.Errorf("inserting task session: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) AddEmotion(ctx context.Context, taskID string, phase domain.EmotionPhase, e domain.EmotionSample) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO task_emotions (id, task_id, phase, level, note, recorded_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.New().String(),
		taskID,
		string(phase),
		e.Level,
		e.Note,
		e.RecordedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%s sample: %w", phase, domain.ErrAlreadyRecorded)
		}
		return fmt.Errorf("inserting task emotion: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) MarkCompleted(ctx context.Context, taskID string, completedAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = ?, completed_at = ? WHERE id = ?`,
		string(domain.StatusCompleted), completedAt.UTC().Format(time.RFC3339), taskID,
	)
	if err != nil {
		return fmt.Errorf("marking task completed: %w", err)
	}
	return requireRow(res, "task")
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	// Sessions and emotions go with the task via ON DELETE CASCADE.
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

// requireRow converts a zero-row update into ErrNotFound.
func requireRow(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}

// scanTask scans a single task from a *sql.Row.
func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var category, timeframe, difficulty, status string
	var isAI int
	var createdAtStr string
	var activeStart, completedAt sql.NullString

	err := row.Scan(
		&t.ID, &t.UserID, &category, &timeframe, &difficulty, &t.Name, &t.Description,
		&t.EstimatedMin, &status, &isAI, &activeStart,
		&t.TimeTracking.TotalTimeSpent, &createdAtStr, &completedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	return r.populateTask(&t, category, timeframe, difficulty, status, isAI, createdAtStr, activeStart, completedAt)
}

// scanTasks scans multiple tasks from *sql.Rows.
func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var category, timeframe, difficulty, status string
		var isAI int
		var createdAtStr string
		var activeStart, completedAt sql.NullString

		err := rows.Scan(
			&t.ID, &t.UserID, &category, &timeframe, &difficulty, &t.Name, &t.Description,
			&t.EstimatedMin, &status, &isAI, &activeStart,
			&t.TimeTracking.TotalTimeSpent, &createdAtStr, &completedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}

		task, err := r.populateTask(&t, category, timeframe, difficulty, status, isAI, createdAtStr, activeStart, completedAt)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// populateTask fills in parsed fields on a Task after scanning raw columns.
func (r *SQLiteTaskRepo) populateTask(
	t *domain.Task,
	category, timeframe, difficulty, status string,
	isAI int,
	createdAtStr string,
	activeStart, completedAt sql.NullString,
) (*domain.Task, error) {
	t.Category = domain.Category(category)
	t.Timeframe = domain.Timeframe(timeframe)
	t.Difficulty = domain.Difficulty(difficulty)
	t.Status = domain.TaskStatus(status)
	t.IsAIGenerated = intToBool(isAI)
	t.TimeTracking.ActiveSessionStart = parseNullableTime(activeStart)
	t.CompletedAt = parseNullableTime(completedAt)

	var err error
	t.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return t, nil
}

// loadChildren attaches sessions and emotion samples to the given tasks.
func (r *SQLiteTaskRepo) loadChildren(ctx context.Context, tasks []*domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Task, len(tasks))
	placeholders := make([]string, 0, len(tasks))
	args := make([]any, 0, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
		placeholders = append(placeholders, "?")
		args = append(args, t.ID)
	}
	in := strings.Join(placeholders, ", ")

	if err := r.loadSessions(ctx, byID, in, args); err != nil {
		return err
	}
	return r.loadEmotions(ctx, byID, in, args)
}

func (r *SQLiteTaskRepo) loadSessions(ctx context.Context, byID map[string]*domain.Task, in string, args []any) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, task_id, started_at, ended_at, duration_sec
			FROM task_sessions WHERE task_id IN (`+in+`) ORDER BY started_at`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("loading task sessions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.Session
		var startedStr, endedStr string
		if err := rows.Scan(&s.ID, &s.TaskID, &startedStr, &endedStr, &s.DurationSec); err != nil {
			return fmt.Errorf("scanning session row: %w", err)
		}
		if s.StartedAt, err = time.Parse(time.RFC3339, startedStr); err != nil {
			return fmt.Errorf("parsing session started_at: %w", err)
		}
		if s.EndedAt, err = time.Parse(time.RFC3339, endedStr); err != nil {
			return fmt.Errorf("parsing session ended_at: %w", err)
		}
		if t, ok := byID[s.TaskID]; ok {
			t.TimeTracking.Sessions = append(t.TimeTracking.Sessions, s)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating sessions: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) loadEmotions(ctx context.Context, byID map[string]*domain.Task, in string, args []any) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT task_id, phase, level, note, recorded_at
			FROM task_emotions WHERE task_id IN (`+in+`) ORDER BY recorded_at`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("loading task emotions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var taskID, phase, recordedStr string
		var e domain.EmotionSample
		if err := rows.Scan(&taskID, &phase, &e.Level, &e.Note, &recordedStr); err != nil {
			return fmt.Errorf("scanning emotion row: %w", err)
		}
		if e.RecordedAt, err = time.Parse(time.RFC3339, recordedStr); err != nil {
			return fmt.Errorf("parsing emotion recorded_at: %w", err)
		}
		t, ok := byID[taskID]
		if !ok {
			continue
		}
		switch domain.EmotionPhase(phase) {
		case domain.PhaseBefore:
			sample := e
			t.EmotionTracking.Before = &sample
		case domain.PhaseDuring:
			t.EmotionTracking.During = append(t.EmotionTracking.During, e)
		case domain.PhaseAfter:
			sample := e
			t.EmotionTracking.After = &sample
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating emotions: %w", err)
	}
	return nil
}
