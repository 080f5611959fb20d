package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"scriptorium/internal/config"
)

// Store manages manuscript persistence backed by SQLite. A lock file next to
// the database keeps the registry to one session at a time.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the registry database and applies the schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire registry lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Close closes the database connection and releases the session lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}
	return err
}

// Path returns the location of the registry database file.
func (s *Store) Path() string {
	return s.path
}

// Create inserts a new manuscript record and returns it with the assigned id.
func (s *Store) Create(ctx context.Context, rec *Record) (*Record, error) {
	if rec == nil {
		return nil, errors.New("record is nil")
	}
	rec.Normalize()
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO manuscripts (
            manuscript_no, title, stage, department, assignee,
            entered_stage_date, sla_days, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Number,
		nullableString(rec.Title),
		nullableString(string(rec.Stage)),
		nullableString(string(rec.Department)),
		nullableString(rec.Assignee),
		nullableString(rec.EnteredDate),
		rec.SLADays,
		timestamp,
		timestamp,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("number %q: %w", rec.Number, ErrDuplicateNumber)
		}
		return nil, fmt.Errorf("insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

// GetByID fetches a record by identifier. Returns nil when the id is absent.
func (s *Store) GetByID(ctx context.Context, id int64) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM manuscripts WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// GetByNumber fetches a record by manuscript number. Returns nil when absent.
func (s *Store) GetByNumber(ctx context.Context, number string) (*Record, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+recordColumns+` FROM manuscripts WHERE manuscript_no = ? LIMIT 1`,
		normalizeText(number),
	)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get record by number: %w", err)
	}
	return rec, nil
}

// Update persists changes to an existing record. The id is never reassigned;
// uniqueness collisions with a different record surface as ErrDuplicateNumber.
func (s *Store) Update(ctx context.Context, rec *Record) error {
	if rec == nil {
		return errors.New("record is nil")
	}
	rec.Normalize()
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.UpdatedAt = time.Now().UTC()
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE manuscripts
         SET manuscript_no = ?, title = ?, stage = ?, department = ?,
             assignee = ?, entered_stage_date = ?, sla_days = ?, updated_at = ?
         WHERE id = ?`,
		rec.Number,
		nullableString(rec.Title),
		nullableString(string(rec.Stage)),
		nullableString(string(rec.Department)),
		nullableString(rec.Assignee),
		nullableString(rec.EnteredDate),
		rec.SLADays,
		rec.UpdatedAt.Format(time.RFC3339Nano),
		rec.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("number %q: %w", rec.Number, ErrDuplicateNumber)
		}
		return fmt.Errorf("update record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("id %d: %w", rec.ID, ErrNotFound)
	}
	return nil
}

// Remove deletes a record by identifier.
func (s *Store) Remove(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM manuscripts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	return nil
}

// List returns every record ordered by ascending id (creation order).
func (s *Store) List(ctx context.Context) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+recordColumns+` FROM manuscripts ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Count returns the total number of records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM manuscripts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

// CountByStage returns a count of records grouped by stage over the whole store.
func (s *Store) CountByStage(ctx context.Context) (map[Stage]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT COALESCE(stage, ''), COUNT(1) FROM manuscripts GROUP BY stage`)
	if err != nil {
		return nil, fmt.Errorf("count by stage: %w", err)
	}
	defer rows.Close()

	counts := make(map[Stage]int)
	for rows.Next() {
		var stage Stage
		var count int
		if err := rows.Scan(&stage, &count); err != nil {
			return nil, err
		}
		counts[stage] = count
	}
	return counts, rows.Err()
}

// CountByDepartment returns a count of records grouped by department over the
// whole store.
func (s *Store) CountByDepartment(ctx context.Context) (map[Department]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT COALESCE(department, ''), COUNT(1) FROM manuscripts GROUP BY department`)
	if err != nil {
		return nil, fmt.Errorf("count by department: %w", err)
	}
	defer rows.Close()

	counts := make(map[Department]int)
	for rows.Next() {
		var department Department
		var count int
		if err := rows.Scan(&department, &count); err != nil {
			return nil, err
		}
		counts[department] = count
	}
	return counts, rows.Err()
}

const recordColumns = "id, manuscript_no, title, stage, department, assignee, entered_stage_date, sla_days, created_at, updated_at"

func scanRecord(scanner interface{ Scan(dest ...any) error }) (*Record, error) {
	var (
		id          int64
		number      string
		title       sql.NullString
		stage       sql.NullString
		department  sql.NullString
		assignee    sql.NullString
		enteredDate sql.NullString
		slaDays     sql.NullInt64
		createdRaw  sql.NullString
		updatedRaw  sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&number,
		&title,
		&stage,
		&department,
		&assignee,
		&enteredDate,
		&slaDays,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	rec := &Record{
		ID:          id,
		Number:      number,
		Title:       title.String,
		Stage:       Stage(stage.String),
		Department:  Department(department.String),
		Assignee:    assignee.String,
		EnteredDate: enteredDate.String,
		SLADays:     int(slaDays.Int64),
	}

	if created, err := parseTimeString(createdRaw.String); err == nil {
		rec.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw.String); err == nil {
		rec.UpdatedAt = updated
	}
	return rec, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}

// SQLITE_CONSTRAINT_UNIQUE extended result code.
const sqliteConstraintUniqueCode = 2067

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteConstraintUniqueCode {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
