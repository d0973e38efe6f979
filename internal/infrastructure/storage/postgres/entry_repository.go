package postgres

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"nestlog/internal/domain/entry"
)

// EntryRepository persists the four care entry kinds. Entry ids are
// assigned by the caller (high-resolution creation timestamps), so every
// table is keyed by (baby_id, id) and Create is a plain insert.
type EntryRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewEntryRepository(db *Storage, log *slog.Logger) *EntryRepository {
	return &EntryRepository{
		db:  db,
		log: log.With("component", "entry_repository"),
	}
}

func (r *EntryRepository) ListFeedings(ctx context.Context, babyID int) ([]entry.Feeding, error) {
	const query = `
		SELECT id, type, volume, time, timestamp, note
		FROM feedings
		WHERE baby_id = $1
		ORDER BY timestamp DESC`

	rows, err := r.db.Pool().Query(ctx, query, babyID)
	if err != nil {
		r.log.Error("failed to list feedings", "baby_id", babyID, "error", err)
		return nil, fmt.Errorf("list feedings: %w", err)
	}
	defer rows.Close()

	feedings := make([]entry.Feeding, 0)
	for rows.Next() {
		var f entry.Feeding
		if err := rows.Scan(&f.ID, &f.Type, &f.Volume, &f.Time, &f.Timestamp, &f.Note); err != nil {
			return nil, fmt.Errorf("scan feeding: %w", err)
		}
		feedings = append(feedings, f)
	}

	return feedings, rows.Err()
}

func (r *EntryRepository) CreateFeeding(ctx context.Context, babyID int, f entry.Feeding) (entry.Feeding, error) {
	const query = `
		INSERT INTO feedings (id, baby_id, type, volume, time, timestamp, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Pool().Exec(ctx, query, f.ID, babyID, f.Type, f.Volume, f.Time, f.Timestamp, f.Note)
	if err != nil {
		r.log.Error("failed to create feeding", "baby_id", babyID, "error", err)
		return entry.Feeding{}, fmt.Errorf("create feeding: %w", err)
	}

	return f, nil
}

func (r *EntryRepository) UpdateFeeding(ctx context.Context, babyID int, f entry.Feeding) (entry.Feeding, error) {
	const query = `
		UPDATE feedings
		SET type = $1, volume = $2, time = $3, timestamp = $4, note = $5
		WHERE id = $6 AND baby_id = $7`

	result, err := r.db.Pool().Exec(ctx, query, f.Type, f.Volume, f.Time, f.Timestamp, f.Note, f.ID, babyID)
	if err != nil {
		r.log.Error("failed to update feeding", "baby_id", babyID, "entry_id", f.ID, "error", err)
		return entry.Feeding{}, fmt.Errorf("update feeding: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entry.Feeding{}, entry.ErrNotFound
	}

	return f, nil
}

// DeleteFeeding is idempotent: deleting an id that does not exist is not an
// error.
func (r *EntryRepository) DeleteFeeding(ctx context.Context, babyID int, id int64) error {
	_, err := r.db.Pool().Exec(ctx,
		`DELETE FROM feedings WHERE id = $1 AND baby_id = $2`, id, babyID)
	if err != nil {
		r.log.Error("failed to delete feeding", "baby_id", babyID, "entry_id", id, "error", err)
		return fmt.Errorf("delete feeding: %w", err)
	}
	return nil
}

func (r *EntryRepository) ListDiapers(ctx context.Context, babyID int) ([]entry.Diaper, error) {
	const query = `
		SELECT id, type, sub, time, timestamp, COALESCE(color, '')
		FROM diapers
		WHERE baby_id = $1
		ORDER BY timestamp DESC`

	rows, err := r.db.Pool().Query(ctx, query, babyID)
	if err != nil {
		r.log.Error("failed to list diapers", "baby_id", babyID, "error", err)
		return nil, fmt.Errorf("list diapers: %w", err)
	}
	defer rows.Close()

	diapers := make([]entry.Diaper, 0)
	for rows.Next() {
		var d entry.Diaper
		if err := rows.Scan(&d.ID, &d.Type, &d.Sub, &d.Time, &d.Timestamp, &d.Color); err != nil {
			return nil, fmt.Errorf("scan diaper: %w", err)
		}
		diapers = append(diapers, d)
	}

	return diapers, rows.Err()
}

func (r *EntryRepository) CreateDiaper(ctx context.Context, babyID int, d entry.Diaper) (entry.Diaper, error) {
	const query = `
		INSERT INTO diapers (id, baby_id, type, sub, time, timestamp, color)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))`

	_, err := r.db.Pool().Exec(ctx, query, d.ID, babyID, d.Type, d.Sub, d.Time, d.Timestamp, d.Color)
	if err != nil {
		r.log.Error("failed to create diaper", "baby_id", babyID, "error", err)
		return entry.Diaper{}, fmt.Errorf("create diaper: %w", err)
	}

	return d, nil
}

func (r *EntryRepository) UpdateDiaper(ctx context.Context, babyID int, d entry.Diaper) (entry.Diaper, error) {
	const query = `
		UPDATE diapers
		SET type = $1, sub = $2, time = $3, timestamp = $4, color = NULLIF($5, '')
		WHERE id = $6 AND baby_id = $7`

	result, err := r.db.Pool().Exec(ctx, query, d.Type, d.Sub, d.Time, d.Timestamp, d.Color, d.ID, babyID)
	if err != nil {
		r.log.Error("failed to update diaper", "baby_id", babyID, "entry_id", d.ID, "error", err)
		return entry.Diaper{}, fmt.Errorf("update diaper: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entry.Diaper{}, entry.ErrNotFound
	}

	return d, nil
}

func (r *EntryRepository) DeleteDiaper(ctx context.Context, babyID int, id int64) error {
	_, err := r.db.Pool().Exec(ctx,
		`DELETE FROM diapers WHERE id = $1 AND baby_id = $2`, id, babyID)
	if err != nil {
		r.log.Error("failed to delete diaper", "baby_id", babyID, "entry_id", id, "error", err)
		return fmt.Errorf("delete diaper: %w", err)
	}
	return nil
}

func (r *EntryRepository) ListSleeps(ctx context.Context, babyID int) ([]entry.Sleep, error) {
	const query = `
		SELECT id, start_time, end_time, duration, timestamp
		FROM sleeps
		WHERE baby_id = $1
		ORDER BY timestamp DESC`

	rows, err := r.db.Pool().Query(ctx, query, babyID)
	if err != nil {
		r.log.Error("failed to list sleeps", "baby_id", babyID, "error", err)
		return nil, fmt.Errorf("list sleeps: %w", err)
	}
	defer rows.Close()

	sleeps := make([]entry.Sleep, 0)
	for rows.Next() {
		var s entry.Sleep
		if err := rows.Scan(&s.ID, &s.Start, &s.End, &s.Duration, &s.Timestamp); err != nil {
			return nil, fmt.Errorf("scan sleep: %w", err)
		}
		sleeps = append(sleeps, s)
	}

	return sleeps, rows.Err()
}

func (r *EntryRepository) CreateSleep(ctx context.Context, babyID int, s entry.Sleep) (entry.Sleep, error) {
	const query = `
		INSERT INTO sleeps (id, baby_id, start_time, end_time, duration, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Pool().Exec(ctx, query, s.ID, babyID, s.Start, s.End, s.Duration, s.Timestamp)
	if err != nil {
		r.log.Error("failed to create sleep", "baby_id", babyID, "error", err)
		return entry.Sleep{}, fmt.Errorf("create sleep: %w", err)
	}

	return s, nil
}

func (r *EntryRepository) UpdateSleep(ctx context.Context, babyID int, s entry.Sleep) (entry.Sleep, error) {
	const query = `
		UPDATE sleeps
		SET start_time = $1, end_time = $2, duration = $3, timestamp = $4
		WHERE id = $5 AND baby_id = $6`

	result, err := r.db.Pool().Exec(ctx, query, s.Start, s.End, s.Duration, s.Timestamp, s.ID, babyID)
	if err != nil {
		r.log.Error("failed to update sleep", "baby_id", babyID, "entry_id", s.ID, "error", err)
		return entry.Sleep{}, fmt.Errorf("update sleep: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entry.Sleep{}, entry.ErrNotFound
	}

	return s, nil
}

func (r *EntryRepository) DeleteSleep(ctx context.Context, babyID int, id int64) error {
	_, err := r.db.Pool().Exec(ctx,
		`DELETE FROM sleeps WHERE id = $1 AND baby_id = $2`, id, babyID)
	if err != nil {
		r.log.Error("failed to delete sleep", "baby_id", babyID, "entry_id", id, "error", err)
		return fmt.Errorf("delete sleep: %w", err)
	}
	return nil
}

func (r *EntryRepository) ListGrowth(ctx context.Context, babyID int) ([]entry.Growth, error) {
	const query = `
		SELECT id, weight, height, date, timestamp
		FROM growth
		WHERE baby_id = $1
		ORDER BY timestamp DESC`

	rows, err := r.db.Pool().Query(ctx, query, babyID)
	if err != nil {
		r.log.Error("failed to list growth", "baby_id", babyID, "error", err)
		return nil, fmt.Errorf("list growth: %w", err)
	}
	defer rows.Close()

	growth := make([]entry.Growth, 0)
	for rows.Next() {
		var g entry.Growth
		if err := rows.Scan(&g.ID, &g.Weight, &g.Height, &g.Date, &g.Timestamp); err != nil {
			return nil, fmt.Errorf("scan growth: %w", err)
		}
		growth = append(growth, g)
	}

	return growth, rows.Err()
}

func (r *EntryRepository) CreateGrowth(ctx context.Context, babyID int, g entry.Growth) (entry.Growth, error) {
	const query = `
		INSERT INTO growth (id, baby_id, weight, height, date, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Pool().Exec(ctx, query, g.ID, babyID, g.Weight, g.Height, g.Date, g.Timestamp)
	if err != nil {
		r.log.Error("failed to create growth", "baby_id", babyID, "error", err)
		return entry.Growth{}, fmt.Errorf("create growth: %w", err)
	}

	return g, nil
}

func (r *EntryRepository) UpdateGrowth(ctx context.Context, babyID int, g entry.Growth) (entry.Growth, error) {
	const query = `
		UPDATE growth
		SET weight = $1, height = $2, date = $3, timestamp = $4
		WHERE id = $5 AND baby_id = $6`

	result, err := r.db.Pool().Exec(ctx, query, g.Weight, g.Height, g.Date, g.Timestamp, g.ID, babyID)
	if err != nil {
		r.log.Error("failed to update growth", "baby_id", babyID, "entry_id", g.ID, "error", err)
		return entry.Growth{}, fmt.Errorf("update growth: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entry.Growth{}, entry.ErrNotFound
	}

	return g, nil
}

func (r *EntryRepository) DeleteGrowth(ctx context.Context, babyID int, id int64) error {
	_, err := r.db.Pool().Exec(ctx,
		`DELETE FROM growth WHERE id = $1 AND baby_id = $2`, id, babyID)
	if err != nil {
		r.log.Error("failed to delete growth", "baby_id", babyID, "entry_id", id, "error", err)
		return fmt.Errorf("delete growth: %w", err)
	}
	return nil
}
