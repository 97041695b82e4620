package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akwaabafreight/tracking-api/internal/domain/entity"
	"github.com/akwaabafreight/tracking-api/internal/domain/repository"
)

var _ repository.TrackingRepository = (*TrackingRepo)(nil)

// TrackingRepo implements the TrackingRepository port on PostgreSQL.
type TrackingRepo struct {
	pool *pgxpool.Pool
}

// NewTrackingRepository builds the tracking persistence adapter.
func NewTrackingRepository(pool *pgxpool.Pool) *TrackingRepo {
	return &TrackingRepo{pool: pool}
}

const trackingColumns = `id, tracking_number, user_id, phone, status, location, destination, last_updated, created_at`

// ListAll returns every record joined with the owning user's contact details
// (the employee view).
func (r *TrackingRepo) ListAll() ([]*entity.TrackingRecordWithOwner, error) {
	query := `
		SELECT t.id, t.tracking_number, t.user_id, t.phone, t.status, t.location, t.destination,
		       t.last_updated, t.created_at, u.email, u.phone
		FROM tracking_records t
		JOIN users u ON u.id = t.user_id
		ORDER BY t.created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list tracking records: %w", err)
	}
	defer rows.Close()
	var list []*entity.TrackingRecordWithOwner
	for rows.Next() {
		var rec entity.TrackingRecordWithOwner
		var status string
		if err := rows.Scan(
			&rec.ID, &rec.TrackingNumber, &rec.UserID, &rec.Phone, &status, &rec.Location,
			&rec.Destination, &rec.LastUpdated, &rec.CreatedAt, &rec.OwnerEmail, &rec.OwnerPhone,
		); err != nil {
			return nil, fmt.Errorf("scan tracking record: %w", err)
		}
		rec.Status = entity.Status(status)
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// ListByOwner returns the records owned by one user.
func (r *TrackingRepo) ListByOwner(userID string) ([]*entity.TrackingRecord, error) {
	query := `
		SELECT ` + trackingColumns + `
		FROM tracking_records WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list tracking records by owner: %w", err)
	}
	defer rows.Close()
	var list []*entity.TrackingRecord
	for rows.Next() {
		rec, err := scanTracking(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// FindByNumber returns the record with the given tracking number (exact
// match), or nil when absent. Callers normalize case on the read path.
func (r *TrackingRepo) FindByNumber(trackingNumber string) (*entity.TrackingRecord, error) {
	query := `
		SELECT ` + trackingColumns + `
		FROM tracking_records WHERE tracking_number = $1`
	rec, err := scanTracking(r.pool.QueryRow(context.Background(), query, trackingNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tracking record by number: %w", err)
	}
	return rec, nil
}

// Upsert inserts or updates atomically, keyed on the unique tracking_number
// index. NULLIF/COALESCE keeps the stored status/location/destination when
// the incoming value is empty; owner and phone are never changed on update.
// An empty status on insert falls back to Pending.
func (r *TrackingRepo) Upsert(rec *entity.TrackingRecord) (*entity.TrackingRecord, error) {
	query := `
		INSERT INTO tracking_records (` + trackingColumns + `)
		VALUES ($1, $2, $3, $4, COALESCE(NULLIF($5, ''), 'Pending'), $6, $7, $8, $9)
		ON CONFLICT (tracking_number) DO UPDATE SET
			status       = COALESCE(NULLIF($5, ''), tracking_records.status),
			location     = COALESCE(NULLIF($6, ''), tracking_records.location),
			destination  = COALESCE(NULLIF($7, ''), tracking_records.destination),
			last_updated = $8
		RETURNING ` + trackingColumns
	out, err := scanTracking(r.pool.QueryRow(context.Background(), query,
		rec.ID, rec.TrackingNumber, rec.UserID, rec.Phone, string(rec.Status),
		rec.Location, rec.Destination, rec.LastUpdated, rec.CreatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert tracking record: %w", err)
	}
	return out, nil
}

// DeleteByID removes a record and returns it, or nil when none matched.
func (r *TrackingRepo) DeleteByID(id string) (*entity.TrackingRecord, error) {
	query := `
		DELETE FROM tracking_records WHERE id = $1
		RETURNING ` + trackingColumns
	rec, err := scanTracking(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete tracking record: %w", err)
	}
	return rec, nil
}

func scanTracking(row pgx.Row) (*entity.TrackingRecord, error) {
	var rec entity.TrackingRecord
	var status string
	err := row.Scan(
		&rec.ID, &rec.TrackingNumber, &rec.UserID, &rec.Phone, &status,
		&rec.Location, &rec.Destination, &rec.LastUpdated, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Status = entity.Status(status)
	return &rec, nil
}
