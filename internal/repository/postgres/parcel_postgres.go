package postgres

import (
	"context"
	"database/sql"
	"time"

	"zoomboom/internal/model"
	"zoomboom/internal/repository"
)

const parcelColumns = `id, tracking_id, user_email, parcel_type, parcel_name, parcel_weight,
		sender_name, sender_phone, sender_district, sender_area, sender_address,
		receiver_name, receiver_phone, receiver_district, receiver_area, receiver_address,
		total_cost, status, booked_at, updated_at`

// ParcelPostgres is a PostgreSQL implementation of repository.ParcelRepository.
type ParcelPostgres struct {
	db *sql.DB
}

func NewParcelPostgres(db *sql.DB) *ParcelPostgres {
	return &ParcelPostgres{db: db}
}

var _ repository.ParcelRepository = (*ParcelPostgres)(nil)

func scanParcel(s rowScanner) (*model.Parcel, error) {
	var p model.Parcel
	if err := s.Scan(
		&p.ID,
		&p.TrackingID,
		&p.UserEmail,
		&p.ParcelType,
		&p.ParcelName,
		&p.ParcelWeight,
		&p.SenderName,
		&p.SenderPhone,
		&p.SenderDistrict,
		&p.SenderArea,
		&p.SenderAddress,
		&p.ReceiverName,
		&p.ReceiverPhone,
		&p.ReceiverDistrict,
		&p.ReceiverArea,
		&p.ReceiverAddress,
		&p.TotalCost,
		&p.Status,
		&p.BookedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new parcel row and returns the stored record.
func (r *ParcelPostgres) Create(ctx context.Context, p *model.Parcel) (*model.Parcel, error) {
	const q = `
		INSERT INTO parcels (` + parcelColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING ` + parcelColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.TrackingID,
		p.UserEmail,
		p.ParcelType,
		p.ParcelName,
		p.ParcelWeight,
		p.SenderName,
		p.SenderPhone,
		p.SenderDistrict,
		p.SenderArea,
		p.SenderAddress,
		p.ReceiverName,
		p.ReceiverPhone,
		p.ReceiverDistrict,
		p.ReceiverArea,
		p.ReceiverAddress,
		p.TotalCost,
		p.Status,
		p.BookedAt,
		p.UpdatedAt,
	)
	out, err := scanParcel(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrDuplicate
		}
		return nil, err
	}
	return out, nil
}

// FindByID fetches a single parcel by its ID.
func (r *ParcelPostgres) FindByID(ctx context.Context, id string) (*model.Parcel, error) {
	if !validID(id) {
		return nil, sql.ErrNoRows
	}
	const q = `SELECT ` + parcelColumns + ` FROM parcels WHERE id = $1`
	return scanParcel(r.db.QueryRowContext(ctx, q, id))
}

// List returns parcels ordered by booking time, newest first.
func (r *ParcelPostgres) List(ctx context.Context, f repository.ParcelFilter) ([]model.Parcel, error) {
	q := `SELECT ` + parcelColumns + ` FROM parcels`
	var args []any
	if f.Email != "" {
		q += ` WHERE user_email = $1`
		args = append(args, f.Email)
	}
	q += ` ORDER BY booked_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Parcel, 0)
	for rows.Next() {
		p, err := scanParcel(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdatePending only touches rows whose status is still Pending.
func (r *ParcelPostgres) UpdatePending(ctx context.Context, id string, d model.ParcelDraft, totalCost int, at time.Time) (int64, error) {
	if !validID(id) {
		return 0, nil
	}
	const q = `
		UPDATE parcels SET
			parcel_type = $2, parcel_name = $3, parcel_weight = $4,
			sender_name = $5, sender_phone = $6, sender_district = $7, sender_area = $8, sender_address = $9,
			receiver_name = $10, receiver_phone = $11, receiver_district = $12, receiver_area = $13, receiver_address = $14,
			total_cost = $15, updated_at = $16
		WHERE id = $1 AND status = $17
	`
	res, err := r.db.ExecContext(ctx, q,
		id,
		d.ParcelType,
		d.ParcelName,
		d.ParcelWeight,
		d.SenderName,
		d.SenderPhone,
		d.SenderDistrict,
		d.SenderArea,
		d.SenderAddress,
		d.ReceiverName,
		d.ReceiverPhone,
		d.ReceiverDistrict,
		d.ReceiverArea,
		d.ReceiverAddress,
		totalCost,
		at,
		model.ParcelStatusPending,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeletePending removes the parcel only while it is Pending.
func (r *ParcelPostgres) DeletePending(ctx context.Context, id string) (int64, error) {
	if !validID(id) {
		return 0, nil
	}
	const q = `DELETE FROM parcels WHERE id = $1 AND status = $2`
	res, err := r.db.ExecContext(ctx, q, id, model.ParcelStatusPending)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
