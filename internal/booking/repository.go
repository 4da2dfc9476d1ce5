package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// CreateConfirmed inserts a confirmed booking inside a transaction that
	// locks the slot row and re-checks for overlap. The schema additionally
	// carries an exclusion constraint on (parking_slot_id, time range) for
	// confirmed rows, so even a racing commit that slips past the check
	// fails at insert; both paths surface as ErrTimeConflict.
	CreateConfirmed(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	Delete(ctx context.Context, id int64) error

	// HasOverlap reports whether any confirmed booking on the slot intersects
	// [start, end). Two intervals overlap when A.start < B.end AND B.start < A.end.
	HasOverlap(ctx context.Context, slotID int64, start, end time.Time) (bool, error)
	// BookedSlotIDs returns the ids of slots in a mall that have a confirmed
	// booking intersecting [start, end).
	BookedSlotIDs(ctx context.Context, mallID int64, start, end time.Time) (map[int64]bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingSelectColumns = `b.id, b.parking_slot_id, s.slot_number, s.mall_id, m.name,
	b.user_id, b.vehicle_id, v.license_plate,
	b.start_time, b.end_time, b.status, b.total_amount, b.created_at, b.updated_at`

func (r *pgxRepository) CreateConfirmed(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialize commits on the same slot.
	var slotID int64
	err = tx.QueryRow(ctx, "SELECT id FROM public.parking_slots WHERE id = $1 FOR UPDATE", b.ParkingSlotID).Scan(&slotID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSlotNotFound
		}
		return fmt.Errorf("lock slot failed: %w", err)
	}

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM public.bookings
			WHERE parking_slot_id = $1 AND status = 'confirmed'
			AND start_time < $3 AND end_time > $2
		)`, b.ParkingSlotID, b.StartTime, b.EndTime).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check overlap failed: %w", err)
	}
	if exists {
		return ErrTimeConflict
	}

	b.Status = StatusConfirmed
	err = tx.QueryRow(ctx,
		`INSERT INTO public.bookings
			(parking_slot_id, user_id, vehicle_id, start_time, end_time, status, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		b.ParkingSlotID, b.UserID, b.VehicleID, b.StartTime, b.EndTime, b.Status, b.TotalAmount,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return ErrTimeConflict
		}
		return fmt.Errorf("create booking failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking tx failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingSelectColumns).
		From("public.bookings b").
		Join("public.parking_slots s ON b.parking_slot_id = s.id").
		Join("public.malls m ON s.mall_id = m.id").
		Join("public.vehicles v ON b.vehicle_id = v.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var b Booking
	if err := row.Scan(
		&b.ID, &b.ParkingSlotID, &b.SlotNumber, &b.MallID, &b.MallName,
		&b.UserID, &b.VehicleID, &b.LicensePlate,
		&b.StartTime, &b.EndTime, &b.Status, &b.TotalAmount, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(bookingSelectColumns, "count(*) OVER() as total_count").
		From("public.bookings b").
		Join("public.parking_slots s ON b.parking_slot_id = s.id").
		Join("public.malls m ON s.mall_id = m.id").
		Join("public.vehicles v ON b.vehicle_id = v.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.SlotID > 0 {
		query = query.Where(squirrel.Eq{"b.parking_slot_id": filter.SlotID})
	}
	if filter.MallID > 0 {
		query = query.Where(squirrel.Eq{"s.mall_id": filter.MallID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	if filter.StartTime != nil {
		query = query.Where(squirrel.GtOrEq{"b.end_time": filter.StartTime})
	}
	if filter.EndTime != nil {
		query = query.Where(squirrel.LtOrEq{"b.start_time": filter.EndTime})
	}

	query = query.OrderBy("b.start_time DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.ParkingSlotID, &b.SlotNumber, &b.MallID, &b.MallName,
			&b.UserID, &b.VehicleID, &b.LicensePlate,
			&b.StartTime, &b.EndTime, &b.Status, &b.TotalAmount, &b.CreatedAt, &b.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, total, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	ct, err := r.pool.Exec(ctx,
		"UPDATE public.bookings SET status = $1, updated_at = now() WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	ct, err := r.pool.Exec(ctx, "DELETE FROM public.bookings WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) HasOverlap(ctx context.Context, slotID int64, start, end time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM public.bookings
			WHERE parking_slot_id = $1 AND status = 'confirmed'
			AND start_time < $3 AND end_time > $2
		)`, slotID, start, end).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check overlap failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) BookedSlotIDs(ctx context.Context, mallID int64, start, end time.Time) (map[int64]bool, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT b.parking_slot_id
		FROM public.bookings b
		JOIN public.parking_slots s ON b.parking_slot_id = s.id
		WHERE s.mall_id = $1 AND b.status = 'confirmed'
		AND b.start_time < $3 AND b.end_time > $2`,
		mallID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list booked slots failed: %w", err)
	}
	defer rows.Close()

	booked := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan booked slot id failed: %w", err)
		}
		booked[id] = true
	}
	return booked, nil
}
