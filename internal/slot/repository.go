package slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines data access methods for parking slots.
type Repository interface {
	Create(ctx context.Context, s *Slot) error
	GetByID(ctx context.Context, id int64) (*Slot, error)
	List(ctx context.Context, filter Filter) ([]*Slot, int, error)
	// ListByMall returns all slots of a mall (optionally narrowed by vehicle
	// type) ordered by id, without pagination. Availability resolution walks
	// the full catalog in this order.
	ListByMall(ctx context.Context, mallID int64, vehicleType VehicleType) ([]*Slot, error)
	Rates(ctx context.Context, mallID int64) ([]*Rate, error)
	Update(ctx context.Context, s *Slot) error
	Delete(ctx context.Context, id int64) error
}

const slotColumns = "id, mall_id, slot_number, floor, section, vehicle_type, hourly_rate, created_at"

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, s *Slot) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.parking_slots").
		Columns("mall_id", "slot_number", "floor", "section", "vehicle_type", "hourly_rate").
		Values(s.MallID, s.SlotNumber, s.Floor, s.Section, s.VehicleType, s.HourlyRate).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create slot query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&s.ID, &s.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrInvalidMall
		}
		return fmt.Errorf("create slot failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Slot, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+slotColumns+" FROM public.parking_slots WHERE id = $1", id)

	s, err := scanSlot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get slot failed: %w", err)
	}
	return s, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Slot, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "mall_id", "slot_number", "floor", "section", "vehicle_type", "hourly_rate", "created_at",
		"count(*) OVER() as total_count",
	).From("public.parking_slots")

	if filter.MallID > 0 {
		query = query.Where(squirrel.Eq{"mall_id": filter.MallID})
	}
	if filter.VehicleType != "" {
		query = query.Where(squirrel.Eq{"vehicle_type": filter.VehicleType})
	}

	query = query.OrderBy("id ASC")

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
		return nil, 0, fmt.Errorf("build list slots query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list slots failed: %w", err)
	}
	defer rows.Close()

	var slots []*Slot
	var total int
	for rows.Next() {
		var s Slot
		if err := rows.Scan(
			&s.ID, &s.MallID, &s.SlotNumber, &s.Floor, &s.Section,
			&s.VehicleType, &s.HourlyRate, &s.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan slot failed: %w", err)
		}
		slots = append(slots, &s)
	}
	return slots, total, nil
}

func (r *pgxRepository) ListByMall(ctx context.Context, mallID int64, vehicleType VehicleType) ([]*Slot, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "mall_id", "slot_number", "floor", "section", "vehicle_type", "hourly_rate", "created_at",
	).
		From("public.parking_slots").
		Where(squirrel.Eq{"mall_id": mallID}).
		OrderBy("id ASC")

	if vehicleType != "" {
		query = query.Where(squirrel.Eq{"vehicle_type": vehicleType})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list slots by mall query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list slots by mall failed: %w", err)
	}
	defer rows.Close()

	var slots []*Slot
	for rows.Next() {
		var s Slot
		if err := rows.Scan(
			&s.ID, &s.MallID, &s.SlotNumber, &s.Floor, &s.Section,
			&s.VehicleType, &s.HourlyRate, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan slot failed: %w", err)
		}
		slots = append(slots, &s)
	}
	return slots, nil
}

func (r *pgxRepository) Rates(ctx context.Context, mallID int64) ([]*Rate, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select("DISTINCT s.mall_id", "m.name", "s.vehicle_type", "s.hourly_rate").
		From("public.parking_slots s").
		Join("public.malls m ON s.mall_id = m.id").
		OrderBy("s.mall_id ASC", "s.vehicle_type ASC", "s.hourly_rate ASC")

	if mallID > 0 {
		query = query.Where(squirrel.Eq{"s.mall_id": mallID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build rates query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list rates failed: %w", err)
	}
	defer rows.Close()

	var rates []*Rate
	for rows.Next() {
		var rt Rate
		if err := rows.Scan(&rt.MallID, &rt.MallName, &rt.VehicleType, &rt.HourlyRate); err != nil {
			return nil, fmt.Errorf("scan rate failed: %w", err)
		}
		rates = append(rates, &rt)
	}
	return rates, nil
}

func (r *pgxRepository) Update(ctx context.Context, s *Slot) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.parking_slots").
		Set("slot_number", s.SlotNumber).
		Set("floor", s.Floor).
		Set("section", s.Section).
		Set("vehicle_type", s.VehicleType).
		Set("hourly_rate", s.HourlyRate).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update slot query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update slot failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	ct, err := r.pool.Exec(ctx, "DELETE FROM public.parking_slots WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete slot failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSlot(row pgx.Row) (*Slot, error) {
	var s Slot
	err := row.Scan(
		&s.ID, &s.MallID, &s.SlotNumber, &s.Floor, &s.Section,
		&s.VehicleType, &s.HourlyRate, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
