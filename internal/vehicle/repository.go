package vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines data access methods for vehicles.
type Repository interface {
	Create(ctx context.Context, v *Vehicle) error
	GetByID(ctx context.Context, id int64) (*Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (*Vehicle, error)
	ListByUser(ctx context.Context, userID string) ([]*Vehicle, error)
}

const vehicleColumns = "id, user_id, license_plate, make, model, color, vehicle_type, created_at"

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, v *Vehicle) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.vehicles").
		Columns("user_id", "license_plate", "make", "model", "color", "vehicle_type").
		Values(v.UserID, v.LicensePlate, v.Make, v.Model, v.Color, v.VehicleType).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create vehicle query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&v.ID, &v.CreatedAt); err != nil {
		return fmt.Errorf("create vehicle failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Vehicle, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+vehicleColumns+" FROM public.vehicles WHERE id = $1", id)
	return scanVehicle(row)
}

func (r *pgxRepository) GetByPlate(ctx context.Context, plate string) (*Vehicle, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+vehicleColumns+" FROM public.vehicles WHERE license_plate = $1", plate)
	return scanVehicle(row)
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID string) ([]*Vehicle, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+vehicleColumns+" FROM public.vehicles WHERE user_id = $1 ORDER BY id ASC", userID)
	if err != nil {
		return nil, fmt.Errorf("list vehicles failed: %w", err)
	}
	defer rows.Close()

	var vehicles []*Vehicle
	for rows.Next() {
		var v Vehicle
		if err := rows.Scan(
			&v.ID, &v.UserID, &v.LicensePlate, &v.Make, &v.Model,
			&v.Color, &v.VehicleType, &v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan vehicle failed: %w", err)
		}
		vehicles = append(vehicles, &v)
	}
	return vehicles, nil
}

func scanVehicle(row pgx.Row) (*Vehicle, error) {
	var v Vehicle
	err := row.Scan(
		&v.ID, &v.UserID, &v.LicensePlate, &v.Make, &v.Model,
		&v.Color, &v.VehicleType, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get vehicle failed: %w", err)
	}
	return &v, nil
}
