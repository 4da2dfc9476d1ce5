package mall

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines data access methods for malls.
type Repository interface {
	Create(ctx context.Context, m *Mall) error
	GetByID(ctx context.Context, id int64) (*Mall, error)
	List(ctx context.Context, filter Filter) ([]*Mall, int, error)
	All(ctx context.Context) ([]*Mall, error)
	Update(ctx context.Context, m *Mall) error
	Delete(ctx context.Context, id int64) error
}

const mallColumns = "id, name, address, city, state, zip_code, contact_number, email, opening_time, closing_time, created_at"

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, m *Mall) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.malls").
		Columns(
			"name", "address", "city", "state", "zip_code",
			"contact_number", "email", "opening_time", "closing_time",
		).
		Values(
			m.Name, m.Address, m.City, m.State, m.ZipCode,
			m.ContactNumber, m.Email, m.OpeningTime, m.ClosingTime,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create mall query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&m.ID, &m.CreatedAt); err != nil {
		return fmt.Errorf("create mall failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Mall, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+mallColumns+" FROM public.malls WHERE id = $1", id)

	m, err := scanMall(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get mall failed: %w", err)
	}
	return m, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Mall, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "name", "address", "city", "state", "zip_code",
		"contact_number", "email", "opening_time", "closing_time", "created_at",
		"count(*) OVER() as total_count",
	).From("public.malls")

	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"address": pattern},
			squirrel.ILike{"city": pattern},
		})
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
		return nil, 0, fmt.Errorf("build list malls query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list malls failed: %w", err)
	}
	defer rows.Close()

	var malls []*Mall
	var total int
	for rows.Next() {
		var m Mall
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Address, &m.City, &m.State, &m.ZipCode,
			&m.ContactNumber, &m.Email, &m.OpeningTime, &m.ClosingTime, &m.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan mall failed: %w", err)
		}
		malls = append(malls, &m)
	}
	return malls, total, nil
}

// All returns every mall ordered by id. The catalog is small, so the
// chat pipeline loads it whole to match names against user messages.
func (r *pgxRepository) All(ctx context.Context) ([]*Mall, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+mallColumns+" FROM public.malls ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("list all malls failed: %w", err)
	}
	defer rows.Close()

	var malls []*Mall
	for rows.Next() {
		var m Mall
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Address, &m.City, &m.State, &m.ZipCode,
			&m.ContactNumber, &m.Email, &m.OpeningTime, &m.ClosingTime, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan mall failed: %w", err)
		}
		malls = append(malls, &m)
	}
	return malls, nil
}

func (r *pgxRepository) Update(ctx context.Context, m *Mall) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.malls").
		Set("name", m.Name).
		Set("address", m.Address).
		Set("city", m.City).
		Set("state", m.State).
		Set("zip_code", m.ZipCode).
		Set("contact_number", m.ContactNumber).
		Set("email", m.Email).
		Set("opening_time", m.OpeningTime).
		Set("closing_time", m.ClosingTime).
		Where(squirrel.Eq{"id": m.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update mall query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update mall failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	ct, err := r.pool.Exec(ctx, "DELETE FROM public.malls WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete mall failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanMall(row pgx.Row) (*Mall, error) {
	var m Mall
	err := row.Scan(
		&m.ID, &m.Name, &m.Address, &m.City, &m.State, &m.ZipCode,
		&m.ContactNumber, &m.Email, &m.OpeningTime, &m.ClosingTime, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
