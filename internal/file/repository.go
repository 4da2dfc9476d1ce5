package file

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, f *File) error
	GetByID(ctx context.Context, id string) (*File, error)
	ListByMall(ctx context.Context, mallID int64) ([]*File, error)
	Delete(ctx context.Context, id string) error
}

const fileColumns = "id, user_id, mall_id, filename, storage_path, thumbnail_path, content_type, size, created_at"

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, f *File) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO public.files
			(id, user_id, mall_id, filename, storage_path, thumbnail_path, content_type, size)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`,
		f.ID, f.UserID, f.MallID, f.Filename, f.StoragePath, f.ThumbnailPath, f.ContentType, f.Size,
	).Scan(&f.CreatedAt)
	if err != nil {
		return fmt.Errorf("create file record failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*File, error) {
	var f File
	err := r.pool.QueryRow(ctx, "SELECT "+fileColumns+" FROM public.files WHERE id = $1", id).Scan(
		&f.ID, &f.UserID, &f.MallID, &f.Filename, &f.StoragePath, &f.ThumbnailPath,
		&f.ContentType, &f.Size, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get file record failed: %w", err)
	}
	return &f, nil
}

func (r *pgxRepository) ListByMall(ctx context.Context, mallID int64) ([]*File, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+fileColumns+" FROM public.files WHERE mall_id = $1 ORDER BY created_at DESC", mallID)
	if err != nil {
		return nil, fmt.Errorf("list files by mall failed: %w", err)
	}
	defer rows.Close()

	var files []*File
	for rows.Next() {
		var f File
		if err := rows.Scan(
			&f.ID, &f.UserID, &f.MallID, &f.Filename, &f.StoragePath, &f.ThumbnailPath,
			&f.ContentType, &f.Size, &f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan file record failed: %w", err)
		}
		files = append(files, &f)
	}
	return files, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, "DELETE FROM public.files WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete file record failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
