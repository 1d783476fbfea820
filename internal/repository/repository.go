package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Alexgr8080/papercoverterieee/internal/models"
)

type Repository interface {
	Create(ctx context.Context, job *models.ConversionJob) error
	// GetByID returns nil, nil when no job exists for the id.
	GetByID(ctx context.Context, id string) (*models.ConversionJob, error)
	MarkGenerated(ctx context.Context, id, archivePath string) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, job *models.ConversionJob) error {
	query := `
		INSERT INTO jobs (id, filename, body_path, media_dir, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		job.ID,
		job.Filename,
		job.BodyPath,
		job.MediaDir,
		job.CreatedAt,
	)

	return err
}

func (r *repository) GetByID(ctx context.Context, id string) (*models.ConversionJob, error) {
	var job models.ConversionJob

	query := `
		SELECT id, filename, body_path, media_dir, archive_path, created_at, generated_at
		FROM jobs
		WHERE id = $1
	`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&job.ID,
		&job.Filename,
		&job.BodyPath,
		&job.MediaDir,
		&job.ArchivePath,
		&job.CreatedAt,
		&job.GeneratedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &job, nil
}

func (r *repository) MarkGenerated(ctx context.Context, id, archivePath string) error {
	query := `
		UPDATE jobs
		SET archive_path = $2, generated_at = $3
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, archivePath, time.Now())

	return err
}
