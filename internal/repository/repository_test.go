package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexgr8080/papercoverterieee/internal/db"
	"github.com/Alexgr8080/papercoverterieee/internal/models"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()
	dbFile := filepath.Join(t.TempDir(), "papers.db")

	require.NoError(t, db.RunMigrations(dbFile))

	conn, err := db.NewSQLiteDB(dbFile)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewRepository(conn)
}

func sampleJob() *models.ConversionJob {
	return &models.ConversionJob{
		ID:        "abc12345",
		Filename:  "paper.docx",
		BodyPath:  "/outputs/abc12345/body.md",
		MediaDir:  "/outputs/abc12345/media",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleJob()))

	job, err := repo.GetByID(ctx, "abc12345")
	require.NoError(t, err)
	require.NotNil(t, job)

	assert.Equal(t, "paper.docx", job.Filename)
	assert.Equal(t, "/outputs/abc12345/body.md", job.BodyPath)
	assert.Equal(t, "/outputs/abc12345/media", job.MediaDir)
	assert.Nil(t, job.ArchivePath)
	assert.Nil(t, job.GeneratedAt)
}

func TestGetMissingReturnsNil(t *testing.T) {
	repo := newTestRepo(t)

	job, err := repo.GetByID(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, job)
}

func TestMarkGenerated(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleJob()))
	require.NoError(t, repo.MarkGenerated(ctx, "abc12345", "/outputs/abc12345/ieee_output.zip"))

	job, err := repo.GetByID(ctx, "abc12345")
	require.NoError(t, err)
	require.NotNil(t, job)
	require.NotNil(t, job.ArchivePath)
	assert.Equal(t, "/outputs/abc12345/ieee_output.zip", *job.ArchivePath)
	assert.NotNil(t, job.GeneratedAt)
}

func TestCreateDuplicateIDFails(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleJob()))
	assert.Error(t, repo.Create(ctx, sampleJob()))
}
