package postgres_test

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/database"
)

type TestDB struct {
	Pool      *pgxpool.Pool
	Container testcontainers.Container
}

// SetupTestDB starts a throwaway Postgres, applies the migrations and
// registers cleanup on t.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("ingest_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connString, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to build connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}

	db := &TestDB{Pool: pool, Container: container}
	t.Cleanup(func() { db.cleanup(t) })

	if err := database.RunMigrations(ctx, pool, migrationsPath()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func (db *TestDB) cleanup(t *testing.T) {
	if db.Pool != nil {
		db.Pool.Close()
	}
	if db.Container != nil {
		if err := db.Container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}
}

func (db *TestDB) Truncate(t *testing.T) {
	t.Helper()
	if _, err := db.Pool.Exec(context.Background(), "TRUNCATE TABLE ingestion_records"); err != nil {
		t.Fatalf("failed to truncate ingestion_records: %v", err)
	}
}

func newRecord(bucket, key string, disposition entity.Disposition, createdAt time.Time) *entity.IngestionRecord {
	return &entity.IngestionRecord{
		ID:          uuid.New(),
		BatchID:     uuid.New(),
		Bucket:      bucket,
		Key:         key,
		Disposition: disposition,
		Labels:      []string{},
		Renditions:  []string{},
		Errors:      []string{},
		CreatedAt:   createdAt.UTC().Truncate(time.Microsecond),
	}
}

func migrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..", "..", "..", "migrations")
}

