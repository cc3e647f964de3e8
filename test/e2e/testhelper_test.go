package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/media-ingest/internal/adapter/handler"
	pgRepo "github.com/marcos-nsantos/media-ingest/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/database"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/server"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/storage"
	"github.com/marcos-nsantos/media-ingest/internal/usecase/audit"
	"github.com/marcos-nsantos/media-ingest/internal/usecase/ingest"
	"github.com/marcos-nsantos/media-ingest/internal/usecase/moderation"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	testBucket     = "media"
	apiBasePath    = "/api/v1"
)

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	Store      *storage.MemoryStore
	BaseURL    string
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	err = database.RunMigrations(ctx, pool, getMigrationsPath())
	require.NoError(t, err)

	logger, _ := zap.NewDevelopment()
	store := storage.NewMemoryStore()
	records := pgRepo.NewIngestionRepo(pool)

	// Objects under "flagged/" come back with an explicit label.
	moderator := moderation.NewService(keyPrefixDetector{prefix: "flagged/"}, 70, time.Second, logger)

	ingestSvc := ingest.NewService(
		store,
		storage.NewImageCodec(),
		storage.NewRenditionPlanner(),
		moderator,
		records,
		ingest.Config{
			Renditions:  entity.DefaultRenditionSpecs(),
			Quality:     ingest.DefaultQuality,
			Concurrency: 2,
		},
		logger,
	)

	router := server.NewRouter(server.RouterConfig{
		IngestHandler:    handler.NewIngestHandler(ingestSvc, logger),
		IngestionHandler: handler.NewIngestionHandler(audit.NewService(records)),
		Logger:           logger,
		Environment:      "test",
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Pool:      pool,
		Container: pgContainer,
		Store:     store,
		BaseURL:   ts.URL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.Pool.Close()

	ctx := context.Background()
	if err := app.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) request(method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, app.BaseURL+apiBasePath+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil)
}

func (app *TestApp) post(path string, body any) (*http.Response, error) {
	return app.request(http.MethodPost, path, body)
}

// upload places a JPEG of the given size in the test bucket.
func (app *TestApp) upload(t *testing.T, key string, width, height int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	require.NoError(t, app.Store.Put(context.Background(), entity.NewObjectAddress(testBucket, key), buf.Bytes(), "image/jpeg", ""))
}

// notification builds an ObjectCreated:Put event for each key.
func notification(keys ...string) map[string]any {
	records := make([]map[string]any, 0, len(keys))
	for _, key := range keys {
		records = append(records, map[string]any{
			"eventName": "ObjectCreated:Put",
			"s3": map[string]any{
				"bucket": map[string]any{"name": testBucket},
				"object": map[string]any{"key": key},
			},
		})
	}
	return map[string]any{"Records": records}
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

type keyPrefixDetector struct {
	prefix string
}

func (d keyPrefixDetector) DetectLabels(_ context.Context, addr entity.ObjectAddress, _ float64) ([]entity.ModerationLabel, error) {
	if strings.HasPrefix(addr.Key, d.prefix) {
		return []entity.ModerationLabel{{Name: "Explicit Nudity", Confidence: 98.5}}, nil
	}
	return nil, nil
}

// getMigrationsPath returns the absolute path to the migrations directory
func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
