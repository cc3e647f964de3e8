package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/media-ingest/internal/adapter/repository"
	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
	"github.com/marcos-nsantos/media-ingest/internal/pkg/pagination"
)

const ingestionColumns = `
	id, batch_id, bucket, object_key, disposition, reason, width, height,
	moderation_status, moderation_confidence, moderation_fallback,
	labels, renditions, quarantine_bucket, quarantine_key, errors, created_at
`

type IngestionRepo struct {
	pool *pgxpool.Pool
}

func NewIngestionRepo(pool *pgxpool.Pool) *IngestionRepo {
	return &IngestionRepo{pool: pool}
}

func (r *IngestionRepo) Create(ctx context.Context, rec *entity.IngestionRecord) error {
	query := fmt.Sprintf(`
		INSERT INTO ingestion_records (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`, ingestionColumns)

	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.BatchID, rec.Bucket, rec.Key, string(rec.Disposition), rec.Reason,
		rec.Width, rec.Height,
		rec.ModerationStatus, rec.ModerationConfidence, rec.ModerationFallback,
		orEmpty(rec.Labels), orEmpty(rec.Renditions),
		rec.QuarantineBucket, rec.QuarantineKey, orEmpty(rec.Errors), rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting ingestion record: %w", err)
	}
	return nil
}

func (r *IngestionRepo) List(ctx context.Context, params repository.IngestionListParams) ([]entity.IngestionRecord, *pagination.Info, error) {
	conditions := []string{"TRUE"}
	var args []any
	argNum := 1

	if params.Disposition != "" {
		conditions = append(conditions, fmt.Sprintf("disposition = $%d", argNum))
		args = append(args, string(params.Disposition))
		argNum++
	}

	if params.Bucket != "" {
		conditions = append(conditions, fmt.Sprintf("bucket = $%d", argNum))
		args = append(args, params.Bucket)
		argNum++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM ingestion_records WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting ingestion records: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM ingestion_records
		WHERE %s
		ORDER BY created_at DESC, id
		LIMIT $%d OFFSET $%d
	`, ingestionColumns, whereClause, argNum, argNum+1)
	args = append(args, params.Pagination.Limit(), params.Pagination.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("querying ingestion records: %w", err)
	}
	defer rows.Close()

	var records []entity.IngestionRecord
	for rows.Next() {
		var rec entity.IngestionRecord
		var disposition string
		if err := rows.Scan(
			&rec.ID, &rec.BatchID, &rec.Bucket, &rec.Key, &disposition, &rec.Reason,
			&rec.Width, &rec.Height,
			&rec.ModerationStatus, &rec.ModerationConfidence, &rec.ModerationFallback,
			&rec.Labels, &rec.Renditions,
			&rec.QuarantineBucket, &rec.QuarantineKey, &rec.Errors, &rec.CreatedAt,
		); err != nil {
			return nil, nil, fmt.Errorf("scanning ingestion record: %w", err)
		}
		rec.Disposition = entity.Disposition(disposition)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating ingestion records: %w", err)
	}

	return records, params.Pagination.Info(total), nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
