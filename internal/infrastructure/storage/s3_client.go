package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/marcos-nsantos/media-ingest/internal/domain"
	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
	"github.com/marcos-nsantos/media-ingest/internal/infrastructure/config"
)

const defaultRequestTimeout = 30 * time.Second

// S3API is the subset of the S3 client the store uses.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	CopyObject(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

type S3Store struct {
	client  S3API
	timeout time.Duration
}

func NewS3Store(awsCfg aws.Config, cfg config.S3Config) *S3Store {
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	return NewS3StoreWithClient(client, cfg.RequestTimeout)
}

func NewS3StoreWithClient(client S3API, timeout time.Duration) *S3Store {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &S3Store{client: client, timeout: timeout}
}

func (s *S3Store) Get(ctx context.Context, addr entity.ObjectAddress) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(addr.Bucket),
		Key:    aws.String(addr.Key),
	})
	if err != nil {
		return nil, wrapS3Error("getting object from s3", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading object body: %w", err)
	}
	return data, nil
}

func (s *S3Store) Put(ctx context.Context, addr entity.ObjectAddress, data []byte, contentType, cacheControl string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	input := &s3.PutObjectInput{
		Bucket:        aws.String(addr.Bucket),
		Key:           aws.String(addr.Key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if cacheControl != "" {
		input.CacheControl = aws.String(cacheControl)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return wrapS3Error("uploading to s3", err)
	}
	return nil
}

func (s *S3Store) Copy(ctx context.Context, src, dst entity.ObjectAddress) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(dst.Bucket),
		Key:        aws.String(dst.Key),
		CopySource: aws.String(copySource(src)),
	})
	if err != nil {
		return wrapS3Error("copying object in s3", err)
	}
	return nil
}

// Delete treats a missing object as already deleted.
func (s *S3Store) Delete(ctx context.Context, addr entity.ObjectAddress) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(addr.Bucket),
		Key:    aws.String(addr.Key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return wrapS3Error("deleting from s3", err)
	}
	return nil
}

// ReplaceMetadata copies the object onto itself with a REPLACE directive.
// Content headers are carried over, S3 would otherwise reset them.
func (s *S3Store) ReplaceMetadata(ctx context.Context, addr entity.ObjectAddress, metadata entity.ObjectMetadata) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(addr.Bucket),
		Key:    aws.String(addr.Key),
	})
	if err != nil {
		return wrapS3Error("reading object headers", err)
	}

	_, err = s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:            aws.String(addr.Bucket),
		Key:               aws.String(addr.Key),
		CopySource:        aws.String(copySource(addr)),
		Metadata:          metadata,
		MetadataDirective: types.MetadataDirectiveReplace,
		ContentType:       head.ContentType,
		CacheControl:      head.CacheControl,
	})
	if err != nil {
		return wrapS3Error("replacing object metadata", err)
	}
	return nil
}

func (s *S3Store) Exists(ctx context.Context, addr entity.ObjectAddress) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(addr.Bucket),
		Key:    aws.String(addr.Key),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, wrapS3Error("checking object", err)
	}
	return true, nil
}

// copySource builds the URL-encoded "bucket/key" value CopyObject expects.
func copySource(addr entity.ObjectAddress) string {
	segments := strings.Split(addr.Key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return addr.Bucket + "/" + strings.Join(segments, "/")
}

func wrapS3Error(op string, err error) error {
	if isNotFound(err) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrObjectNotFound, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
