package request

import (
	"net/url"
	"strings"

	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
)

// S3EventNotification is the body S3 (or an SNS/EventBridge relay) posts for
// bucket events.
type S3EventNotification struct {
	Records []S3EventRecord `json:"Records" binding:"required"`
}

type S3EventRecord struct {
	EventSource string   `json:"eventSource"`
	EventName   string   `json:"eventName"`
	S3          S3Entity `json:"s3"`
}

type S3Entity struct {
	Bucket S3Bucket `json:"bucket"`
	Object S3Object `json:"object"`
}

type S3Bucket struct {
	Name string `json:"name"`
}

type S3Object struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
}

// Addresses converts the records into object addresses. Keys arrive
// form-encoded ("+" for spaces). Copy and removal events are dropped: the
// pipeline's own metadata rewrite is a self-copy and must not re-trigger it.
//
// A record without a bucket or key, or with a key that does not unescape, is
// kept as an address without a bucket so it fails on its own instead of
// taking the rest of the batch down with it.
func (n S3EventNotification) Addresses() []entity.ObjectAddress {
	addrs := make([]entity.ObjectAddress, 0, len(n.Records))
	for _, rec := range n.Records {
		if !isCreateEvent(rec.EventName) {
			continue
		}
		addrs = append(addrs, rec.address())
	}
	return addrs
}

func (r S3EventRecord) address() entity.ObjectAddress {
	bucket, raw := r.S3.Bucket.Name, r.S3.Object.Key
	if bucket == "" || raw == "" {
		return entity.NewObjectAddress("", raw)
	}
	key, err := url.QueryUnescape(raw)
	if err != nil {
		return entity.NewObjectAddress("", raw)
	}
	return entity.NewObjectAddress(bucket, key)
}

func isCreateEvent(name string) bool {
	if name == "" {
		return true
	}
	name = strings.TrimPrefix(name, "s3:")
	return strings.HasPrefix(name, "ObjectCreated:") && name != "ObjectCreated:Copy"
}
