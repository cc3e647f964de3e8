package entity

import (
	"fmt"
	"path"
	"strings"
)

// ObjectAddress identifies a single stored object.
type ObjectAddress struct {
	Bucket string
	Key    string
}

func NewObjectAddress(bucket, key string) ObjectAddress {
	return ObjectAddress{Bucket: bucket, Key: key}
}

func (a ObjectAddress) String() string {
	return fmt.Sprintf("s3://%s/%s", a.Bucket, a.Key)
}

// Ext returns the key extension as stored, dot included.
func (a ObjectAddress) Ext() string {
	return path.Ext(a.Key)
}

// Prefix returns the key up to and including its last "/", or "" for
// top-level keys. The key is not cleaned: "a//b/x.jpg" keeps "a//b/" so
// derived keys sit next to the source exactly as it was stored.
func (a ObjectAddress) Prefix() string {
	return a.Key[:strings.LastIndex(a.Key, "/")+1]
}

// Base returns the key after its last "/".
func (a ObjectAddress) Base() string {
	return a.Key[strings.LastIndex(a.Key, "/")+1:]
}

func (a ObjectAddress) IsZero() bool {
	return a.Bucket == "" || a.Key == ""
}
