package storage

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/marcos-nsantos/media-ingest/internal/domain"
	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
)

// MemoryObject is a stored object of the MemoryStore.
type MemoryObject struct {
	Data         []byte
	ContentType  string
	CacheControl string
	Metadata     entity.ObjectMetadata
}

// MemoryStore keeps objects in process memory. It backs local runs and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[entity.ObjectAddress]MemoryObject
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		objects: make(map[entity.ObjectAddress]MemoryObject),
	}
}

func (m *MemoryStore) Get(_ context.Context, addr entity.ObjectAddress) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	obj, ok := m.objects[addr]
	if !ok {
		return nil, fmt.Errorf("getting %s: %w", addr, domain.ErrObjectNotFound)
	}
	return append([]byte(nil), obj.Data...), nil
}

func (m *MemoryStore) Put(_ context.Context, addr entity.ObjectAddress, data []byte, contentType, cacheControl string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.objects[addr] = MemoryObject{
		Data:         append([]byte(nil), data...),
		ContentType:  contentType,
		CacheControl: cacheControl,
		Metadata:     entity.ObjectMetadata{},
	}
	return nil
}

func (m *MemoryStore) Copy(_ context.Context, src, dst entity.ObjectAddress) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	obj, ok := m.objects[src]
	if !ok {
		return fmt.Errorf("copying %s: %w", src, domain.ErrObjectNotFound)
	}
	obj.Data = append([]byte(nil), obj.Data...)
	obj.Metadata = maps.Clone(obj.Metadata)
	m.objects[dst] = obj
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, addr entity.ObjectAddress) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.objects, addr)
	return nil
}

func (m *MemoryStore) ReplaceMetadata(_ context.Context, addr entity.ObjectAddress, metadata entity.ObjectMetadata) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	obj, ok := m.objects[addr]
	if !ok {
		return fmt.Errorf("replacing metadata of %s: %w", addr, domain.ErrObjectNotFound)
	}
	obj.Metadata = maps.Clone(metadata)
	m.objects[addr] = obj
	return nil
}

func (m *MemoryStore) Exists(_ context.Context, addr entity.ObjectAddress) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.objects[addr]
	return ok, nil
}

// Object returns a copy of the stored object for inspection.
func (m *MemoryStore) Object(addr entity.ObjectAddress) (MemoryObject, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	obj, ok := m.objects[addr]
	if !ok {
		return MemoryObject{}, false
	}
	obj.Data = append([]byte(nil), obj.Data...)
	obj.Metadata = maps.Clone(obj.Metadata)
	return obj, true
}

// Keys lists the keys stored under bucket.
func (m *MemoryStore) Keys(bucket string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var keys []string
	for addr := range m.objects {
		if addr.Bucket == bucket {
			keys = append(keys, addr.Key)
		}
	}
	return keys
}
