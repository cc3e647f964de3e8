package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marcos-nsantos/media-ingest/internal/domain"
)

const (
	RenditionContentType  = "image/jpeg"
	RenditionCacheControl = "max-age=31536000, immutable"
)

const (
	RenditionThumbnail = "thumbnail"
	RenditionSmall     = "small"
	RenditionMedium    = "medium"
	RenditionLarge     = "large"
)

// RenditionSpec is a named bounding box a source image is fitted into.
type RenditionSpec struct {
	Name      string
	MaxWidth  int
	MaxHeight int
}

func (s RenditionSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: empty name", domain.ErrInvalidRenditionSpec)
	}
	if s.MaxWidth <= 0 || s.MaxHeight <= 0 {
		return fmt.Errorf("%w: %s has non-positive bounds %dx%d", domain.ErrInvalidRenditionSpec, s.Name, s.MaxWidth, s.MaxHeight)
	}
	return nil
}

// KeyFor returns where the rendition of src is stored:
// {dir}/processed/{name}/{basename}. Top-level keys get processed/{name}/...
func (s RenditionSpec) KeyFor(src ObjectAddress) string {
	return src.Prefix() + "processed/" + s.Name + "/" + src.Base()
}

// RenditionSpecs is the configured rendition table. It decodes from
// "name:WxH,name:WxH" so it can be read straight from the environment.
type RenditionSpecs []RenditionSpec

func DefaultRenditionSpecs() RenditionSpecs {
	return RenditionSpecs{
		{Name: RenditionThumbnail, MaxWidth: 150, MaxHeight: 150},
		{Name: RenditionSmall, MaxWidth: 400, MaxHeight: 400},
		{Name: RenditionMedium, MaxWidth: 800, MaxHeight: 800},
		{Name: RenditionLarge, MaxWidth: 1200, MaxHeight: 1200},
	}
}

// Decode implements envconfig.Decoder.
func (r *RenditionSpecs) Decode(value string) error {
	specs, err := ParseRenditionSpecs(value)
	if err != nil {
		return err
	}
	*r = specs
	return nil
}

func ParseRenditionSpecs(value string) (RenditionSpecs, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultRenditionSpecs(), nil
	}

	var specs RenditionSpecs
	seen := make(map[string]struct{})
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		name, size, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not name:WxH", domain.ErrInvalidRenditionSpec, item)
		}
		w, h, ok := strings.Cut(strings.ToLower(size), "x")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not name:WxH", domain.ErrInvalidRenditionSpec, item)
		}
		width, err := strconv.Atoi(strings.TrimSpace(w))
		if err != nil {
			return nil, fmt.Errorf("%w: width of %q: %v", domain.ErrInvalidRenditionSpec, item, err)
		}
		height, err := strconv.Atoi(strings.TrimSpace(h))
		if err != nil {
			return nil, fmt.Errorf("%w: height of %q: %v", domain.ErrInvalidRenditionSpec, item, err)
		}

		spec := RenditionSpec{Name: strings.TrimSpace(name), MaxWidth: width, MaxHeight: height}
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[spec.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", domain.ErrInvalidRenditionSpec, spec.Name)
		}
		seen[spec.Name] = struct{}{}
		specs = append(specs, spec)
	}

	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: no renditions configured", domain.ErrInvalidRenditionSpec)
	}
	return specs, nil
}

func (r RenditionSpecs) Names() []string {
	names := make([]string, len(r))
	for i, s := range r {
		names[i] = s.Name
	}
	return names
}

// RenditionResult is one encoded rendition ready to upload.
type RenditionResult struct {
	Spec      RenditionSpec
	Key       string
	Data      []byte
	Width     int
	Height    int
	SizeBytes int
}

func NewRenditionResult(spec RenditionSpec, key string, data []byte, width, height int) *RenditionResult {
	return &RenditionResult{
		Spec:      spec,
		Key:       key,
		Data:      data,
		Width:     width,
		Height:    height,
		SizeBytes: len(data),
	}
}
