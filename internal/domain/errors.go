package domain

import "errors"

var (
	ErrObjectNotFound       = errors.New("object not found")
	ErrUnsupportedImage     = errors.New("unsupported image type")
	ErrDecodeImage          = errors.New("decoding image")
	ErrEncodeImage          = errors.New("encoding image")
	ErrInvalidNotification  = errors.New("invalid notification")
	ErrInvalidRenditionSpec = errors.New("invalid rendition spec")
	ErrQuarantineCopy       = errors.New("quarantine copy failed")
	ErrModerationFailed     = errors.New("moderation request failed")
	ErrNoRenditions         = errors.New("no renditions produced")
	ErrInvalidDisposition   = errors.New("invalid disposition")
)
