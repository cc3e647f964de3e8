package entity

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MetaProcessed            = "processed"
	MetaOriginalDimensions   = "original_dimensions"
	MetaProcessedVersions    = "processed_versions"
	MetaModerationStatus     = "moderation_status"
	MetaModerationConfidence = "moderation_confidence"
	MetaModerationFallback   = "moderation_fallback"
)

// ObjectMetadata is written with replace-all semantics.
type ObjectMetadata map[string]string

func NewApprovedMetadata(asset *ImageAsset, renditions []string, verdict Approved) ObjectMetadata {
	meta := ObjectMetadata{
		MetaProcessed:            "true",
		MetaOriginalDimensions:   asset.Dimensions(),
		MetaProcessedVersions:    strings.Join(renditions, ","),
		MetaModerationStatus:     ModerationApproved,
		MetaModerationConfidence: FormatConfidence(verdict.Confidence),
	}
	if verdict.Fallback {
		meta[MetaModerationFallback] = "true"
	}
	return meta
}

// FormatConfidence always keeps a decimal point: 95 -> "95.0", 92.37 -> "92.37".
func FormatConfidence(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func dimensions(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}
