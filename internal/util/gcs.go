package util

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

var objectPartRe = regexp.MustCompile(`[^a-z0-9_\-.]`)

// SanitizePart normalizes a user-supplied filename fragment for use in a
// GCS object name.
func SanitizePart(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = objectPartRe.ReplaceAllString(s, "")
	if s == "" || strings.Trim(s, ".") == "" {
		return "unknown"
	}
	return s
}

// VideoObjectName builds the per-pharmacy object key for an uploaded clip.
// Keeping uploads under a pharmacy prefix is what lets listing stay
// tenant-scoped.
func VideoObjectName(pharmacyID uint, filename string) string {
	return fmt.Sprintf("education/%d/%s", pharmacyID, SanitizePart(filename))
}

// VideoPrefix is the listing prefix for one pharmacy's uploads.
func VideoPrefix(pharmacyID uint) string {
	return fmt.Sprintf("education/%d/", pharmacyID)
}

// PublicGCSURL builds the public object URL. Objects in the education bucket
// are world-readable so patient pages can stream them directly.
func PublicGCSURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}

// AllowedVideoExt reports whether the filename carries an extension the
// patient page can play natively.
func AllowedVideoExt(filename string) bool {
	switch strings.ToLower(path.Ext(filename)) {
	case ".mp4", ".webm", ".ogg":
		return true
	}
	return false
}
