package utils

import (
	"mime"
	"path/filepath"
	"regexp"
	"strings"
)

var dangerousChars = regexp.MustCompile(`[<>:"|?*\x00-\x1f\x7f]`)

// SanitizeFileName sanitizes a filename to ensure it's safe for storage
func SanitizeFileName(filename string) string {
	// Remove path components
	filename = filepath.Base(filename)

	// Replace dangerous characters with underscore
	filename = dangerousChars.ReplaceAllString(filename, "_")

	// Trim whitespace
	filename = strings.TrimSpace(filename)

	// Ensure filename is not empty
	if filename == "" || filename == "." || filename == ".." {
		filename = "file"
	}

	return filename
}

// ContentTypeFromName หา content type จากนามสกุลของชื่อไฟล์
// storage key ไม่มีนามสกุล - ชื่อไฟล์ต้นฉบับเป็นที่เดียวที่มี
func ContentTypeFromName(name string) string {
	ext := strings.ToLower(filepath.Ext(name))

	switch ext {
	case ".mp4":
		return "video/mp4"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	}

	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}
