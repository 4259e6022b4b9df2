// Package media resolves the files an extraction run leaves on disk and
// describes them for serving: candidate extensions per content kind,
// MIME types, and thumbnails for completed image downloads.
package media

import (
	"os"
	"path/filepath"
	"strings"
)

// MinOutputSize is the smallest byte count a download output may have.
// Anything under it is treated as absent: extractors sometimes leave an
// empty or truncated file behind after bailing out.
const MinOutputSize = 1024

var candidateExts = map[string][]string{
	"video": {".mp4", ".mkv", ".webm", ".avi", ".mov"},
	"image": {".jpg", ".jpeg", ".png", ".webp", ".gif", ".bmp"},
	"audio": {".mp3", ".m4a", ".wav", ".flac", ".ogg"},
}

// LocateOutput finds the real file behind a reported output path.
// Post-processing can change the extension after the path was reported,
// so the path is checked as-is first, then with each candidate extension
// for the content kind. Returns "" when nothing usable exists.
func LocateOutput(reported string, kind string) string {
	if usable(reported) {
		return reported
	}
	if reported == "" {
		return ""
	}
	root := strings.TrimSuffix(reported, filepath.Ext(reported))
	for _, ext := range candidateExts[kind] {
		if candidate := root + ext; usable(candidate) {
			return candidate
		}
	}
	return ""
}

func usable(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Size() >= MinOutputSize
}

var mimeTypes = map[string]string{
	".mp4":  "video/mp4",
	".mkv":  "video/x-matroska",
	".webm": "video/webm",
	".avi":  "video/x-msvideo",
	".mov":  "video/quicktime",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".wav":  "audio/wav",
	".flac": "audio/flac",
	".ogg":  "audio/ogg",
}

// ContentTypeFor returns the MIME type a downloaded file should be
// served with, falling back to application/octet-stream.
func ContentTypeFor(filename string) string {
	if mt, ok := mimeTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return mt
	}
	return "application/octet-stream"
}
