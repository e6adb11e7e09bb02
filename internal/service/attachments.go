package service

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	unsafeRE     = regexp.MustCompile(`[^\w.-]`)
)

// SanitizeFilename reduces an arbitrary filename to ASCII letters,
// digits, underscores, dots and dashes. Diacritics are stripped rather
// than dropped, whitespace runs collapse to single underscores. A name
// with nothing left gets a random one, keeping the original extension.
func SanitizeFilename(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(filepath.Base(name), ext)

	decomposed := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	base, _, _ = transform.String(decomposed, base)
	ext, _, _ = transform.String(decomposed, ext)

	base = whitespaceRE.ReplaceAllString(base, "_")
	base = unsafeRE.ReplaceAllString(base, "")
	ext = unsafeRE.ReplaceAllString(whitespaceRE.ReplaceAllString(ext, ""), "")

	if base == "" {
		base = uuid.New().String()
	}

	return base + ext
}

// UploadAttachment stores a local file in the object store under a
// sanitized name and returns the stored name. A name collision never
// overwrites: the name gets a numeric suffix until it is free.
func (s *Service) UploadAttachment(localPath string) (string, error) {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", err
	}

	objects, err := s.store.List("")
	if err != nil {
		logErr(err, "upload attachment")
		return "", err
	}
	taken := make(map[string]struct{}, len(objects))
	for _, object := range objects {
		taken[object.Name] = struct{}{}
	}

	name := SanitizeFilename(filepath.Base(localPath))
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 2; ; i++ {
		if _, ok := taken[name]; !ok {
			break
		}
		name = fmt.Sprintf("%s_%d%s", base, i, ext)
	}

	if err := s.store.Upload(name, data, "application/octet-stream"); err != nil {
		logErr(err, "upload attachment")
		return "", err
	}

	return name, nil
}

// AttachmentURL returns the public URL of a stored attachment.
func (s *Service) AttachmentURL(name string) string {
	return s.store.PublicURL(strings.TrimLeft(name, "/"))
}

// DownloadAttachment fetches a stored attachment's bytes.
func (s *Service) DownloadAttachment(name string) ([]byte, error) {
	data, err := s.store.Download(name)
	if err != nil {
		logErr(err, "download attachment")
		return nil, err
	}

	return data, nil
}
