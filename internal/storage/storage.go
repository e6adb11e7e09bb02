// Package storage provides the object store attachments are kept in.
package storage

// Object is one stored file as seen in a folder listing.
type Object struct {
	Name string
	Size int64
}

// ObjectStore is the narrow contract the attachment flow needs. Upload
// must refuse to overwrite an existing path.
type ObjectStore interface {
	List(folder string) ([]Object, error)
	Upload(path string, data []byte, contentType string) error
	Download(path string) ([]byte, error)
	PublicURL(path string) string
}
