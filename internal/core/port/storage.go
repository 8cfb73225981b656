package port

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned by Fetch when no object exists under the
// requested name.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStorage is the outbound port for opaque byte-blob persistence. It is
// used only to keep the document writer's output around for download; no
// assembly logic depends on its implementation.
type BlobStorage interface {
	Save(ctx context.Context, name string, data []byte, contentType string) error
	Fetch(ctx context.Context, name string) ([]byte, string, error)
}
