package media

import (
	"context"
	"io"
	"path"

	"cloud.google.com/go/storage"

	"github.com/rakafirdaus/go-blog-api/pkg/helpers"
)

// GCSStore ingests uploads into a Google Cloud Storage bucket and references
// them by their public URL.
type GCSStore struct {
	Client *storage.Client
	Bucket string
	Prefix string
}

func NewGCSStore(client *storage.Client, bucket string) *GCSStore {
	return &GCSStore{Client: client, Bucket: bucket, Prefix: "uploads"}
}

func (s *GCSStore) Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	objectPath := path.Join(s.Prefix, objectName(filename))
	return helpers.UploadObject(ctx, s.Client, s.Bucket, objectPath, contentType, r)
}
