package videos

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"rx-education-api/internal/util"
)

type VideoServicePort interface {
	Upload(ctx context.Context, pharmacyID uint, file *multipart.FileHeader) (*StoredVideo, error)
	List(ctx context.Context, pharmacyID uint) ([]StoredVideo, error)
	Delete(ctx context.Context, pharmacyID uint, name string) error
}

// VideoService keeps pharmacy-hosted clips in a GCS bucket, one prefix per
// pharmacy. The stored URL is what dashboards paste into education records.
type VideoService struct {
	Client *storage.Client
	Bucket string
}

var _ VideoServicePort = (*VideoService)(nil)

func contentTypeFor(filename string) string {
	switch strings.ToLower(path.Ext(filename)) {
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".ogg":
		return "video/ogg"
	}
	return "application/octet-stream"
}

func (vs *VideoService) Upload(ctx context.Context, pharmacyID uint, file *multipart.FileHeader) (*StoredVideo, error) {
	if vs.Client == nil {
		return nil, fmt.Errorf("video storage is not configured")
	}
	if !util.AllowedVideoExt(file.Filename) {
		return nil, fmt.Errorf("only .mp4, .webm and .ogg uploads are supported")
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	objectName := util.VideoObjectName(pharmacyID, file.Filename)
	w := vs.Client.Bucket(vs.Bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = contentTypeFor(file.Filename)

	written, err := io.Copy(w, src)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return &StoredVideo{
		Name:      path.Base(objectName),
		URL:       util.PublicGCSURL(vs.Bucket, objectName),
		SizeBytes: written,
	}, nil
}

func (vs *VideoService) List(ctx context.Context, pharmacyID uint) ([]StoredVideo, error) {
	if vs.Client == nil {
		return nil, fmt.Errorf("video storage is not configured")
	}

	videos := []StoredVideo{}
	it := vs.Client.Bucket(vs.Bucket).Objects(ctx, &storage.Query{Prefix: util.VideoPrefix(pharmacyID)})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		videos = append(videos, StoredVideo{
			Name:      path.Base(attrs.Name),
			URL:       util.PublicGCSURL(vs.Bucket, attrs.Name),
			SizeBytes: attrs.Size,
			Updated:   attrs.Updated,
		})
	}
	return videos, nil
}

// Delete removes one clip. The name is re-sanitized and re-prefixed so a
// crafted name cannot escape the pharmacy's own prefix.
func (vs *VideoService) Delete(ctx context.Context, pharmacyID uint, name string) error {
	if vs.Client == nil {
		return fmt.Errorf("video storage is not configured")
	}

	objectName := util.VideoObjectName(pharmacyID, path.Base(name))
	return vs.Client.Bucket(vs.Bucket).Object(objectName).Delete(ctx)
}
