package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"quickquote/internal/domain/entities"
	"quickquote/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var ErrImageUploadFailed = errors.New("image upload failed")

// PendingImage is an attachment chosen on the form but not uploaded yet.
type PendingImage struct {
	FileName    string
	ContentType string
	Data        []byte
	Comment     string
}

// ImagePath builds the blob path for an attachment:
// quotes/<providerId>/<quoteId>/<unixMillis>_<fileName>.
func ImagePath(providerID, quoteID string, at time.Time, fileName string) string {
	return fmt.Sprintf("quotes/%s/%s/%d_%s", providerID, quoteID, at.UnixMilli(), cleanFileName(fileName))
}

func cleanFileName(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "" || name == "." || name == "/" {
		return "image"
	}
	return name
}

type imageUploader struct {
	blobs interfaces.IBlobStore
	now   func() time.Time
	log   zerolog.Logger
}

// upload stores every pending image in parallel and returns them in input order,
// together with their blob handles.
//
// Either all images end up referenced or none do: when one upload fails the
// ones that already succeeded are deleted again. Callers release the handles
// when the quote write that should reference them fails.
func (u imageUploader) upload(ctx context.Context, providerID, quoteID string, pending []PendingImage) ([]entities.QuoteImage, []string, error) {
	if len(pending) == 0 {
		return []entities.QuoteImage{}, nil, nil
	}
	if u.blobs == nil {
		return nil, nil, fmt.Errorf("%w: no blob store configured", ErrImageUploadFailed)
	}

	images := make([]entities.QuoteImage, len(pending))
	handles := make([]string, len(pending))
	base := u.now()

	g, gctx := errgroup.WithContext(ctx)
	for i, img := range pending {
		// distinct timestamps keep same-named files apart
		blobPath := ImagePath(providerID, quoteID, base.Add(time.Duration(i)*time.Millisecond), img.FileName)
		g.Go(func() error {
			handle, err := u.blobs.Upload(gctx, blobPath, img.Data, img.ContentType)
			if err != nil {
				return fmt.Errorf("upload %s: %w", blobPath, err)
			}
			handles[i] = handle

			url, err := u.blobs.DownloadURL(gctx, handle)
			if err != nil {
				return fmt.Errorf("download url %s: %w", blobPath, err)
			}
			images[i] = entities.QuoteImage{ImageURL: url, Comment: img.Comment}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		u.release(ctx, quoteID, handles)
		u.log.Error().Err(err).Str("quote_id", quoteID).Msg("[quotes][upload] failed")
		return nil, nil, fmt.Errorf("%w: %v", ErrImageUploadFailed, err)
	}

	u.log.Debug().Str("quote_id", quoteID).Int("count", len(images)).Msg("[quotes][upload] done")
	return images, handles, nil
}

// release deletes blobs that no stored quote references. Failures are logged
// only; the save error is what the caller reports.
func (u imageUploader) release(ctx context.Context, quoteID string, handles []string) {
	if len(handles) == 0 || u.blobs == nil {
		return
	}
	if err := u.discard(context.WithoutCancel(ctx), handles); err != nil {
		u.log.Warn().Err(err).Str("quote_id", quoteID).Msg("[quotes][upload] cleanup incomplete")
	}
}

func (u imageUploader) discard(ctx context.Context, handles []string) error {
	var result *multierror.Error
	for _, h := range handles {
		if h == "" {
			continue
		}
		if err := u.blobs.Delete(ctx, h); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
