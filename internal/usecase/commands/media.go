package commands

import (
	"context"
	"io"
	"mime"
	"strings"

	"discover-api/internal/domain/media"
	"discover-api/internal/infra/metrics"
	"discover-api/internal/pkg/clock"
	"discover-api/internal/pkg/config"
	"discover-api/internal/pkg/errs"
	"discover-api/internal/usecase/shared"

	"github.com/gabriel-vasile/mimetype"
)

type UploadMediaInput struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type UploadMediaResult struct {
	ID       int64
	URL      string
	MimeType string
}

type MediaCommands interface {
	// Upload stores the bytes under <uuid>/<sanitized filename> and records the media row.
	Upload(ctx context.Context, in UploadMediaInput) (*UploadMediaResult, error)
}

type mediaUseCaseImpl struct {
	uow      shared.UnitOfWork
	blobs    shared.BlobStore
	clock    clock.Clock
	maxBytes int64
}

func NewMediaUseCase(uow shared.UnitOfWork, blobs shared.BlobStore, clk clock.Clock, cfg config.StorageConfig) MediaCommands {
	return &mediaUseCaseImpl{
		uow:      uow,
		blobs:    blobs,
		clock:    clk,
		maxBytes: cfg.MaxUploadBytes,
	}
}

func (uc *mediaUseCaseImpl) Upload(ctx context.Context, in UploadMediaInput) (*UploadMediaResult, error) {
	declared := normalizeMimeType(in.ContentType)
	data, err := uc.readBody(in.Body)
	if err != nil {
		metrics.RecordUpload(uploadLabel(declared), metrics.StatusError, 0)
		return nil, err
	}

	m, err := media.NewMedia(in.Filename, detectMimeType(declared, data), uc.clock.Now())
	if err != nil {
		metrics.RecordUpload(uploadLabel(declared), metrics.StatusError, 0)
		return nil, invalidRequest(err)
	}
	label := uploadLabel(m.MimeType())

	if err := uc.blobs.Put(ctx, m.StorageKey(), data, m.MimeType()); err != nil {
		metrics.RecordUpload(label, metrics.StatusError, 0)
		return nil, errs.Wrap(err, "failed to store media object")
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Media().Create(ctx, tx.DB(), m)
		if err != nil {
			return err
		}
		id = created
		return nil
	})
	if err != nil {
		metrics.RecordUpload(label, metrics.StatusError, 0)
		return nil, err
	}

	metrics.RecordUpload(label, metrics.StatusSuccess, int64(len(data)))
	return &UploadMediaResult{
		ID:       id,
		URL:      uc.blobs.Resolve(m.StorageID(), m.Name()),
		MimeType: m.MimeType(),
	}, nil
}

func (uc *mediaUseCaseImpl) readBody(body io.Reader) ([]byte, error) {
	if body == nil {
		return nil, ErrEmptyUpload
	}
	limit := uc.maxBytes
	if limit <= 0 {
		limit = defaultMaxUploadBytes
	}
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, errs.Wrap(err, "failed to read upload")
	}
	if int64(len(data)) > limit {
		return nil, ErrUploadTooLarge
	}
	if len(data) == 0 {
		return nil, ErrEmptyUpload
	}
	return data, nil
}

const defaultMaxUploadBytes = 20 << 20

// detectMimeType trusts the declared type unless it is missing or generic,
// in which case the content is sniffed. declared must already be normalized.
func detectMimeType(declared string, data []byte) string {
	if declared != "" && declared != media.DefaultMimeType {
		return declared
	}
	return mimetype.Detect(data).String()
}

// normalizeMimeType drops parameters and case from a Content-Type header.
// Unparseable values come back empty.
func normalizeMimeType(contentType string) string {
	mt, _, err := mime.ParseMediaType(strings.TrimSpace(contentType))
	if err != nil {
		return ""
	}
	return mt
}

const otherUploadLabel = "other"

// uploadLabel keeps the metrics label set bounded to types mimetype knows.
func uploadLabel(mimeType string) string {
	if mimeType == "" {
		return otherUploadLabel
	}
	if known := mimetype.Lookup(mimeType); known != nil {
		return known.String()
	}
	return otherUploadLabel
}
