package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"courseadmin/internal/domain"

	"github.com/google/uuid"
)

type Presigner interface {
	PresignUpload(ctx context.Context, key, contentType string) (domain.Upload, error)
}

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// MediaUseCase issues upload URLs. A nil storage means uploads are off.
type MediaUseCase struct {
	storage Presigner
	now     func() time.Time
}

func NewMediaUseCase(storage Presigner) *MediaUseCase {
	return &MediaUseCase{storage: storage, now: time.Now}
}

func (uc *MediaUseCase) CreateUpload(ctx context.Context, req domain.UploadRequest) (domain.Upload, error) {
	if uc.storage == nil {
		return domain.Upload{}, domain.ErrMediaDisabled
	}

	contentType := strings.ToLower(strings.TrimSpace(req.ContentType))
	if !imageTypes[contentType] && !(req.Kind == "note" && contentType == "application/pdf") {
		return domain.Upload{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedMedia, req.ContentType)
	}

	key := fmt.Sprintf("%s/%s/%s%s", req.Kind, uc.now().UTC().Format("2006/01"), uuid.NewString(), extension(req.Filename))
	return uc.storage.PresignUpload(ctx, key, contentType)
}

// extension keeps a short alphanumeric suffix of the original file name.
func extension(filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(filename)))
	if len(ext) < 2 || len(ext) > 6 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
