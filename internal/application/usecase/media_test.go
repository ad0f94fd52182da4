package usecase

import (
	"context"
	"regexp"
	"testing"
	"time"

	"courseadmin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePresigner struct {
	key         string
	contentType string
}

func (p *fakePresigner) PresignUpload(_ context.Context, key, contentType string) (domain.Upload, error) {
	p.key, p.contentType = key, contentType
	return domain.Upload{Key: key, UploadURL: "https://s3.test/" + key + "?sig", PublicURL: "https://cdn.test/" + key}, nil
}

func TestMedia_Disabled(t *testing.T) {
	_, err := NewMediaUseCase(nil).CreateUpload(context.Background(), domain.UploadRequest{
		Kind: "course", Filename: "a.png", ContentType: "image/png",
	})
	assert.ErrorIs(t, err, domain.ErrMediaDisabled)
}

func TestMedia_CreateUpload(t *testing.T) {
	p := &fakePresigner{}
	uc := NewMediaUseCase(p)
	uc.now = func() time.Time { return time.Date(2026, time.May, 3, 0, 0, 0, 0, time.UTC) }

	up, err := uc.CreateUpload(context.Background(), domain.UploadRequest{
		Kind: "course", Filename: "Cover.JPG", ContentType: " Image/JPEG ",
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^course/2026/05/[0-9a-f-]{36}\.jpg$`), up.Key)
	assert.Equal(t, "image/jpeg", p.contentType)
}

func TestMedia_ContentTypes(t *testing.T) {
	tests := []struct {
		kind, contentType string
		ok                bool
	}{
		{"note", "application/pdf", true},
		{"course", "application/pdf", false},
		{"event", "image/webp", true},
		{"offer", "text/html", false},
	}
	for _, tt := range tests {
		t.Run(tt.kind+" "+tt.contentType, func(t *testing.T) {
			_, err := NewMediaUseCase(&fakePresigner{}).CreateUpload(context.Background(), domain.UploadRequest{
				Kind: tt.kind, Filename: "file", ContentType: tt.contentType,
			})
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)
			}
		})
	}
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".png", extension("photo.PNG"))
	assert.Equal(t, ".webp", extension("dir/x.webp"))
	assert.Equal(t, "", extension("noext"))
	assert.Equal(t, "", extension("evil.p$p"))
	assert.Equal(t, "", extension("long.extension"))
}
