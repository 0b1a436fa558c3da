package photo

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/saranraj027/alliance-matrimony-backend/config"
)

const (
	testMaxPhotos = 5
	testMaxBytes  = 5 * 1024 * 1024
)

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name        string
		existing    int64
		size        int64
		contentType string
		wantErr     error
	}{
		{"jpeg within limits", 0, 1024, "image/jpeg", nil},
		{"png within limits", 4, 1024, "image/png", nil},
		{"at photo cap", 5, 1024, "image/jpeg", ErrPhotoLimit},
		{"over photo cap", 6, 1024, "image/jpeg", ErrPhotoLimit},
		{"too large", 0, testMaxBytes + 1, "image/jpeg", ErrPhotoTooBig},
		{"exactly max size", 0, testMaxBytes, "image/jpeg", nil},
		{"gif rejected", 0, 1024, "image/gif", ErrPhotoBadType},
		{"pdf rejected", 0, 1024, "application/pdf", ErrPhotoBadType},
		{"empty content type", 0, 1024, "", ErrPhotoBadType},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateUpload(tc.existing, tc.size, tc.contentType, testMaxPhotos, testMaxBytes)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

type fakePhotoRepo struct {
	photos    map[uint]*ProfilePhoto
	nextID    uint
	primaryOf map[uint]uint // profileID -> photoID
}

func newFakePhotoRepo() *fakePhotoRepo {
	return &fakePhotoRepo{photos: map[uint]*ProfilePhoto{}, nextID: 1, primaryOf: map[uint]uint{}}
}

func (f *fakePhotoRepo) Create(p *ProfilePhoto) error {
	p.ID = f.nextID
	f.nextID++
	f.photos[p.ID] = p
	if p.IsPrimary {
		f.primaryOf[p.ProfileID] = p.ID
	}
	return nil
}

func (f *fakePhotoRepo) CountByProfile(profileID uint) (int64, error) {
	var n int64
	for _, p := range f.photos {
		if p.ProfileID == profileID {
			n++
		}
	}
	return n, nil
}

func (f *fakePhotoRepo) ListByProfile(profileID uint) ([]ProfilePhoto, error) {
	var out []ProfilePhoto
	for _, p := range f.photos {
		if p.ProfileID == profileID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePhotoRepo) FindOwned(id, profileID uint) (*ProfilePhoto, error) {
	p, ok := f.photos[id]
	if !ok || p.ProfileID != profileID {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakePhotoRepo) SetPrimary(profileID, photoID uint) error {
	for _, p := range f.photos {
		if p.ProfileID == profileID {
			p.IsPrimary = p.ID == photoID
		}
	}
	f.primaryOf[profileID] = photoID
	return nil
}

func (f *fakePhotoRepo) Delete(p *ProfilePhoto) error {
	delete(f.photos, p.ID)
	return nil
}

func TestPhotoService(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{MaxPhotosPerProfile: 5, MaxPhotoSizeMB: 5}

	newSvc := func(repo Repository, store FileStore) Service {
		return NewService(repo, store, nil, cfg)
	}

	upload := func(name string) Upload {
		return Upload{
			OriginalName: name,
			ContentType:  "image/jpeg",
			Size:         1024,
			Reader:       bytes.NewReader([]byte("jpegdata")),
		}
	}

	t.Run("first upload becomes primary", func(t *testing.T) {
		repo := newFakePhotoRepo()
		svc := newSvc(repo, discardStore{})

		p1, err := svc.Upload(ctx, 10, upload("a.jpg"), "127.0.0.1")
		require.NoError(t, err)
		assert.True(t, p1.IsPrimary)

		p2, err := svc.Upload(ctx, 10, upload("b.jpg"), "127.0.0.1")
		require.NoError(t, err)
		assert.False(t, p2.IsPrimary)
	})

	t.Run("upload is rejected at the cap", func(t *testing.T) {
		repo := newFakePhotoRepo()
		svc := newSvc(repo, discardStore{})
		for i := 0; i < 5; i++ {
			_, err := svc.Upload(ctx, 10, upload("x.jpg"), "127.0.0.1")
			require.NoError(t, err)
		}

		_, err := svc.Upload(ctx, 10, upload("y.jpg"), "127.0.0.1")
		assert.ErrorIs(t, err, ErrPhotoLimit)
	})

	t.Run("set primary is exclusive", func(t *testing.T) {
		repo := newFakePhotoRepo()
		svc := newSvc(repo, discardStore{})
		p1, err := svc.Upload(ctx, 10, upload("a.jpg"), "127.0.0.1")
		require.NoError(t, err)
		p2, err := svc.Upload(ctx, 10, upload("b.jpg"), "127.0.0.1")
		require.NoError(t, err)

		require.NoError(t, svc.SetPrimary(ctx, 10, p2.ID, "127.0.0.1"))
		assert.False(t, repo.photos[p1.ID].IsPrimary)
		assert.True(t, repo.photos[p2.ID].IsPrimary)
	})

	t.Run("set primary on someone else's photo is not found", func(t *testing.T) {
		repo := newFakePhotoRepo()
		svc := newSvc(repo, discardStore{})
		p1, err := svc.Upload(ctx, 10, upload("a.jpg"), "127.0.0.1")
		require.NoError(t, err)

		err = svc.SetPrimary(ctx, 20, p1.ID, "127.0.0.1")
		assert.ErrorIs(t, err, ErrPhotoNotFound)
	})

	t.Run("delete leaves no primary behind", func(t *testing.T) {
		repo := newFakePhotoRepo()
		svc := newSvc(repo, discardStore{})
		p1, err := svc.Upload(ctx, 10, upload("a.jpg"), "127.0.0.1")
		require.NoError(t, err)
		p2, err := svc.Upload(ctx, 10, upload("b.jpg"), "127.0.0.1")
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, 10, p1.ID, "127.0.0.1"))
		_, stillThere := repo.photos[p1.ID]
		assert.False(t, stillThere)
		// the remaining photo is not promoted
		assert.False(t, repo.photos[p2.ID].IsPrimary)
	})

	t.Run("delete unknown photo is not found", func(t *testing.T) {
		repo := newFakePhotoRepo()
		svc := newSvc(repo, discardStore{})
		err := svc.Delete(ctx, 10, 42, "127.0.0.1")
		assert.ErrorIs(t, err, ErrPhotoNotFound)
	})
}

// discardStore accepts every write and remove
type discardStore struct{}

func (discardStore) Save(relPath string, r io.Reader) error { return nil }
func (discardStore) Remove(relPath string) error            { return nil }
