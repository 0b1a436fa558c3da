package photo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saranraj027/alliance-matrimony-backend/config"
	"github.com/saranraj027/alliance-matrimony-backend/internal/auditlog"
	"github.com/saranraj027/alliance-matrimony-backend/internal/notification"
	"github.com/saranraj027/alliance-matrimony-backend/utils"
)

var (
	ErrPhotoLimit    = errors.New("maximum 5 photos allowed")
	ErrPhotoTooBig   = errors.New("max file size is 5MB")
	ErrPhotoBadType  = errors.New("only JPEG and PNG allowed")
	ErrPhotoNotFound = errors.New("photo not found")
)

var extByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// Upload carries the inbound file independent of the transport layer.
// UploaderMobile identifies the member in published events.
type Upload struct {
	OriginalName   string
	ContentType    string
	Size           int64
	Reader         io.Reader
	UploaderMobile string
}

type Service interface {
	Upload(ctx context.Context, profileID uint, in Upload, ip string) (*ProfilePhoto, error)
	SetPrimary(ctx context.Context, profileID, photoID uint, ip string) error
	Delete(ctx context.Context, profileID, photoID uint, ip string) error
	List(ctx context.Context, profileID uint) ([]ProfilePhoto, error)
}

type service struct {
	repo      Repository
	store     FileStore
	auditSvc  auditlog.Service
	maxPhotos int
	maxBytes  int64
}

func NewService(repo Repository, store FileStore, auditSvc auditlog.Service, cfg *config.Config) Service {
	return &service{
		repo:      repo,
		store:     store,
		auditSvc:  auditSvc,
		maxPhotos: cfg.MaxPhotosPerProfile,
		maxBytes:  int64(cfg.MaxPhotoSizeMB) * 1024 * 1024,
	}
}

// ValidateUpload holds the upload rules in one pure, testable place
func ValidateUpload(existing int64, size int64, contentType string, maxPhotos int, maxBytes int64) error {
	if existing >= int64(maxPhotos) {
		return ErrPhotoLimit
	}
	if size > maxBytes {
		return ErrPhotoTooBig
	}
	if _, ok := extByType[contentType]; !ok {
		return ErrPhotoBadType
	}
	return nil
}

func (s *service) Upload(ctx context.Context, profileID uint, in Upload, ip string) (*ProfilePhoto, error) {
	count, err := s.repo.CountByProfile(profileID)
	if err != nil {
		return nil, err
	}
	if err := ValidateUpload(count, in.Size, in.ContentType, s.maxPhotos, s.maxBytes); err != nil {
		return nil, err
	}

	fileName := uuid.New().String() + extByType[in.ContentType]
	relPath := fmt.Sprintf("%d/%s", profileID, fileName)
	if err := s.store.Save(relPath, in.Reader); err != nil {
		return nil, err
	}

	photo := &ProfilePhoto{
		ProfileID:   profileID,
		FileName:    fileName,
		FilePath:    relPath,
		ContentType: in.ContentType,
		SizeBytes:   in.Size,
		IsPrimary:   count == 0, // first photo becomes the display photo
	}
	if err := s.repo.Create(photo); err != nil {
		if rmErr := s.store.Remove(relPath); rmErr != nil {
			log.Printf("⚠️ Orphan photo file %s left behind: %v", relPath, rmErr)
		}
		return nil, err
	}

	s.audit(ctx, profileID, "PHOTO_UPLOADED", ip)
	_ = utils.PublishEvent(fmt.Sprint(profileID), notification.Event{
		Action: notification.ActionPhotoUploaded,
		Mobile: in.UploaderMobile,
	})
	return photo, nil
}

func (s *service) SetPrimary(ctx context.Context, profileID, photoID uint, ip string) error {
	if _, err := s.repo.FindOwned(photoID, profileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}
	if err := s.repo.SetPrimary(profileID, photoID); err != nil {
		return err
	}
	s.audit(ctx, profileID, "PHOTO_SET_PRIMARY", ip)
	return nil
}

// Delete removes the record and the file. The primary flag is not handed to
// another photo; a profile can end up with photos and no primary.
func (s *service) Delete(ctx context.Context, profileID, photoID uint, ip string) error {
	photo, err := s.repo.FindOwned(photoID, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}
	if err := s.repo.Delete(photo); err != nil {
		return err
	}
	if err := s.store.Remove(photo.FilePath); err != nil {
		log.Printf("⚠️ Failed to remove photo file %s: %v", photo.FilePath, err)
	}
	s.audit(ctx, profileID, "PHOTO_DELETED", ip)
	return nil
}

func (s *service) List(ctx context.Context, profileID uint) ([]ProfilePhoto, error) {
	return s.repo.ListByProfile(profileID)
}

func (s *service) audit(ctx context.Context, profileID uint, action, ip string) {
	if s.auditSvc == nil {
		return
	}
	_ = s.auditSvc.LogAction(ctx, nil, action, map[string]interface{}{"profile_id": profileID}, ip, "success")
}
