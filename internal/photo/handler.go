package photo

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/saranraj027/alliance-matrimony-backend/internal/profile"
)

// ProfileLookup resolves the caller's own profile; profile.Repository
// satisfies it.
type ProfileLookup interface {
	GetByUserID(userID uint) (*profile.MemberProfile, error)
}

type Handler struct {
	service  Service
	profiles ProfileLookup
}

func NewHandler(s Service, profiles ProfileLookup) *Handler {
	return &Handler{service: s, profiles: profiles}
}

func (h *Handler) callerProfile(c *gin.Context) (*profile.MemberProfile, bool) {
	p, err := h.profiles.GetByUserID(c.GetUint("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return nil, false
	}
	return p, true
}

// Upload accepts one multipart "photo" file
func (h *Handler) Upload(c *gin.Context) {
	caller, ok := h.callerProfile(c)
	if !ok {
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer src.Close()

	photo, err := h.service.Upload(c.Request.Context(), caller.ID, Upload{
		OriginalName:   file.Filename,
		ContentType:    file.Header.Get("Content-Type"),
		Size:           file.Size,
		Reader:         src,
		UploaderMobile: caller.Mobile,
	}, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, ErrPhotoLimit), errors.Is(err, ErrPhotoTooBig), errors.Is(err, ErrPhotoBadType):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "redirect": "/profile"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload photo"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Photo uploaded.",
		"photo":    photo,
		"redirect": "/profile",
	})
}

func (h *Handler) SetPrimary(c *gin.Context) {
	caller, ok := h.callerProfile(c)
	if !ok {
		return
	}
	photoID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "photo not found"})
		return
	}

	if err := h.service.SetPrimary(c.Request.Context(), caller.ID, uint(photoID), c.ClientIP()); err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "photo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update photo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile photo updated.", "redirect": "/profile"})
}

func (h *Handler) Delete(c *gin.Context) {
	caller, ok := h.callerProfile(c)
	if !ok {
		return
	}
	photoID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "photo not found"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), caller.ID, uint(photoID), c.ClientIP()); err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "photo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete photo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted.", "redirect": "/profile"})
}

// List returns the caller's own photos
func (h *Handler) List(c *gin.Context) {
	caller, ok := h.callerProfile(c)
	if !ok {
		return
	}
	rows, err := h.service.List(c.Request.Context(), caller.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch photos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": rows})
}
