package profile

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saranraj027/alliance-matrimony-backend/internal/lookup"
)

// PasswordChanger is the slice of the auth service the reset_password
// section needs; declared here to keep the import direction one-way.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID uint, sessionID, oldPassword, newPassword, confirmPassword string) error
}

type Handler struct {
	service   Service
	catalog   *lookup.Catalog
	passwords PasswordChanger
}

func NewHandler(s Service, catalog *lookup.Catalog, passwords PasswordChanger) *Handler {
	return &Handler{service: s, catalog: catalog, passwords: passwords}
}

// GetProfile renders the caller's own profile with dropdown options. A bare
// profile is created on first visit.
func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.GetUint("user_id")
	username := c.GetString("username")

	p, created, err := h.service.GetOrCreate(c.Request.Context(), userID, username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	minDOB, maxDOB := dobRange(time.Now())

	resp := gin.H{
		"profile":  p,
		"complete": p.IsComplete(),
		"options":  h.catalog.Options(),
		"min_dob":  minDOB,
		"max_dob":  maxDOB,
	}
	if created {
		resp["message"] = "A basic profile was created. Please complete your details."
	}
	c.JSON(http.StatusOK, resp)
}

// SectionRequest multiplexes every profile editor form on one endpoint
type SectionRequest struct {
	Section string `json:"section" binding:"required"`

	MemberForm
	FamilyForm
	BirthForm
	ProfessionalForm

	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// UpdateProfile dispatches a section save
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("user_id")
	ip := c.ClientIP()
	ctx := c.Request.Context()

	switch req.Section {
	case SectionMember:
		if err := h.service.UpdateMember(ctx, userID, req.MemberForm, ip); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save basic profile"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Basic profile saved.", "redirect": "/profile"})

	case SectionFamily:
		if err := h.service.UpdateFamily(ctx, userID, req.FamilyForm, ip); err != nil {
			if errors.Is(err, ErrKulaDeityRequired) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "redirect": "/profile#family-form"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save family details"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Family details saved.", "redirect": "/profile#family-form"})

	case SectionBirth:
		if err := h.service.UpdateBirth(ctx, userID, req.BirthForm, ip); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save birth details"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Birth details saved.", "redirect": "/profile#birth-form"})

	case SectionProfessional:
		if err := h.service.UpdateProfessional(ctx, userID, req.ProfessionalForm, ip); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save professional details"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Professional details saved.", "redirect": "/profile#prof-form"})

	case SectionResetPassword:
		sessionID := c.GetString("session_id")
		err := h.passwords.ChangePassword(ctx, userID, sessionID, req.OldPassword, req.NewPassword, req.ConfirmPassword)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "redirect": "/profile#reset-password"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":  "Password changed. Please login with your new password.",
			"redirect": "/login",
		})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown section"})
	}
}

// ViewProfile shows another member's profile, read-only
func (h *Handler) ViewProfile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}

	p, name, err := h.service.View(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":  p,
		"name":     name,
		"complete": p.IsComplete(),
	})
}

// dobRange bounds date of birth between 50 and 18 years ago, rolling the
// Feb 29 edge case back to the 28th.
func dobRange(today time.Time) (string, string) {
	minDOB := safeDate(today.Year()-50, today.Month(), today.Day())
	maxDOB := safeDate(today.Year()-18, today.Month(), today.Day())
	return minDOB.Format("2006-01-02"), maxDOB.Format("2006-01-02")
}

func safeDate(year int, month time.Month, day int) time.Time {
	if month == time.February && day == 29 {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
