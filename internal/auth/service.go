package auth

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/saranraj027/alliance-matrimony-backend/config"
	"github.com/saranraj027/alliance-matrimony-backend/internal/auditlog"
	"github.com/saranraj027/alliance-matrimony-backend/internal/notification"
	"github.com/saranraj027/alliance-matrimony-backend/internal/profile"
	"github.com/saranraj027/alliance-matrimony-backend/utils"
)

var (
	ErrInvalidFirstName    = errors.New("first name must start with a capital letter and contain letters only")
	ErrInvalidLastName     = errors.New("last name must start with a capital letter and contain letters only")
	ErrMobileRequired      = errors.New("mobile number is required")
	ErrInvalidMobile       = errors.New("mobile number must contain 10 digits (optionally prefixed with +91 or 0)")
	ErrInvalidMobilePrefix = errors.New("invalid Indian mobile number, it should start with 6, 7, 8 or 9")
	ErrAlreadyRegistered   = errors.New("a user with this mobile already exists, please login")
	ErrInvalidCredentials  = errors.New("invalid credentials, please check your mobile number and password")
	ErrWrongOldPassword    = errors.New("old password is incorrect")
	ErrPasswordMismatch    = errors.New("new password and confirmation do not match")
)

var namePattern = regexp.MustCompile(`^[A-Z][a-zA-Z]*$`)

type Session struct {
	AccessToken string `json:"accessToken"`
	SessionID   string `json:"-"`
}

// SessionStore tracks which session ids are alive. The Redis-backed store is
// the production implementation; tests swap in a fake.
type SessionStore interface {
	Save(sessionID string, userID uint, ttl time.Duration) error
	Delete(sessionID string) error
}

type redisSessionStore struct{}

func NewRedisSessionStore() SessionStore { return redisSessionStore{} }

func (redisSessionStore) Save(sessionID string, userID uint, ttl time.Duration) error {
	return utils.SaveSession(sessionID, userID, ttl)
}

func (redisSessionStore) Delete(sessionID string) error {
	return utils.DeleteSession(sessionID)
}

type Service interface {
	Register(ctx context.Context, input RegisterInput, ip string) (*Session, *User, error)
	Login(ctx context.Context, input LoginInput, ip string) (*Session, *User, error)
	Logout(sessionID string) error
	ChangePassword(ctx context.Context, userID uint, sessionID, oldPassword, newPassword, confirmPassword string) error
	GetUserByID(userID uint) (User, error)
}

type service struct {
	repo         Repository
	auditSvc     auditlog.Service
	sessions     SessionStore
	accessSecret string
	accessTTL    time.Duration
}

func NewService(r Repository, auditSvc auditlog.Service, sessions SessionStore, cfg *config.Config) Service {
	return &service{
		repo:         r,
		auditSvc:     auditSvc,
		sessions:     sessions,
		accessSecret: cfg.JWTAccessSecret,
		accessTTL:    time.Duration(cfg.JWTAccessTTLHours) * time.Hour,
	}
}

// NormalizeMobile strips every non-digit character; when more than 10 digits
// remain (country code or trunk 0 prefix) only the last 10 are kept. The
// result must be a 10-digit Indian mobile starting with 6-9.
func NormalizeMobile(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrMobileRequired
	}
	digits := regexp.MustCompile(`\D`).ReplaceAllString(raw, "")
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	if len(digits) != 10 {
		return "", ErrInvalidMobile
	}
	if !strings.ContainsRune("6789", rune(digits[0])) {
		return "", ErrInvalidMobilePrefix
	}
	return digits, nil
}

// DeriveInitialPassword builds the registration-time password: the character
// reversal of the normalized mobile.
func DeriveInitialPassword(mobile string) string {
	runes := []rune(mobile)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// =============================
// Register
// =============================

type RegisterInput struct {
	FirstName string
	LastName  string
	Mobile    string
	Gender    string
}

func (s *service) Register(ctx context.Context, in RegisterInput, ip string) (*Session, *User, error) {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)

	if first == "" || !namePattern.MatchString(first) {
		return nil, nil, ErrInvalidFirstName
	}
	if last != "" && !namePattern.MatchString(last) {
		return nil, nil, ErrInvalidLastName
	}

	mobile, err := NormalizeMobile(in.Mobile)
	if err != nil {
		return nil, nil, err
	}

	exists, err := s.repo.UsernameExists(mobile)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, ErrAlreadyRegistered
	}

	role, err := s.repo.FindRoleByName(RoleMember)
	if err != nil {
		return nil, nil, errors.New("member role is not seeded")
	}

	password := DeriveInitialPassword(mobile)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	gender := in.Gender
	switch gender {
	case profile.GenderMale, profile.GenderFemale, profile.GenderOther:
	default:
		gender = profile.GenderOther
	}

	user := &User{
		Username:     mobile,
		FirstName:    first,
		LastName:     last,
		PasswordHash: string(hash),
		RoleID:       role.ID,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, nil, err
	}

	memberProfile := &profile.MemberProfile{
		UserID: user.ID,
		Mobile: mobile,
		Gender: gender,
	}
	if err := s.repo.CreateMemberProfile(memberProfile); err != nil {
		return nil, nil, err
	}

	s.audit(ctx, &user.ID, "USER_REGISTERED", map[string]interface{}{
		"mobile": mobile,
		"gender": gender,
	}, ip, "success")

	_ = utils.PublishEvent(mobile, notification.Event{
		Action: notification.ActionUserRegistered,
		Name:   strings.TrimSpace(first + " " + last),
		Mobile: mobile,
	})

	// auto-login with the derived password
	session, err := s.startSession(user)
	if err != nil {
		return nil, nil, err
	}
	return session, user, nil
}

// =============================
// Login
// =============================

type LoginInput struct {
	Mobile   string
	Password string
}

func (s *service) Login(ctx context.Context, in LoginInput, ip string) (*Session, *User, error) {
	mobile, err := NormalizeMobile(in.Mobile)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(mobile)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.audit(ctx, nil, "LOGIN_FAILED", map[string]interface{}{"mobile": mobile}, ip, "failure")
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		s.audit(ctx, &user.ID, "LOGIN_FAILED", map[string]interface{}{"mobile": mobile}, ip, "failure")
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.startSession(user)
	if err != nil {
		return nil, nil, err
	}

	s.audit(ctx, &user.ID, "LOGIN", map[string]interface{}{"mobile": mobile}, ip, "success")
	return session, user, nil
}

func (s *service) startSession(user *User) (*Session, error) {
	sessionID := uuid.New().String()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role_id": user.RoleID,
		"jti":     sessionID,
		"exp":     time.Now().Add(s.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.accessSecret))
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(sessionID, user.ID, s.accessTTL); err != nil {
		return nil, err
	}
	return &Session{AccessToken: signed, SessionID: sessionID}, nil
}

// =============================
// Logout
// =============================

func (s *service) Logout(sessionID string) error {
	return s.sessions.Delete(sessionID)
}

// =============================
// Change Password (profile reset_password section)
// =============================

func (s *service) ChangePassword(ctx context.Context, userID uint, sessionID, oldPassword, newPassword, confirmPassword string) error {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrWrongOldPassword
	}
	if newPassword == "" || newPassword != confirmPassword {
		return ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	if err := s.repo.Update(&user); err != nil {
		return err
	}

	// force re-login with the new password
	_ = s.sessions.Delete(sessionID)

	s.audit(ctx, &userID, "PASSWORD_CHANGED", nil, "", "success")
	return nil
}

func (s *service) GetUserByID(userID uint) (User, error) {
	return s.repo.FindByID(userID)
}

func (s *service) audit(ctx context.Context, userID *uint, action string, details map[string]interface{}, ip, status string) {
	if s.auditSvc == nil {
		return
	}
	// audit failures never fail the operation
	_ = s.auditSvc.LogAction(ctx, userID, action, details, ip, status)
}
