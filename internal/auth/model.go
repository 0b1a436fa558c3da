package auth

import (
	"time"

	"gorm.io/gorm"
)

// User is the credential record. Username is always the canonical normalized
// 10-digit mobile number.
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"size:15;unique;not null;index" json:"username"`
	FirstName    string    `gorm:"size:150;not null" json:"first_name"`
	LastName     string    `gorm:"size:150" json:"last_name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	RoleID       uint      `gorm:"not null" json:"role_id"`
	Role         UserRole  `gorm:"foreignKey:RoleID;references:ID" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserRole struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"size:50;unique;not null" json:"role_name"`
	Description string `gorm:"size:255" json:"description"`
}

const (
	RoleMember  = "member"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// SeedUserRoles makes sure the default role rows exist
func SeedUserRoles(db *gorm.DB) error {
	roles := []UserRole{
		{RoleName: RoleAdmin, Description: "Site administrator"},
		{RoleName: RoleManager, Description: "Profile moderator"},
		{RoleName: RoleMember, Description: "Registered member"},
	}
	for _, role := range roles {
		if err := db.Where(UserRole{RoleName: role.RoleName}).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}
