package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin      = "Admin"
	RoleSubscriber = "Subscriber"
)

// User is an account known to the platform. Accounts are seeded outside the
// core; the core only authenticates them and stamps the last login.
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	SubscriberID string     `gorm:"type:varchar(50);uniqueIndex" json:"subscriber_id" validate:"required"`
	Username     string     `gorm:"type:varchar(100);uniqueIndex" json:"username" validate:"required"`
	Password     string     `gorm:"type:text" json:"-" validate:"required"`
	Email        string     `gorm:"type:varchar(200)" json:"email"`
	FullName     string     `gorm:"type:varchar(150)" json:"full_name"`
	Role         string     `gorm:"type:varchar(20);default:'Subscriber'" json:"role" validate:"required"`
	LastLoginAt  *time.Time `gorm:"type:timestamp;default:null" json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// UserParams holds the caller-supplied fields for a new user.
type UserParams struct {
	SubscriberID string
	Username     string
	Password     string
	Email        string
	FullName     string
	Role         string
}

// NewUser builds a user from params, hashing the password and defaulting
// the role to Subscriber. Hashing errors leave the password empty, which
// validation then reports.
func NewUser(p UserParams) *User {
	role := p.Role
	if role == "" {
		role = RoleSubscriber
	}
	hash, err := HashPassword(p.Password)
	if err != nil {
		hash = ""
	}
	return &User{
		SubscriberID: p.SubscriberID,
		Username:     p.Username,
		Password:     hash,
		Email:        p.Email,
		FullName:     p.FullName,
		Role:         role,
	}
}

var userRules = []rule{
	{"SubscriberID", "required", "subscriber id is required"},
	{"Username", "required", "username is required"},
	{"Password", "required", "password is required"},
	{"Role", "required", "role is required"},
}

// ValidationErrors lists every violated rule; empty means the user is valid.
func (u *User) ValidationErrors() []string {
	return collectViolations(u, userRules)
}

func (u *User) IsValid() bool {
	return len(u.ValidationErrors()) == 0
}

func (u *User) Validate() error {
	if violations := u.ValidationErrors(); len(violations) > 0 {
		return &ValidationError{Entity: "user", Violations: violations}
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return statusEquals(u.Role, RoleAdmin)
}

// CheckPassword verifies the given password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}
