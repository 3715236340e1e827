package repository

import (
	"time"

	"github.com/utilityhub/UtilityHub/app/models"
	"gorm.io/gorm"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create validates the user and inserts it; used for seeding accounts
func (r *userRepository) Create(user *models.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	return r.db.Create(user).Error
}

// GetByID retrieves a user by their primary key
func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by their unique username
func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate checks the credentials and, on success, stamps the last
// login as a side effect. A wrong password reports the same absence as an
// unknown username.
func (r *userRepository) Authenticate(username, password string) (*models.User, error) {
	user, err := r.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, gorm.ErrRecordNotFound
	}
	now := time.Now()
	if err := r.db.Model(user).Update("last_login_at", now).Error; err != nil {
		return nil, err
	}
	user.LastLoginAt = &now
	return user, nil
}

// List retrieves a paginated list of users, most recent first
func (r *userRepository) List(offset, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error
	return users, err
}

// Count returns the total number of users
func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// CountNewSince counts accounts created at or after the given instant
func (r *userRepository) CountNewSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}

// Delete removes a user by their primary key
func (r *userRepository) Delete(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}
