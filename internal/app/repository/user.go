package repository

import (
	"context"
	"errors"

	"werkbon/internal/app/ds"

	"gorm.io/gorm"
)

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*ds.User, error) {
	var user ds.User
	err := r.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (*ds.User, error) {
	var user ds.User
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) CreateUser(ctx context.Context, email, passwordHash string) (*ds.User, error) {
	user := ds.User{
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindTechnicianByUserID returns nil when the user is not linked to a technician.
func (r *Repository) FindTechnicianByUserID(ctx context.Context, userID string) (*ds.Technician, error) {
	var tech ds.Technician
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&tech).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tech, nil
}

func (r *Repository) CreateTechnician(ctx context.Context, userID, name string) (*ds.Technician, error) {
	tech := ds.Technician{
		UserID: userID,
		Name:   name,
	}
	if err := r.db.WithContext(ctx).Create(&tech).Error; err != nil {
		return nil, err
	}
	return &tech, nil
}
