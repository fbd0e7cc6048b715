package repository

import (
	"errors"

	"visaportal/internal/app/ds"

	"gorm.io/gorm"
)

func (r *Repository) CreateUser(login, hashedPassword, fullName string, userRole int) (*ds.User, error) {
	user := ds.User{
		Login:    login,
		Password: hashedPassword,
		FullName: fullName,
		Role:     userRole,
	}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByLogin(login string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("login = ?", login).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UserExistsByLogin(login string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Where("login = ?", login).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
