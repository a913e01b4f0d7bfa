package services

import (
	"errors"
	"travelbharat/config"
	"travelbharat/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser registers a new account. The role is always "user" here;
// promotion to admin only happens through the admin role endpoint.
func CreateUser(username, password string) (models.User, error) {
	var existing models.User
	if err := config.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		return models.User{}, errors.New("user already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username: username,
		Password: string(hashed),
		Role:     "user",
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	return user, nil
}

// CreateGoogleUser provisions an account for a verified Google identity.
// The account has no usable password; sign-in goes through Google again.
func CreateGoogleUser(username string) (models.User, error) {
	user := models.User{
		Username: username,
		Role:     "user",
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	return user, nil
}
