package services

import (
	"errors"

	"github.com/Rameshwarsp7900/non-veg/config"
	"github.com/Rameshwarsp7900/non-veg/models"
	"github.com/Rameshwarsp7900/non-veg/utils"
)

// RegisterUser creates an account and seeds its default calendar
// (recurring observances for this year and next, plus the two
// Hanuman-day weekly rules).
func RegisterUser(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:               email,
		Password:            hashedPassword,
		FullName:            fullName,
		EnableNotifications: true,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return err
	}

	return SeedDefaultData(user.ID)
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", err
	}

	return token, nil
}
