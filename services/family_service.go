package services

import (
	"errors"
	"time"

	"github.com/Rameshwarsp7900/non-veg/config"
	"github.com/Rameshwarsp7900/non-veg/models"
	"github.com/Rameshwarsp7900/non-veg/utils"

	"github.com/google/uuid"
)

// CreateFamilyGroup makes the user the admin of a new group. The group
// is a sharing shell only: day-status resolution never consults it.
func CreateFamilyGroup(userID uint, name string) (*models.FamilyGroup, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}
	if user.FamilyGroupID != nil {
		return nil, errors.New("user already belongs to a family group")
	}

	group := models.FamilyGroup{Name: name, AdminUserID: userID}
	if err := config.DB.Create(&group).Error; err != nil {
		return nil, err
	}

	member := models.FamilyMember{
		FamilyGroupID: group.ID,
		UserID:        userID,
		Role:          "admin",
		JoinedAt:      time.Now(),
	}
	if err := config.DB.Create(&member).Error; err != nil {
		return nil, err
	}

	user.FamilyGroupID = &group.ID
	user.IsFamilyAdmin = true
	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// InviteFamilyMember emails a join code to the invitee.
func InviteFamilyMember(adminUserID uint, email string) error {
	var admin models.User
	if err := config.DB.First(&admin, adminUserID).Error; err != nil {
		return errors.New("user not found")
	}
	if admin.FamilyGroupID == nil || !admin.IsFamilyAdmin {
		return errors.New("only a family admin can invite members")
	}

	var group models.FamilyGroup
	if err := config.DB.First(&group, *admin.FamilyGroupID).Error; err != nil {
		return errors.New("family group not found")
	}

	invite := models.FamilyInvite{
		FamilyGroupID: group.ID,
		Email:         email,
		Code:          uuid.NewString(),
		ExpiresAt:     time.Now().Add(7 * 24 * time.Hour),
	}
	if err := config.DB.Create(&invite).Error; err != nil {
		return err
	}

	return utils.SendFamilyInviteEmail(email, group.Name, invite.Code)
}

// JoinFamilyGroup redeems an invite code for the calling user.
func JoinFamilyGroup(userID uint, code string) error {
	var invite models.FamilyInvite
	result := config.DB.Where("code = ? AND accepted = ?", code, false).First(&invite)
	if result.Error != nil || time.Now().After(invite.ExpiresAt) {
		return errors.New("invalid or expired invite code")
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}
	if user.FamilyGroupID != nil {
		return errors.New("user already belongs to a family group")
	}

	member := models.FamilyMember{
		FamilyGroupID: invite.FamilyGroupID,
		UserID:        userID,
		Role:          "member",
		JoinedAt:      time.Now(),
	}
	if err := config.DB.Create(&member).Error; err != nil {
		return err
	}

	user.FamilyGroupID = &invite.FamilyGroupID
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	invite.Accepted = true
	return config.DB.Save(&invite).Error
}

func ListFamilyMembers(userID uint) ([]models.FamilyMember, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}
	if user.FamilyGroupID == nil {
		return nil, errors.New("user does not belong to a family group")
	}

	var members []models.FamilyMember
	err := config.DB.Where("family_group_id = ?", *user.FamilyGroupID).Find(&members).Error
	return members, err
}
