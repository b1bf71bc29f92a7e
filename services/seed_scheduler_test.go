package services

import (
	"testing"

	"github.com/Rameshwarsp7900/non-veg/config"
	"github.com/Rameshwarsp7900/non-veg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartSeedScheduler(t *testing.T) {
	c, err := StartSeedScheduler()
	require.NoError(t, err)
	require.NotNil(t, c)
	c.Stop()

	entries := c.Entries()
	require.Len(t, entries, 1)
}

func TestSeedNextYearForAllUsers(t *testing.T) {
	setupTestDB(t)
	first := createTestUser(t)

	second := models.User{Email: "second@example.com", Password: "x"}
	require.NoError(t, config.DB.Create(&second).Error)

	disabled := models.User{Email: "gone@example.com", Password: "x", Disabled: true}
	require.NoError(t, config.DB.Create(&disabled).Error)

	require.NoError(t, SeedNextYearForAllUsers(2031))

	for _, userID := range []uint{first, second.ID} {
		var count int64
		require.NoError(t, config.DB.Model(&models.DietEvent{}).
			Where("user_id = ? AND date LIKE ?", userID, "2031-%").Count(&count).Error)
		assert.Equal(t, int64(56), count)
	}

	var disabledCount int64
	require.NoError(t, config.DB.Model(&models.DietEvent{}).
		Where("user_id = ?", disabled.ID).Count(&disabledCount).Error)
	assert.Zero(t, disabledCount, "disabled accounts are not reseeded")

	// Rollover is idempotent per year.
	require.NoError(t, SeedNextYearForAllUsers(2031))
	var total int64
	require.NoError(t, config.DB.Model(&models.DietEvent{}).Count(&total).Error)
	assert.Equal(t, int64(112), total)
}
