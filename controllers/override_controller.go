package controllers

import (
	"net/http"

	"github.com/Rameshwarsp7900/non-veg/services"
	"github.com/Rameshwarsp7900/non-veg/utils"

	"github.com/gin-gonic/gin"
)

func GetOverride(c *gin.Context) {
	userID := c.GetUint("userID")

	date := c.Param("date")
	if _, err := utils.ParseDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	override, err := services.GetOverride(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if override == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no override for this date"})
		return
	}
	c.JSON(http.StatusOK, override)
}

func UpsertOverride(c *gin.Context) {
	userID := c.GetUint("userID")

	date := c.Param("date")
	var input services.OverrideInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	override, err := services.UpsertOverride(userID, date, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if day, perr := utils.ParseDate(date); perr == nil {
		services.EmitDayChanged(userID, day)
	}
	c.JSON(http.StatusOK, override)
}

func DeleteOverride(c *gin.Context) {
	userID := c.GetUint("userID")

	date := c.Param("date")
	if _, err := utils.ParseDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	if err := services.DeleteOverride(userID, date); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if day, perr := utils.ParseDate(date); perr == nil {
		services.EmitDayChanged(userID, day)
	}
	c.JSON(http.StatusOK, gin.H{"message": "override removed"})
}
