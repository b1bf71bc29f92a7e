package controllers

import (
	"net/http"

	"github.com/Rameshwarsp7900/non-veg/services"

	"github.com/gin-gonic/gin"
)

func CreateFamilyGroup(c *gin.Context) {
	userID := c.GetUint("userID")

	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := services.CreateFamilyGroup(userID, input.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, group)
}

func InviteFamilyMember(c *gin.Context) {
	userID := c.GetUint("userID")

	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.InviteFamilyMember(userID, input.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invitation sent"})
}

func JoinFamilyGroup(c *gin.Context) {
	userID := c.GetUint("userID")

	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.JoinFamilyGroup(userID, input.Code); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "joined family group"})
}

func ListFamilyMembers(c *gin.Context) {
	userID := c.GetUint("userID")

	members, err := services.ListFamilyMembers(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, members)
}
