package controllers

import (
	"net/http"
	"strconv"

	"github.com/Rameshwarsp7900/non-veg/services"

	"github.com/gin-gonic/gin"
)

func ListRules(c *gin.Context) {
	userID := c.GetUint("userID")

	rules, err := services.ListRules(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rules)
}

func CreateRule(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.RuleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := services.CreateRule(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	services.EmitRulesChanged(userID)
	c.JSON(http.StatusCreated, rule)
}

func UpdateRule(c *gin.Context) {
	userID := c.GetUint("userID")

	ruleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule id"})
		return
	}

	var input services.RuleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := services.UpdateRule(userID, uint(ruleID), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	services.EmitRulesChanged(userID)
	c.JSON(http.StatusOK, rule)
}

func DeleteRule(c *gin.Context) {
	userID := c.GetUint("userID")

	ruleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule id"})
		return
	}

	if err := services.DeleteRule(userID, uint(ruleID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	services.EmitRulesChanged(userID)
	c.JSON(http.StatusOK, gin.H{"message": "rule deleted"})
}
