package controllers

import (
	"net/http"
	"strconv"

	"github.com/Rameshwarsp7900/non-veg/services"
	"github.com/Rameshwarsp7900/non-veg/utils"

	"github.com/gin-gonic/gin"
)

func ListEvents(c *gin.Context) {
	userID := c.GetUint("userID")

	events, err := services.ListEvents(userID, c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

func CreateEvent(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := services.CreateEvent(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if date, perr := utils.ParseDate(event.Date); perr == nil {
		services.EmitDayChanged(userID, date)
	}
	c.JSON(http.StatusCreated, event)
}

func UpdateEvent(c *gin.Context) {
	userID := c.GetUint("userID")

	eventID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var input services.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := services.UpdateEvent(userID, uint(eventID), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if date, perr := utils.ParseDate(event.Date); perr == nil {
		services.EmitDayChanged(userID, date)
	}
	c.JSON(http.StatusOK, event)
}

func DeleteEvent(c *gin.Context) {
	userID := c.GetUint("userID")

	eventID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if err := services.DeleteEvent(userID, uint(eventID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}
