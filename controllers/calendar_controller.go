package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Rameshwarsp7900/non-veg/services"
	"github.com/Rameshwarsp7900/non-veg/utils"

	"github.com/gin-gonic/gin"
)

// GetMonthView serves the padded month grid: one resolved status per
// cell, computed from a single per-month snapshot of events and rules.
func GetMonthView(c *gin.Context) {
	userID := c.GetUint("userID")

	now := time.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 1-12"})
		return
	}

	target := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	view, err := services.ComputeMonthView(userID, target)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": month,
		"days":  view,
	})
}

// GetDayDetail serves one date's full status, override included.
func GetDayDetail(c *gin.Context) {
	userID := c.GetUint("userID")

	date, err := utils.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	status, err := services.GetDayStatus(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// ExportICS streams the user's diet events as an iCalendar feed.
func ExportICS(c *gin.Context) {
	userID := c.GetUint("userID")

	payload, err := services.BuildICSCalendar(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="diet-calendar.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(payload))
}
