package routes

import (
    "github.com/Rameshwarsp7900/non-veg/controllers"
    "github.com/Rameshwarsp7900/non-veg/middlewares"
    "github.com/Rameshwarsp7900/non-veg/services"

    "github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub) *gin.Engine {
    r := gin.Default()

    wsController := controllers.NewCalendarWSController(rt)

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", controllers.Register)
        auth.POST("/login", controllers.Login)
        auth.POST("/forgot-password", controllers.ForgotPassword)
        auth.POST("/reset-password", controllers.ResetPassword)
    }

    // Protected user routes
    user := r.Group("/user")
    user.Use(middlewares.AuthMiddleware())
    {
        user.GET("/profile", controllers.GetProfile)
        user.PUT("/profile", controllers.UpdateProfile)
    }

    // Protected calendar API
    api := r.Group("/api")
    api.Use(middlewares.AuthMiddleware())
    {
        api.GET("/calendar/month", controllers.GetMonthView)
        api.GET("/calendar/day/:date", controllers.GetDayDetail)
        api.GET("/calendar/export.ics", controllers.ExportICS)

        api.GET("/events", controllers.ListEvents)
        api.POST("/events", controllers.CreateEvent)
        api.PUT("/events/:id", controllers.UpdateEvent)
        api.DELETE("/events/:id", controllers.DeleteEvent)

        api.GET("/rules", controllers.ListRules)
        api.POST("/rules", controllers.CreateRule)
        api.PUT("/rules/:id", controllers.UpdateRule)
        api.DELETE("/rules/:id", controllers.DeleteRule)

        api.GET("/overrides/:date", controllers.GetOverride)
        api.PUT("/overrides/:date", controllers.UpsertOverride)
        api.DELETE("/overrides/:date", controllers.DeleteOverride)

        api.POST("/family", controllers.CreateFamilyGroup)
        api.POST("/family/invite", controllers.InviteFamilyMember)
        api.POST("/family/join", controllers.JoinFamilyGroup)
        api.GET("/family/members", controllers.ListFamilyMembers)

        api.GET("/ws/calendar", wsController.CalendarWS)
    }

    return r
}
