package main

import (
	"github.com/gin-gonic/gin"
	"venture-link.backend/internal/interfaces/http/handlers"
	"venture-link.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	profileHandler      *handlers.ProfileHandler
	connectionHandler   *handlers.ConnectionHandler
	mentorshipHandler   *handlers.MentorshipHandler
	investmentHandler   *handlers.InvestmentHandler
	eventHandler        *handlers.EventHandler
	messageHandler      *handlers.MessageHandler
	notificationHandler *handlers.NotificationHandler
	adminHandler        *handlers.AdminHandler
	authMiddleware      gin.HandlerFunc
	messageRateLimit    gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.POST("/logout", d.authHandler.Logout)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
		}

		// Profile routes (protected)
		profiles := v1.Group("/profiles")
		profiles.Use(d.authMiddleware)
		{
			profiles.GET("/me", d.profileHandler.GetMe)
			profiles.PUT("/me", d.profileHandler.UpdateMe)
			profiles.GET("/recommendations", d.profileHandler.Recommendations)
			profiles.GET("", d.profileHandler.Browse)
			profiles.GET("/:id", d.profileHandler.GetByID)
		}

		// Connection routes (protected)
		connections := v1.Group("/connections")
		connections.Use(d.authMiddleware)
		{
			connections.POST("", d.connectionHandler.Send)
			connections.GET("", d.connectionHandler.List)
			connections.GET("/incoming", d.connectionHandler.ListIncoming)
			connections.GET("/outgoing", d.connectionHandler.ListOutgoing)
			connections.POST("/:id/respond", d.connectionHandler.Respond)
			connections.DELETE("/:id", d.connectionHandler.Cancel)
		}

		// Mentorship request routes (protected)
		mentorship := v1.Group("/mentorship-requests")
		mentorship.Use(d.authMiddleware)
		{
			mentorship.POST("", d.mentorshipHandler.Send)
			mentorship.GET("/sent", d.mentorshipHandler.ListSent)
			mentorship.GET("/received", d.mentorshipHandler.ListReceived)
			mentorship.POST("/:id/respond", d.mentorshipHandler.Respond)
			mentorship.DELETE("/:id", d.mentorshipHandler.Cancel)
		}

		// Investment request routes (protected)
		investment := v1.Group("/investment-requests")
		investment.Use(d.authMiddleware)
		{
			investment.POST("", d.investmentHandler.Send)
			investment.GET("/sent", d.investmentHandler.ListSent)
			investment.GET("/received", d.investmentHandler.ListReceived)
			investment.POST("/:id/respond", d.investmentHandler.Respond)
			investment.DELETE("/:id", d.investmentHandler.Cancel)
		}

		// Event routes (protected)
		events := v1.Group("/events")
		events.Use(d.authMiddleware)
		{
			events.POST("", d.eventHandler.Create)
			events.GET("", d.eventHandler.List)
			events.GET("/:id", d.eventHandler.Get)
			events.PUT("/:id", d.eventHandler.Update)
			events.POST("/:id/cancel", d.eventHandler.Cancel)
			events.POST("/:id/register", d.eventHandler.Register)
			events.GET("/:id/registrations", d.eventHandler.Roster)
		}

		// Registration routes (protected)
		registrations := v1.Group("/registrations")
		registrations.Use(d.authMiddleware)
		{
			registrations.GET("", d.eventHandler.MyRegistrations)
			registrations.DELETE("/:id", d.eventHandler.CancelRegistration)
			registrations.POST("/:id/review", d.eventHandler.ReviewRegistration)
		}

		// Message routes (protected, sends are rate limited)
		messages := v1.Group("/messages")
		messages.Use(d.authMiddleware)
		{
			messages.POST("", d.messageRateLimit, d.messageHandler.Send)
			messages.GET("", d.messageHandler.Conversations)
			messages.GET("/:peerId", d.messageHandler.Thread)
		}

		// Notification routes (protected)
		notifications := v1.Group("/notifications")
		notifications.Use(d.authMiddleware)
		{
			notifications.GET("", d.notificationHandler.List)
			notifications.POST("/read-all", d.notificationHandler.MarkAllRead)
			notifications.POST("/:id/read", d.notificationHandler.MarkRead)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/stats", d.adminHandler.Stats)
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.PUT("/users/:id/status", d.adminHandler.UpdateUserStatus)
			admin.DELETE("/users/:id", d.adminHandler.DeleteUser)
			admin.GET("/events", d.adminHandler.ListEvents)
			admin.DELETE("/events/:id", d.adminHandler.DeleteEvent)
			admin.GET("/activity", d.adminHandler.ListActivity)
		}
	}
}
