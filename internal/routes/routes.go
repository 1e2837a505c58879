package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"servimarket_backend/internal/config"
	"servimarket_backend/internal/handlers"
	"servimarket_backend/internal/middleware"
	"servimarket_backend/internal/models"
)

// RegisterRoutes wires every endpoint under /api/v1.
func RegisterRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, h *handlers.AppHandlers) {
	router.Use(
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
		middleware.DBMiddleware(db),
	)

	authRequired := middleware.AuthMiddleware(cfg)
	adminOnly := middleware.RequireRoles(models.UserRoleAdmin)
	clientOnly := middleware.RequireRoles(models.UserRoleClient)
	professionalOnly := middleware.RequireRoles(models.UserRoleProfessional)

	api := router.Group("/api/v1")

	api.GET("/health", h.Health.Health)

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.POST("/logout", h.Auth.Logout)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		auth.POST("/verify-email", h.Auth.VerifyEmail)
	}

	users := api.Group("/users")
	{
		users.GET("/me", authRequired, h.User.GetMe)
		users.PUT("/me", authRequired, h.User.UpdateMe)
		users.GET("/:id", h.User.GetPublicProfile)
		users.GET("/:id/reviews", h.Review.ListForUser)

		users.GET("", authRequired, adminOnly, h.User.List)
		users.POST("/:id/suspend", authRequired, adminOnly, h.User.Suspend)
		users.POST("/:id/activate", authRequired, adminOnly, h.User.Activate)
	}

	user := api.Group("/user", authRequired)
	{
		user.POST("/send-otp", h.User.SendOTP)
		user.POST("/verify-otp", h.User.VerifyOTP)
		user.POST("/verify-id", h.User.VerifyIdentity)
	}

	professions := api.Group("/professions")
	{
		professions.GET("", h.Profession.List)
		professions.GET("/:id", h.Profession.Get)
		professions.POST("", authRequired, adminOnly, h.Profession.Create)
		professions.PUT("/:id", authRequired, adminOnly, h.Profession.Update)
		professions.DELETE("/:id", authRequired, adminOnly, h.Profession.Delete)
	}

	professionals := api.Group("/professionals")
	{
		professionals.GET("", h.Professional.List)
		professionals.GET("/me", authRequired, professionalOnly, h.Professional.GetMyProfile)
		professionals.PUT("/me", authRequired, professionalOnly, h.Professional.UpdateMyProfile)
		professionals.POST("/me/professions", authRequired, professionalOnly, h.Professional.AddProfession)
		professionals.DELETE("/me/professions/:linkId", authRequired, professionalOnly, h.Professional.RemoveProfession)
		professionals.GET("/:id", h.Professional.GetProfile)

		professionals.POST("/professions/:linkId/verify", authRequired, adminOnly, h.Professional.VerifyLink)
	}

	postings := api.Group("/services/postings")
	{
		postings.GET("", h.Posting.List)
		postings.GET("/my", authRequired, clientOnly, h.Posting.ListMine)
		postings.GET("/:id", h.Posting.Get)
		postings.GET("/:id/offers", authRequired, clientOnly, h.Offer.ListForPosting)
		postings.POST("", authRequired, clientOnly, h.Posting.Create)
		postings.PUT("/:id", authRequired, clientOnly, h.Posting.Update)
		postings.DELETE("/:id", authRequired, middleware.RequireRoles(models.UserRoleClient, models.UserRoleAdmin), h.Posting.Delete)
	}

	offers := api.Group("/services/offers", authRequired)
	{
		offers.POST("", professionalOnly, h.Offer.Create)
		offers.GET("/my", professionalOnly, h.Offer.ListMine)
		offers.GET("/:id", h.Offer.Get)
		offers.PUT("/:id", professionalOnly, h.Offer.Update)
		offers.DELETE("/:id", professionalOnly, h.Offer.Withdraw)
		offers.POST("/:id/accept", clientOnly, h.Offer.Accept)
		offers.POST("/:id/reject", clientOnly, h.Offer.Reject)
	}

	transactions := api.Group("/services/transactions", authRequired)
	{
		transactions.GET("/my", h.Transaction.ListMine)
		transactions.GET("/:id", h.Transaction.Get)
		transactions.PATCH("/:id/status", h.Transaction.UpdateStatus)
		transactions.POST("/:id/promo", clientOnly, h.Transaction.ApplyPromo)
	}

	reviews := api.Group("/services/reviews")
	{
		reviews.POST("", authRequired, h.Review.Create)
		reviews.GET("/:id", h.Review.Get)
		reviews.GET("/transaction/:id", authRequired, h.Review.ListForTransaction)

		reviews.GET("", authRequired, adminOnly, h.Review.ListAll)
		reviews.DELETE("/:id", authRequired, adminOnly, h.Review.Delete)
	}

	payments := api.Group("/payments", authRequired)
	{
		payments.GET("", adminOnly, h.Payment.List)
		payments.GET("/my", h.Payment.ListMine)
		payments.GET("/:id", h.Payment.Get)
		payments.PATCH("/:id/status", adminOnly, h.Payment.UpdateStatus)
	}

	withdrawals := api.Group("/withdrawals", authRequired)
	{
		withdrawals.POST("", professionalOnly, h.Withdrawal.Create)
		withdrawals.GET("/my", h.Withdrawal.ListMine)
		withdrawals.GET("/:id", h.Withdrawal.Get)

		withdrawals.GET("", adminOnly, h.Withdrawal.ListAll)
		withdrawals.PATCH("/:id/status", adminOnly, h.Withdrawal.UpdateStatus)
	}

	promoCodes := api.Group("/promo-codes")
	{
		promoCodes.GET("/validate/:code", h.Promo.Validate)

		promoCodes.POST("", authRequired, adminOnly, h.Promo.Create)
		promoCodes.GET("", authRequired, adminOnly, h.Promo.List)
		promoCodes.GET("/:id", authRequired, adminOnly, h.Promo.Get)
		promoCodes.PUT("/:id", authRequired, adminOnly, h.Promo.Update)
		promoCodes.DELETE("/:id", authRequired, adminOnly, h.Promo.Delete)
	}

	reports := api.Group("/reports", authRequired)
	{
		reports.POST("", h.Report.Create)
		reports.GET("/my", h.Report.ListMine)
		reports.GET("/:id", h.Report.Get)

		reports.GET("", adminOnly, h.Report.ListAll)
		reports.PATCH("/:id/status", adminOnly, h.Report.UpdateStatus)
	}

	uploads := api.Group("/upload", authRequired)
	{
		uploads.POST("", h.Upload.Upload)
		uploads.POST("/professional/certifications", professionalOnly, h.Upload.UploadKind("certification"))
		uploads.POST("/professional/portfolio", professionalOnly, h.Upload.UploadKind("portfolio"))
		uploads.GET("", h.Upload.ListMine)
		uploads.DELETE("/:id", h.Upload.Delete)
	}
	router.Static("/api/v1/upload/files", cfg.Storage.BasePath)

	chatbot := api.Group("/chatbot", authRequired)
	{
		chatbot.POST("/conversations", h.Chat.StartConversation)
		chatbot.GET("/conversations", h.Chat.ListMyConversations)
		chatbot.GET("/conversations/:id/messages", h.Chat.GetMessages)
		chatbot.POST("/conversations/:id/messages", h.Chat.SendMessage)
		chatbot.POST("/conversations/:id/escalate", h.Chat.Escalate)
		chatbot.POST("/conversations/:id/close", h.Chat.Close)
	}

	adminChatbot := api.Group("/admin/chatbot", authRequired, adminOnly)
	{
		adminChatbot.GET("/conversations", h.Chat.ListAllConversations)
		adminChatbot.GET("/conversations/:id", h.Chat.GetConversation)
		adminChatbot.PUT("/conversations/:id", h.Chat.UpdateConversationStatus)
		adminChatbot.GET("/conversations/:id/messages", h.Chat.GetMessages)
		adminChatbot.GET("/tickets", h.Chat.ListTickets)
		adminChatbot.GET("/tickets/:id", h.Chat.GetTicket)
		adminChatbot.POST("/tickets/:id/respond", h.Chat.Respond)
		adminChatbot.PATCH("/tickets/:id/status", h.Chat.UpdateTicketStatus)
		adminChatbot.POST("/playground", h.Chat.Playground)
	}
}
