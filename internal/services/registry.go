package services

import (
	"gorm.io/gorm"

	"servimarket_backend/internal/chatbot"
	"servimarket_backend/internal/config"
	"servimarket_backend/internal/email"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/storage"
)

// ServiceContainer holds every application service, built once at startup.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	ProfessionService   ProfessionService
	ProfessionalService ProfessionalService
	PostingService      PostingService
	OfferService        OfferService
	TransactionService  TransactionService
	PaymentService      PaymentService
	WithdrawalService   WithdrawalService
	PromoService        PromoService
	ReviewService       ReviewService
	ReportService       ReportService
	ChatService         ChatService
	UploadService       UploadService
}

func NewServiceContainer(db *gorm.DB, cfg *config.Config, store storage.Storage, emailProvider email.Provider, responder chatbot.Responder) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	professionRepo := repositories.NewProfessionRepository(db)
	professionalRepo := repositories.NewProfessionalRepository(db)
	postingRepo := repositories.NewPostingRepository(db)
	offerRepo := repositories.NewOfferRepository(db)
	txRepo := repositories.NewTransactionRepository(db)
	withdrawalRepo := repositories.NewWithdrawalRepository(db)
	promoRepo := repositories.NewPromoRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	reportRepo := repositories.NewReportRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	uploadRepo := repositories.NewUploadRepository(db)

	return &ServiceContainer{
		AuthService:         NewAuthService(cfg, userRepo, professionalRepo, emailProvider),
		UserService:         NewUserService(userRepo),
		ProfessionService:   NewProfessionService(professionRepo),
		ProfessionalService: NewProfessionalService(professionalRepo, professionRepo),
		PostingService:      NewPostingService(postingRepo, professionRepo),
		OfferService:        NewOfferService(db, offerRepo, postingRepo, txRepo),
		TransactionService:  NewTransactionService(db, txRepo, promoRepo, userRepo),
		PaymentService:      NewPaymentService(db, txRepo),
		WithdrawalService:   NewWithdrawalService(db, withdrawalRepo, userRepo, emailProvider),
		PromoService:        NewPromoService(promoRepo),
		ReviewService:       NewReviewService(db, reviewRepo, txRepo),
		ReportService:       NewReportService(reportRepo, userRepo),
		ChatService:         NewChatService(chatRepo, responder),
		UploadService:       NewUploadService(cfg, uploadRepo, store),
	}
}
