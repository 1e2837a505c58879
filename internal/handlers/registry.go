package handlers

import "servimarket_backend/internal/services"

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	User         *UserHandler
	Profession   *ProfessionHandler
	Professional *ProfessionalHandler
	Posting      *PostingHandler
	Offer        *OfferHandler
	Transaction  *TransactionHandler
	Payment      *PaymentHandler
	Withdrawal   *WithdrawalHandler
	Promo        *PromoHandler
	Review       *ReviewHandler
	Report       *ReportHandler
	Chat         *ChatHandler
	Upload       *UploadHandler
}

func NewAppHandlers(container *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler()
	return &AppHandlers{
		Health:       NewHealthHandler(base),
		Auth:         NewAuthHandler(base, container.AuthService),
		User:         NewUserHandler(base, container.UserService),
		Profession:   NewProfessionHandler(base, container.ProfessionService),
		Professional: NewProfessionalHandler(base, container.ProfessionalService),
		Posting:      NewPostingHandler(base, container.PostingService),
		Offer:        NewOfferHandler(base, container.OfferService),
		Transaction:  NewTransactionHandler(base, container.TransactionService),
		Payment:      NewPaymentHandler(base, container.PaymentService),
		Withdrawal:   NewWithdrawalHandler(base, container.WithdrawalService),
		Promo:        NewPromoHandler(base, container.PromoService),
		Review:       NewReviewHandler(base, container.ReviewService),
		Report:       NewReportHandler(base, container.ReportService),
		Chat:         NewChatHandler(base, container.ChatService),
		Upload:       NewUploadHandler(base, container.UploadService),
	}
}
