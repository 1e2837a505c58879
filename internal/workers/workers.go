package workers

import (
	"time"

	"github.com/robfig/cron/v3"

	"servimarket_backend/internal/logger"
	"servimarket_backend/internal/repositories"
)

// postingMaxAge is how long an open posting lives before the scheduler
// expires it.
const postingMaxAge = 30 * 24 * time.Hour

// Scheduler runs the periodic maintenance jobs: posting expiry, promo code
// deactivation, and refresh token cleanup.
type Scheduler struct {
	cron        *cron.Cron
	postingRepo repositories.PostingRepository
	promoRepo   repositories.PromoRepository
	userRepo    repositories.UserRepository
}

func NewScheduler(postingRepo repositories.PostingRepository, promoRepo repositories.PromoRepository, userRepo repositories.UserRepository) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		postingRepo: postingRepo,
		promoRepo:   promoRepo,
		userRepo:    userRepo,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@hourly", s.ExpirePostings); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("@hourly", s.DeactivatePromoCodes); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("@every 6h", s.PurgeRefreshTokens); err != nil {
		return err
	}
	s.cron.Start()
	logger.Info("scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("scheduler stopped")
}

func (s *Scheduler) ExpirePostings() {
	count, err := s.postingRepo.ExpireOlderThan(time.Now().Add(-postingMaxAge))
	if err != nil {
		logger.WithError(err).Error("posting expiry job failed")
		return
	}
	if count > 0 {
		logger.Info("postings expired", "count", count)
	}
}

func (s *Scheduler) DeactivatePromoCodes() {
	count, err := s.promoRepo.DeactivateExpired(time.Now())
	if err != nil {
		logger.WithError(err).Error("promo deactivation job failed")
		return
	}
	if count > 0 {
		logger.Info("promo codes deactivated", "count", count)
	}
}

func (s *Scheduler) PurgeRefreshTokens() {
	count, err := s.userRepo.DeleteExpiredRefreshTokens(time.Now())
	if err != nil {
		logger.WithError(err).Error("refresh token purge failed")
		return
	}
	if count > 0 {
		logger.Info("expired refresh tokens purged", "count", count)
	}
}
