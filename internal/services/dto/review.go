package dto

import (
	"time"

	"servimarket_backend/internal/models"
)

type CreateReviewRequest struct {
	TransactionID string `json:"transactionId" validate:"required,uuid"`
	Rating        int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment       string `json:"comment" validate:"omitempty,max=2000"`
}

type ReviewResponse struct {
	ID            string              `json:"id"`
	TransactionID string              `json:"transactionId"`
	ReviewerID    string              `json:"reviewerId"`
	RevieweeID    string              `json:"revieweeId"`
	Reviewer      *PublicUserResponse `json:"reviewer,omitempty"`
	Rating        int                 `json:"rating"`
	Comment       string              `json:"comment,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}

func NewReviewResponse(review *models.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:            review.ID,
		TransactionID: review.TransactionID,
		ReviewerID:    review.ReviewerID,
		RevieweeID:    review.RevieweeID,
		Rating:        review.Rating,
		Comment:       review.Comment,
		CreatedAt:     review.CreatedAt,
	}
	if review.Reviewer != nil {
		r := NewPublicUserResponse(review.Reviewer)
		resp.Reviewer = &r
	}
	return resp
}

func NewReviewListResponse(reviews []models.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewReviewResponse(&reviews[i]))
	}
	return out
}
