package adapters

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"fanbase_backend/internal/feature/user/domain/entity"
	"fanbase_backend/internal/feature/user/usecase"
)

// followingSinceSpan bounds the randomized follow date to the last 3 years.
const followingSinceSpan = 3 * 365 * 24 * time.Hour

// SimulatedSocialMedia stands in for the real social media APIs.
// It generates random engagement numbers; in production this would call
// each platform's API with the stored access token.
type SimulatedSocialMedia struct{}

// Compile-time check that SimulatedSocialMedia implements SocialMediaGateway.
var _ usecase.SocialMediaGateway = (*SimulatedSocialMedia)(nil)

// NewSimulatedSocialMedia creates a new SimulatedSocialMedia.
func NewSimulatedSocialMedia() *SimulatedSocialMedia {
	return &SimulatedSocialMedia{}
}

// FetchInteractions generates randomized interaction metrics for the
// platform together with the derived summary.
func (s *SimulatedSocialMedia) FetchInteractions(_ context.Context, _, _ string) (entity.SocialInteractions, entity.InteractionSummary, error) {
	now := time.Now()
	interactions := entity.SocialInteractions{
		Likes:          rand.IntN(50),
		Comments:       rand.IntN(20),
		Shares:         rand.IntN(10),
		FollowingSince: now.Add(-time.Duration(rand.Int64N(int64(followingSinceSpan)))),
		LastUpdated:    now,
	}

	months := int(now.Sub(interactions.FollowingSince).Hours() / (24 * 30))
	summary := entity.InteractionSummary{
		TotalInteractions:     interactions.Likes + interactions.Comments + interactions.Shares,
		FollowingDuration:     fmt.Sprintf("%d months", months),
		LastMonthInteractions: rand.IntN(30),
	}

	return interactions, summary, nil
}

// SimulatedProfileValidator stands in for profile scraping plus NLP
// analysis. In production this would fetch the profile page and analyze
// its content.
type SimulatedProfileValidator struct{}

// Compile-time check that SimulatedProfileValidator implements ProfileValidator.
var _ usecase.ProfileValidator = (*SimulatedProfileValidator)(nil)

// NewSimulatedProfileValidator creates a new SimulatedProfileValidator.
func NewSimulatedProfileValidator() *SimulatedProfileValidator {
	return &SimulatedProfileValidator{}
}

// ValidateProfile generates a randomized validation result with a fixed
// set of detected teams and events.
func (s *SimulatedProfileValidator) ValidateProfile(_ context.Context, _, _ string) (entity.ProfileValidation, error) {
	return entity.ProfileValidation{
		ProfileExists:  true,
		Confidence:     0.7 + rand.Float64()*0.3,
		DetectedTeams:  []string{"FURIA", "Team Liquid", "NAVI"},
		DetectedEvents: []string{"IEM Rio Major", "BLAST Premier"},
		RelevanceScore: 0.6 + rand.Float64()*0.4,
		ValidatedAt:    time.Now(),
	}, nil
}
