package models

import "time"

// MockUser is the single seeded account every endpoint answers for.
type MockUser struct {
	ID                    string    `json:"id"`
	Email                 string    `json:"email"`
	CreditsRemaining      int       `json:"credits_remaining"`
	SubscriptionTier      string    `json:"subscription_tier"`
	SubscriptionStartDate time.Time `json:"subscription_start_date"`
	SubscriptionEndDate   time.Time `json:"subscription_end_date"`
}

// UserProfile is the trimmed user object returned by the auth endpoints.
type UserProfile struct {
	Email            string `json:"email"`
	ID               string `json:"id"`
	CreditsRemaining int    `json:"credits_remaining"`
	SubscriptionTier string `json:"subscription_tier"`
}
