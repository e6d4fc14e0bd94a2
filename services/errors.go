package services

import "errors"

// Shared errors used across services and the HTTP mapping layer.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business rules
	ErrValidationFailed     = errors.New("validation failed")
	ErrUnsupportedImageType = errors.New("unsupported image content type")
	ErrUnsupportedVideoType = errors.New("unsupported video content type")
	ErrInvalidMatchStatus   = errors.New("invalid match status provided")
	ErrMatchTimeRequired    = errors.New("match kickoff time is required")
	ErrAboutInvalidYear     = errors.New("established year is out of range")

	// Authentication
	ErrAuthInvalidCredentials = errors.New("invalid username or password")

	// Entity-specific not-found errors (more context than plain ErrNotFound)
	ErrCoachNotFound       = errors.New("coach not found")
	ErrPartnerNotFound     = errors.New("partner not found")
	ErrTournamentNotFound  = errors.New("tournament not found")
	ErrAchievementNotFound = errors.New("achievement not found")
	ErrTestimonialNotFound = errors.New("testimonial not found")
	ErrMatchNotFound       = errors.New("match not found")
	ErrAboutNotFound       = errors.New("about record not found")
)
