package models

type DashboardStats struct {
	CoachesTotal      int `json:"coaches_total"`
	PartnersTotal     int `json:"partners_total"`
	TournamentsTotal  int `json:"tournaments_total"`
	AchievementsTotal int `json:"achievements_total"`
	TestimonialsTotal int `json:"testimonials_total"`
	MatchesTotal      int `json:"matches_total"`
	UpcomingMatches   int `json:"upcoming_matches"`
}
