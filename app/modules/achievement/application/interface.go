package achievementservice

import "context"

// AchievementInfo is the achievement view returned to callers.
type AchievementInfo struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	TriggerType string  `json:"triggerType"`
	Description *string `json:"description"`
}

// Service exposes the seeded achievement catalogue.
type Service interface {
	List(ctx context.Context) ([]AchievementInfo, error)
}
