package achievementservice

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	achievementdb "github.com/ice-and-stone/scorekeeper/app/modules/achievement/infrastructure/repositories"
	"github.com/ice-and-stone/scorekeeper/app/shared/operations"
	"github.com/ice-and-stone/scorekeeper/app/shared/results"
)

// AchievementService serves the seeded achievement catalogue. Evaluation is
// an external concern; the backend only hands out the definitions.
type AchievementService struct {
	repo achievementdb.Repository
	tel  operations.Telemetry
	db   *bun.DB
}

// NewAchievementService creates a new AchievementService.
func NewAchievementService(repo achievementdb.Repository, tel operations.Telemetry, db *bun.DB) *AchievementService {
	tel.ServiceName = "AchievementService"
	return &AchievementService{repo: repo, tel: tel, db: db}
}

func (s *AchievementService) List(ctx context.Context) ([]AchievementInfo, error) {
	result, err := operations.WithTelemetry(ctx, s.tel, "ListAchievements", "",
		func(ctx context.Context) (results.OperationResult[[]AchievementInfo, error], error) {
			achievements, err := s.repo.List(ctx, s.idb())
			if err != nil {
				return results.OperationResult[[]AchievementInfo, error]{}, fmt.Errorf("failed to list achievements: %w", err)
			}
			infos := make([]AchievementInfo, 0, len(achievements))
			for _, a := range achievements {
				infos = append(infos, AchievementInfo{
					ID:          a.ID,
					Name:        a.Name,
					TriggerType: a.TriggerType,
					Description: a.Description,
				})
			}
			return results.SuccessResult[[]AchievementInfo, error](infos), nil
		})
	if err != nil {
		return nil, err
	}
	return *result.Success, nil
}

func (s *AchievementService) idb() bun.IDB {
	if s.db == nil {
		return nil
	}
	return s.db
}
