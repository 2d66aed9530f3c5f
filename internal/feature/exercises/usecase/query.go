package usecase

import "exercise_tracker/internal/feature/exercises/domain/entity"

// BuildLogQuery turns the raw log filters into a retrieval plan for userID.
// A negative limit is kept as given; stores treat any limit <= 0 as no cap.
func BuildLogQuery(userID string, p entity.LogParams) (entity.LogQuery, error) {
	rng, limit, err := ValidateLogQuery(p)
	if err != nil {
		return entity.LogQuery{}, err
	}
	return entity.LogQuery{UserID: userID, Range: rng, Limit: limit}, nil
}
