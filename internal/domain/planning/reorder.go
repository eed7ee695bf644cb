package planning

import (
	"time"

	"plow/internal/domain/entity"
	domainerrors "plow/internal/domain/errors"
)

// Reorder applies a manual move of one stop within the reorderable
// (pending and en-route) subset of an operator's jobs: the stop at
// fromIndex is removed and reinserted at toIndex, list semantics. An
// in-progress job stays locked at position 1 and completed jobs stay
// excluded, consistent with Build. Indices outside the reorderable
// subset fail loudly; clamping would silently move the wrong stop.
//
// The resulting order goes through the same timing walk as Build, so a
// manual route and an optimized route can never disagree on timing.
func Reorder(operator entity.Operator, jobs []entity.Job, fromIndex, toIndex int, resolver *DurationResolver, startTime time.Time) (*entity.Route, error) {
	if !operator.CurrentLocation.Valid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	start := startTime
	if start.IsZero() {
		start = time.Now()
	}

	candidates, inProgress, completed := partition(jobs)

	if fromIndex < 0 || fromIndex >= len(candidates) ||
		toIndex < 0 || toIndex >= len(candidates) {
		return nil, domainerrors.ErrReorderIndexOutOfRange
	}

	reordered := make([]entity.Job, len(candidates))
	copy(reordered, candidates)

	moved := reordered[fromIndex]
	reordered = append(reordered[:fromIndex], reordered[fromIndex+1:]...)
	reordered = append(reordered[:toIndex], append([]entity.Job{moved}, reordered[toIndex:]...)...)

	ordered := make([]entity.Job, 0, len(inProgress)+len(reordered))
	ordered = append(ordered, inProgress...)
	ordered = append(ordered, reordered...)

	return walkTimings(operator, ordered, completed, resolver, start)
}
