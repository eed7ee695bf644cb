package planning

import (
	"fmt"
	"time"

	"plow/internal/domain/entity"
	"plow/internal/util"
)

// projectionHorizonHours caps how far ahead a trigger time is
// projected; slower accumulations report only "below threshold".
const projectionHorizonHours = 24

// EvaluateTrigger evaluates accumulated snowfall against the
// auto-dispatch threshold. It is a pure state evaluator, not a
// scheduler: it reports a status for an external dispatcher to act on.
//
// The trigger fires exactly when the accumulation reaches the
// threshold. Below it, a trigger time is projected from the current
// snowfall rate when one falls within the projection horizon.
func EvaluateTrigger(sample entity.WeatherSample, thresholdInches float64, now time.Time) entity.DispatchStatus {
	status := entity.DispatchStatus{
		ThresholdInches: thresholdInches,
		CurrentInches:   sample.SnowfallTotalInches,
		IsTriggered:     sample.SnowfallTotalInches >= thresholdInches,
	}

	if status.IsTriggered {
		triggeredAt := now
		status.NextDispatchAt = &triggeredAt
		status.Message = "Auto-dispatch active: fleet deployed for snow removal"

		return status
	}

	remainingInches := thresholdInches - sample.SnowfallTotalInches

	if sample.SnowfallRatePerHour > 0 {
		hoursUntilTrigger := remainingInches / sample.SnowfallRatePerHour
		if hoursUntilTrigger < projectionHorizonHours {
			triggerAt := now.Add(time.Duration(hoursUntilTrigger * float64(time.Hour)))
			status.NextDispatchAt = &triggerAt
			status.Message = fmt.Sprintf(
				"Auto-dispatch triggers after %.1f\" more snowfall (est. %s)",
				remainingInches,
				util.FormatMinutes(hoursUntilTrigger*60),
			)

			return status
		}
	}

	status.Message = "Snowfall below auto-dispatch threshold"

	return status
}
