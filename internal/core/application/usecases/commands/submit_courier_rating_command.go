package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/task"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrSubmitCourierRatingCommandIsNotConstructed = errors.New(
	"SubmitCourierRatingCommand must be created via NewSubmitCourierRatingCommand constructor",
)

// SubmitCourierRatingCommand represents a customer rating the courier after
// a completed delivery. Ratings are write-once per task.
type SubmitCourierRatingCommand struct { //nolint:recvcheck //using for validation
	taskID kernel.UUID
	rating float64

	guard guard.ConstructorGuard
}

// NewSubmitCourierRatingCommand creates a command to rate a courier.
func NewSubmitCourierRatingCommand(taskID kernel.UUID, rating float64) (SubmitCourierRatingCommand, error) {
	if err := taskID.Validate(); err != nil {
		return SubmitCourierRatingCommand{}, err
	}
	if rating < task.MinCourierRating || rating > task.MaxCourierRating {
		return SubmitCourierRatingCommand{}, errs.NewValueIsOutOfRangeError(
			"rating", rating, task.MinCourierRating, task.MaxCourierRating)
	}

	return SubmitCourierRatingCommand{
		taskID: taskID,
		rating: rating,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitCourierRatingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitCourierRatingCommandIsNotConstructed)
}

// TaskID returns the identifier of the rated task.
func (c SubmitCourierRatingCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Rating returns the submitted rating value.
func (c SubmitCourierRatingCommand) Rating() float64 {
	return c.rating
}
