package service

import (
	"fmt"

	"github.com/pkawa95/studytask-api/internal/domain"
)

// ErrSubjectNotOwned is returned when a task references a subject that
// does not exist or belongs to another user. It wraps
// domain.ErrValidation so the API layer maps it to a 400.
var ErrSubjectNotOwned = fmt.Errorf("%w: subject does not exist or is not owned by the caller", domain.ErrValidation)
