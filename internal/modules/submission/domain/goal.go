package domain

import (
	"fmt"
	"strings"

	apperrors "easeed/internal/platform/errors"
)

// Goal is the transformation the backend applies. The zero value means "not selected".
type Goal string

const (
	GoalUnset Goal = ""
	GoalLearn Goal = "learn"
	GoalQuiz  Goal = "quiz"
	GoalNotes Goal = "notes"
)

var Goals = []Goal{GoalLearn, GoalQuiz, GoalNotes}

// ParseGoal accepts an empty string as GoalUnset so the missing-goal case is reported
// by Validate with its user-facing message.
func ParseGoal(raw string) (Goal, error) {
	g := Goal(strings.ToLower(strings.TrimSpace(raw)))
	if g == GoalUnset {
		return GoalUnset, nil
	}
	switch g {
	case GoalLearn, GoalQuiz, GoalNotes:
		return g, nil
	default:
		return "", fmt.Errorf("%w: unsupported goal %q", apperrors.ErrInvalidInput, string(g))
	}
}

func (g Goal) IsSet() bool { return g != GoalUnset }

func (g Goal) Label() string {
	switch g {
	case GoalLearn:
		return "Learn"
	case GoalQuiz:
		return "Quiz"
	case GoalNotes:
		return "Notes"
	default:
		return ""
	}
}

// Next and Prev cycle through Goals; from unset they land on the first/last goal.
func (g Goal) Next() Goal {
	if !g.IsSet() {
		return Goals[0]
	}
	return cycle(Goals, g, 1)
}

func (g Goal) Prev() Goal {
	if !g.IsSet() {
		return Goals[len(Goals)-1]
	}
	return cycle(Goals, g, -1)
}

// Endpoint derives the backend path for a goal and kind.
func Endpoint(g Goal, k Kind) string {
	return "/api/" + string(g) + "/" + k.Segment()
}
