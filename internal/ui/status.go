package ui

import (
	"errors"
	"fmt"

	"github.com/duet-tui/duet/internal/fambot"
)

// failureText turns a failed command into a one-line human message for the
// status bar. Known service codes get a specific phrasing; anything else
// keeps the raw code so the user can report it.
func failureText(op string, err error) string {
	var cmdErr *fambot.CommandError
	if !errors.As(err, &cmdErr) {
		return fmt.Sprintf("Could not %s: %v", op, err)
	}

	if cmdErr.Kind == fambot.ErrTransport {
		return fmt.Sprintf("Could not %s: service unreachable", op)
	}

	switch cmdErr.Code {
	case fambot.CodeBadFormat:
		return "Date must look like DD.MM.YYYY"
	case fambot.CodeInvalidDate:
		return "That date does not exist"
	case fambot.CodeInvalidURL:
		return "That does not look like a valid link"
	case fambot.CodeTitleRequired:
		return "A wish needs a title"
	case fambot.CodeDateRequired:
		return "Enter a date first"
	case fambot.CodeNoPair:
		return "You are not paired yet"
	case fambot.CodeUserRequired:
		return "Sign-in details are missing, check your config"
	case fambot.CodeItemIDRequired:
		return fmt.Sprintf("Could not %s: the wish no longer exists", op)
	default:
		return fmt.Sprintf("Could not %s (%s)", op, cmdErr.Code)
	}
}
