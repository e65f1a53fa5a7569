package errors

import "errors"

var (
	// ErrUserNotFound is returned when a user id has no match.
	ErrUserNotFound = errors.New("user not found")
	// ErrTeamNotFound is returned when a team lookup has no match.
	ErrTeamNotFound = errors.New("team not found")
	// ErrProjectNotFound is returned when a project id has no match.
	ErrProjectNotFound = errors.New("project not found")
	// ErrTaskNotFound is returned when a task id has no match.
	ErrTaskNotFound = errors.New("task not found")
	// ErrDocumentNotFound is returned when a document id has no match.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrInvalidTransition is returned when a task status change is not in the
	// transition table.
	ErrInvalidTransition = errors.New("invalid task status transition")
)
