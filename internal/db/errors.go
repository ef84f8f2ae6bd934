package db

import "errors"

// Domain-level database error sentinels.
var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrDuplicateProject   = errors.New("project already exists for this domain")
	ErrKeywordNotFound    = errors.New("keyword not found")
	ErrDuplicateKeyword   = errors.New("keyword already tracked for this project")
	ErrCompetitorNotFound = errors.New("competitor not found")
	ErrRunNotFound        = errors.New("analysis run not found")
	ErrUserNotFound       = errors.New("user not found")
)
