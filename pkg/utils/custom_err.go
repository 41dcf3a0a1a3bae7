package utils

import "errors"

var (
	ErrPackageNotFound    = errors.New("package not found")
	ErrBlogNotFound       = errors.New("blog post not found")
	ErrMessageNotFound    = errors.New("message not found")
	ErrFamilyNotFound     = errors.New("family info not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrEmptyResponse      = errors.New("response must not be empty")
	ErrInvalidPostedAt    = errors.New("posted_at must be RFC3339")
	ErrInvalidDate        = errors.New("start_date and end_date must be YYYY-MM-DD")
	ErrDatabaseError      = errors.New("database error")
)
