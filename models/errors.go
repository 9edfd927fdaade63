package models

import "errors"

var (
	ErrUnauthenticated = errors.New("user not authenticated")
	ErrNotFound        = errors.New("article not found")
	ErrDuplicateEmail  = errors.New("email already exists")
	ErrInvalidArticle  = errors.New("invalid article")
	ErrInvalidCreds    = errors.New("invalid credentials")
)
