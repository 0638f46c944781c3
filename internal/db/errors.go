package db

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrEmailExists = errors.New("email already exists")
	ErrSelfFollow  = errors.New("cannot follow yourself")
)
