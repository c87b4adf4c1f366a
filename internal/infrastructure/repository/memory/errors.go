package memory

import "errors"

var (
	ErrDuplicate = errors.New("memory: duplicate key")
	ErrMissing   = errors.New("memory: row does not exist")
)
