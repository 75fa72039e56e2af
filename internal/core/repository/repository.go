package repository

import (
	"errors"
	"time"
)

// queryTimeout bounds every single store call.
const queryTimeout = 5 * time.Second

// ErrDuplicateKey is returned when an insert violates a unique index.
var ErrDuplicateKey = errors.New("duplicate key")
