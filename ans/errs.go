package ans

import "errors"

var (
	ErrParse        = errors.New("parse error")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrInvalidIndex = errors.New("invalid index")
	ErrNotFound     = errors.New("answer not found")
)
