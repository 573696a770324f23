package link

import "errors"

var (
	ErrInvalidOption = errors.New("link: invalid option")
	ErrNoProvider    = errors.New("link: no external value provider")
	ErrUnresolved    = errors.New("link: external value not resolved")
	ErrTypeMismatch  = errors.New("link: external value type mismatch")
)
