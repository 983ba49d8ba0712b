package domain

import "errors"

var (
	ErrUnsupportedGame = errors.New("unsupported installation")
	ErrNoActiveGame    = errors.New("no active game")
	ErrModNotFound     = errors.New("mod not found")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrUnknownItemType = errors.New("unknown item type")
)
