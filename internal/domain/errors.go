package domain

import "errors"

var (
	ErrUnknownPiece    = errors.New("unknown piece")
	ErrUnknownCircle   = errors.New("unknown circle")
	ErrUnknownLayout   = errors.New("unknown layout")
	ErrUnknownAction   = errors.New("unknown action")
	ErrSessionNotFound = errors.New("session not found")
)
