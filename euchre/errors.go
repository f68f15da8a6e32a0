package euchre

import (
	"errors"
	"fmt"
)

var (
	// ErrNotActive 牌局已结束后又被继续操作
	ErrNotActive = errors.New("game not active")
	// ErrDeckExhausted 发牌数量超过剩余牌数
	ErrDeckExhausted = errors.New("deck exhausted")
	// ErrPlayerNotFound 查询了一个不在座位上的玩家
	ErrPlayerNotFound = errors.New("player not seated")
)

type InvalidStateError string

func (e InvalidStateError) Error() string { return "invalid state: " + string(e) }

func ErrInvalidState(msg string) error { return InvalidStateError(msg) }

// IllegalMoveError reports a decision provider answer the rules reject: a
// card not held, a follow-suit violation, calling the turned-down suit, or a
// forced dealer passing. State is never mutated on an illegal answer.
type IllegalMoveError struct {
	Seat   int
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move by seat %d: %s", e.Seat, e.Reason)
}

func errIllegalMove(seat int, format string, args ...any) error {
	return &IllegalMoveError{Seat: seat, Reason: fmt.Sprintf(format, args...)}
}
