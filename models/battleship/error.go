package battleship

import (
	"errors"
	"fmt"
)

const (
	BoardErrOutOfBounds uint8 = iota
	BoardErrAlreadyTargeted
	BoardErrWrongPlacement
	BoardErrAttemptsExhausted
)

// BoardErr is returned by board operations. All codes are
// recoverable: the caller retries the shot or the placement.
type BoardErr struct {
	code uint8
	desc string
}

func NewBoardErr(code uint8) BoardErr {
	return BoardErr{code: code}
}

func (b BoardErr) AddDesc(desc string) BoardErr {
	b.desc = desc
	return b
}

func (b BoardErr) Error() string {
	switch b.code {
	case BoardErrOutOfBounds:
		return "You're trying to shoot outside!"
	case BoardErrAlreadyTargeted:
		return "You have already shot this cell"
	case BoardErrWrongPlacement:
		return fmt.Sprintf("wrong ship placement: %s", b.desc)
	case BoardErrAttemptsExhausted:
		return fmt.Sprintf("board generation attempts exhausted: %s", b.desc)
	default:
		return fmt.Sprintf("Board error - Code: %d\tdesc: %s", b.code, b.desc)
	}
}

func (b BoardErr) Code() uint8 {
	return b.code
}

func (b BoardErr) Desc() string {
	return b.desc
}

// IsBoardErr reports whether err carries a BoardErr with the given code.
func IsBoardErr(err error, code uint8) bool {
	var boardErr BoardErr
	if !errors.As(err, &boardErr) {
		return false
	}
	return boardErr.code == code
}

// Shot errors are the ones a player recovers from by choosing another target.
func isShotErr(err error) bool {
	return IsBoardErr(err, BoardErrOutOfBounds) || IsBoardErr(err, BoardErrAlreadyTargeted)
}
