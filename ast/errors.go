package ast

import "strconv"

// ParseError is implemented by every error returned by Parse. Pos reports
// the rune index of the offending character within the pattern.
type ParseError interface {
	error
	Pos() int
}

type parseError struct {
	Location int
	Source   string
}

type UnclosedGroupError parseError

func (err *UnclosedGroupError) Error() string {
	return "unclosed group opened at position " + strconv.Itoa(err.Location)
}

func (err *UnclosedGroupError) Pos() int { return err.Location }

type UnopenedGroupError parseError

func (err *UnopenedGroupError) Error() string {
	return "closing parenthesis outside of group at position " + strconv.Itoa(err.Location)
}

func (err *UnopenedGroupError) Pos() int { return err.Location }

type DanglingRepetitionError parseError

func (err *DanglingRepetitionError) Error() string {
	return "repetition of nothing at position " + strconv.Itoa(err.Location)
}

func (err *DanglingRepetitionError) Pos() int { return err.Location }

type DanglingEscapeError parseError

func (err *DanglingEscapeError) Error() string {
	return "dangling escape at position " + strconv.Itoa(err.Location)
}

func (err *DanglingEscapeError) Pos() int { return err.Location }

type EmptyPatternError parseError

func (err *EmptyPatternError) Error() string {
	return "empty expression at position " + strconv.Itoa(err.Location)
}

func (err *EmptyPatternError) Pos() int { return err.Location }
