package player

import (
	"errors"
	"fmt"
)

// Kind groups failures into the categories callers branch on.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindDuplicate
	KindInvalidState
	KindEmptyCollection
	KindNotImplemented
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindDuplicate:
		return "duplicate"
	case KindInvalidState:
		return "invalid state transition"
	case KindEmptyCollection:
		return "empty collection"
	case KindNotImplemented:
		return "not implemented"
	default:
		return "unknown"
	}
}

// Sentinel failures. Match them with errors.Is.
var (
	ErrVideoNotFound       = errors.New("video does not exist")
	ErrPlaylistNotFound    = errors.New("playlist does not exist")
	ErrDuplicatePlaylist   = errors.New("a playlist with the same name already exists")
	ErrDuplicateMembership = errors.New("video already added")
	ErrNotInPlaylist       = errors.New("video is not in playlist")
	ErrNoVideoPlaying      = errors.New("no video is currently playing")
	ErrAlreadyPaused       = errors.New("video already paused")
	ErrNotPaused           = errors.New("video is not paused")
	ErrEmptyLibrary        = errors.New("no videos available")
	ErrNotImplemented      = errors.New("not implemented")
)

var kinds = map[error]Kind{
	ErrVideoNotFound:       KindNotFound,
	ErrPlaylistNotFound:    KindNotFound,
	ErrDuplicatePlaylist:   KindDuplicate,
	ErrDuplicateMembership: KindDuplicate,
	ErrNotInPlaylist:       KindNotFound,
	ErrNoVideoPlaying:      KindInvalidState,
	ErrAlreadyPaused:       KindInvalidState,
	ErrNotPaused:           KindInvalidState,
	ErrEmptyLibrary:        KindEmptyCollection,
	ErrNotImplemented:      KindNotImplemented,
}

// Error is a user-facing failure of a single operation.
// Its message is the exact line shown to the user.
type Error struct {
	Op  string
	Err error
	msg string
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Kind reports the category of the wrapped sentinel.
func (e *Error) Kind() Kind {
	return kinds[e.Err]
}

// KindOf returns the category of err, or KindUnknown if err is not a player failure.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return KindUnknown
}

func failure(op string, sentinel error, format string, args ...any) *Error {
	return &Error{Op: op, Err: sentinel, msg: fmt.Sprintf(format, args...)}
}
