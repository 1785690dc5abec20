package hotel

import "errors"

var (
	// ErrRoomUnavailable is returned by the admission step when the room is
	// occupied or another booking holds an overlapping window.
	ErrRoomUnavailable = errors.New("room not available for the requested dates")
)
