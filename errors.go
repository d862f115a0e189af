package netmsg

import (
	"errors"
	"fmt"
)

// Common sentinel errors for the netmsg package.
var (
	// ErrInvalidBitWidth is returned for a bit width the current mode cannot
	// code. Match it with errors.Is; the concrete error is a *BitWidthError.
	ErrInvalidBitWidth = errors.New("invalid bit width")

	// ErrOverflow is returned by writes into a full message when the message
	// does not allow overflow. The overflow flag is set either way.
	ErrOverflow = errors.New("message overflowed")

	// ErrReadPastEnd is returned by ReadByte once the read cursor has moved
	// past the recorded message size.
	ErrReadPastEnd = errors.New("read past end of message")

	// ErrCopyTooSmall is returned when copying into a buffer smaller than the
	// source message.
	ErrCopyTooSmall = errors.New("destination buffer smaller than message")

	// ErrInvalidOffset is returned by Message.Compress and Message.Decompress
	// for an offset outside the written part of the message.
	ErrInvalidOffset = errors.New("offset outside message")

	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("invalid config")
)

// BitWidthError describes a rejected bit width.
type BitWidthError struct {
	Op    string // "read" or "write"
	Width int
	OOB   bool
}

func (e *BitWidthError) Error() string {
	if e.OOB {
		return fmt.Sprintf("netmsg: can't %s %d bits out of band, want 8, 16 or 32", e.Op, e.Width)
	}
	return fmt.Sprintf("netmsg: can't %s %d bits, want 1 to 32", e.Op, e.Width)
}

// Is reports whether target is ErrInvalidBitWidth.
func (e *BitWidthError) Is(target error) bool {
	return target == ErrInvalidBitWidth
}

// checkWidth validates a signed width and returns its magnitude.
func checkWidth(op string, width int, oob bool) (int, error) {
	n := width
	if n < 0 {
		n = -n
	}
	if n < 1 || n > 32 {
		return 0, &BitWidthError{Op: op, Width: width, OOB: oob}
	}
	if oob && n != 8 && n != 16 && n != 32 {
		return 0, &BitWidthError{Op: op, Width: width, OOB: oob}
	}
	return n, nil
}
