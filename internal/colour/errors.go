package colour

import "errors"

var (
	// ErrMalformedHex is returned for hex colours that are not exactly "#RRGGBB".
	ErrMalformedHex = errors.New("colour: malformed hex colour")

	// ErrMalformedInput is returned when a colour expression cannot be parsed.
	ErrMalformedInput = errors.New("colour: malformed colour expression")

	// ErrUnknownSpace is returned for space names that are not registered.
	ErrUnknownSpace = errors.New("colour: unknown colour space")

	// ErrSpaceMismatch is returned when a value is tagged with a different
	// space than the one a conversion expects.
	ErrSpaceMismatch = errors.New("colour: value is in a different colour space")
)
