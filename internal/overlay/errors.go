package overlay

import "errors"

var (
	// ErrInvalidTool is returned when SetTool receives an unrecognized tool
	// type.
	ErrInvalidTool = errors.New("overlay: invalid tool")

	// ErrNoContent is returned when an export is requested before any page
	// has been rendered.
	ErrNoContent = errors.New("overlay: no page rendered")

	// ErrGeometryMismatch is returned when a history snapshot's dimensions
	// no longer match the overlay surface. History is cleared on every
	// geometry sync, so hitting this indicates an internal consistency bug;
	// the surface is left untouched rather than repainted from the stale
	// snapshot.
	ErrGeometryMismatch = errors.New("overlay: snapshot does not match surface geometry")
)
