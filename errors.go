package unveil

import "errors"

var (
	// ErrObserverUnavailable is returned by Scene.Observe when viewport
	// observation cannot be established for a node: the scene has no camera,
	// or the node is nil or disposed.
	ErrObserverUnavailable = errors.New("unveil: observer unavailable")

	// ErrInvalidVariant is returned by NewVariantSet for malformed variants.
	ErrInvalidVariant = errors.New("unveil: invalid variant")

	// ErrUnknownVariant is returned by VariantSet.Get for names not in the set.
	ErrUnknownVariant = errors.New("unveil: unknown variant")

	// ErrInvalidLoop is returned by Scene.StartLoop for malformed loop specs.
	ErrInvalidLoop = errors.New("unveil: invalid loop")
)
