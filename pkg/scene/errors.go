package scene

import "golang.org/x/xerrors"

// Errors returned while building a scene.
var (
	ErrBadVector       = xerrors.New("scene: vectors need exactly three components")
	ErrUnknownType     = xerrors.New("scene: unknown type")
	ErrUnknownMaterial = xerrors.New("scene: unknown material")
	ErrDuplicateName   = xerrors.New("scene: duplicate material name")
	ErrBadTime         = xerrors.New("scene: ray time outside [0, 1]")
	ErrNotPreprocessed = xerrors.New("scene: BVH has not been built")
)
