package geometry

import "golang.org/x/xerrors"

// Errors returned by the primitive constructors.
var (
	ErrInvalidRadius   = xerrors.New("geometry: radius must be positive and finite")
	ErrNonFinite       = xerrors.New("geometry: coordinate is NaN or infinite")
	ErrDegenerateEdges = xerrors.New("geometry: edge vectors are zero-length or parallel")
	ErrNilObject       = xerrors.New("geometry: nil object")
)
