package render

import "github.com/pkg/errors"

var (
	// ErrDimensions indicates a non-positive image width or height.
	ErrDimensions = errors.New("render: image dimensions must be positive")

	// ErrIterations indicates an iteration cap below one.
	ErrIterations = errors.New("render: max iteration must be at least 1")

	// ErrBufferSize indicates a frame buffer that does not match the renderer.
	ErrBufferSize = errors.New("render: frame buffer size mismatch")
)
