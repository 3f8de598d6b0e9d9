package submission

import "errors"

var (
	ErrNoImages             = errors.New("at least one artwork image is required")
	ErrTooManyImages        = errors.New("too many images (max 10)")
	ErrFileTooLarge         = errors.New("file too large")
	ErrUnsupportedImageType = errors.New("unsupported file type (allowed: jpeg, png, gif)")
	ErrNotAnImage           = errors.New("file is not a decodable image")
)
