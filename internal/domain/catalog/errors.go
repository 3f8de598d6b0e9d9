package catalog

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrOfferingNotFound = errors.New("offering not found")
)
