package encode

import "errors"

var (
	ErrRootNotObject = errors.New("root value is not an object")
)
