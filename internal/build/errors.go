package build

import "errors"

var (
	ErrNoTargets = errors.New("no targets to build")
	ErrCollect   = errors.New("artifact collection failed")
)
