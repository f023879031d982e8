package sentinel

import (
	"errors"
	"io"
)

var ErrNotFound = errors.New("not found")

var errLocal = errors.New("local")

func check(err error) bool {
	if err == nil {
		return false
	}
	if err == errLocal {
		return true
	}
	if err == ErrNotFound { // want `compare with errors.Is\(err, ErrNotFound\) instead of ==`
		return true
	}
	if io.EOF != err { // want `compare with errors.Is\(err, EOF\) instead of !=`
		return true
	}
	return errors.Is(err, ErrNotFound)
}
