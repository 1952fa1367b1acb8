//go:build !cgo

package hal

import (
	"errors"
	"io"
)

func RunWindow(_ StartFunc, _ io.Writer) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
