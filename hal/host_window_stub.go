//go:build !cgo

package hal

import "errors"

func RunWindow(_ WindowConfig, _ Client) error {
	return errors.New("hal: window mode requires cgo (build/run with CGO_ENABLED=1)")
}
