//go:build !unix

package terminal

import (
	"errors"
	"time"
)

var errUnsupportedPlatform = errors.New("terminal input polling is not supported on this platform")

func checkPlatform() error { return errUnsupportedPlatform }

func (t *Terminal) wait(time.Duration) ([]byte, error) {
	return nil, errUnsupportedPlatform
}
