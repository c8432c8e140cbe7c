//go:build unix

package terminal

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

func checkPlatform() error { return nil }

// wait blocks until input is readable or timeout elapses, then returns what
// one read produced. A nil slice means the timeout elapsed.
func (t *Terminal) wait(timeout time.Duration) ([]byte, error) {
	if t.inFd < 0 {
		return nil, errors.New("poll input: no input terminal")
	}

	fds := []unix.PollFd{
		{Fd: int32(t.inFd), Events: unix.POLLIN},
	}
	ms := int(timeout / time.Millisecond)

	for {
		n, err := unix.Poll(fds, ms)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("poll input: %w", err)
		}
		if n == 0 {
			return nil, nil
		}
		break
	}

	if fds[0].Revents&(unix.POLLERR|unix.POLLNVAL) != 0 {
		return nil, errors.New("poll input: descriptor error")
	}

	rn, err := unix.Read(t.inFd, t.readBuf)
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return nil, nil
		}
		return nil, fmt.Errorf("read input: %w", err)
	}
	if rn == 0 {
		return nil, errors.New("read input: input closed")
	}

	ret := make([]byte, rn)
	copy(ret, t.readBuf[:rn])
	return ret, nil
}
