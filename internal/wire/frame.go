package wire

import (
	"errors"
	"io"
	"net"
	"os"
	"time"
)

const (
	// FrameWait is how long ReadFrame waits for the rest of a frame after a
	// read that filled the whole buffer.
	FrameWait = 20 * time.Millisecond

	// MaxFrameSize bounds a frame assembled by ReadFrame.
	MaxFrameSize = 4 << 20
)

// ErrFrameTooLarge is returned by ReadFrame when a frame outgrows
// MaxFrameSize. The connection cannot be resynchronized afterwards.
var ErrFrameTooLarge = errors.New("frame too large")

// ReadFrame reads one frame from conn using buf as the read buffer.
//
// Frames carry no length, so a read shorter than buf ends the frame. A read
// that fills buf is followed by further reads, each allowed FrameWait to
// deliver, until one comes back short, times out or hits EOF. The read
// deadline is cleared before returning. The result aliases buf only when
// the frame fit in one read.
func ReadFrame(conn net.Conn, buf []byte) ([]byte, error) {
	n, err := conn.Read(buf)
	if err != nil {
		return nil, err
	}
	if n < len(buf) {
		return buf[:n], nil
	}

	defer func() { _ = conn.SetReadDeadline(time.Time{}) }()

	frame := append([]byte(nil), buf[:n]...)
	for n == len(buf) {
		if len(frame) > MaxFrameSize {
			return nil, ErrFrameTooLarge
		}
		if err := conn.SetReadDeadline(time.Now().Add(FrameWait)); err != nil {
			return nil, err
		}

		n, err = conn.Read(buf)
		frame = append(frame, buf[:n]...)
		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
	}

	if len(frame) > MaxFrameSize {
		return nil, ErrFrameTooLarge
	}
	return frame, nil
}
