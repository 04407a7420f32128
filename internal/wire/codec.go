// Package wire implements the delimited text framing used by the raw-socket
// transport.
//
// A frame is ASCII text whose fields are joined by Delimiter. The first field
// is the integer opcode, the second the protocol version, and the rest are
// the operation's fields in their declared order:
//
//	2||1||<token>||alice||bob||hi!
//
// There is no escaping: payloads containing Delimiter produce a frame that
// fails to decode with common.ErrArgCountMismatch.
package wire

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophchat/internal/common"
)

// Delimiter separates fields inside a frame.
const Delimiter = "||"

// Message is a request or reply record with a fixed field schema.
type Message interface {
	Opcode() Opcode
	fields() []field
}

// field points at one schema slot of a message. Exactly one of i or s is set.
type field struct {
	name string
	i    *int
	s    *string
}

func intField(name string, p *int) field       { return field{name: name, i: p} }
func stringField(name string, p *string) field { return field{name: name, s: p} }

// Encode renders m as a single frame.
func Encode(m Message) []byte {
	fs := m.fields()
	parts := make([]string, 0, len(fs)+1)
	parts = append(parts, strconv.Itoa(int(m.Opcode())))
	for _, f := range fs {
		if f.i != nil {
			parts = append(parts, strconv.Itoa(*f.i))
		} else {
			parts = append(parts, *f.s)
		}
	}
	return []byte(strings.Join(parts, Delimiter))
}

// Decode fills m from frame. The leading opcode is skipped without being
// checked; dispatch is expected to have used PeekOpcode already. Errors wrap
// common.ErrBytesInvalid, common.ErrArgCountMismatch or
// common.ErrArgTypeMismatch.
func Decode(frame []byte, m Message) error {
	if !utf8.Valid(frame) {
		return common.ErrBytesInvalid
	}

	args := strings.Split(string(frame), Delimiter)[1:]
	fs := m.fields()
	if len(args) != len(fs) {
		return fmt.Errorf("%w: %s wants %d, got %d", common.ErrArgCountMismatch, m.Opcode(), len(fs), len(args))
	}

	for idx, f := range fs {
		if f.s != nil {
			*f.s = args[idx]
			continue
		}
		v, err := strconv.Atoi(args[idx])
		if err != nil {
			return fmt.Errorf("%w: field %s: %q", common.ErrArgTypeMismatch, f.name, args[idx])
		}
		*f.i = v
	}

	return nil
}

// ErrUnknownOpcode is returned by PeekOpcode for opcodes outside the
// supported set.
var ErrUnknownOpcode = errors.New("unknown opcode")

// PeekOpcode parses the leading opcode of frame. A frame that is not valid
// UTF-8 anywhere is rejected with common.ErrBytesInvalid before the opcode
// is read, so the socket handler drops it without a reply.
func PeekOpcode(frame []byte) (Opcode, error) {
	if !utf8.Valid(frame) {
		return 0, common.ErrBytesInvalid
	}

	head, _, _ := bytes.Cut(frame, []byte(Delimiter))

	n, err := strconv.Atoi(string(head))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", common.ErrArgTypeMismatch, head)
	}

	op := Opcode(n)
	if !op.Valid() {
		return op, fmt.Errorf("%w: %d", ErrUnknownOpcode, n)
	}
	return op, nil
}
