package wire

import (
	"testing"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_FrameLayout(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want string
	}{
		{
			name: "create account request",
			msg:  &CreateAccountRequest{Version: 1, Username: "rajat", Password: "raj", Fullname: "Rajat Mittal"},
			want: "0||1||rajat||raj||Rajat Mittal",
		},
		{
			name: "login reply",
			msg:  &LoginReply{Version: 1, AuthToken: "abc", Fullname: "Jim Waldo"},
			want: "1||1||||abc||Jim Waldo",
		},
		{
			name: "send message request",
			msg:  &SendMessageRequest{Version: 1, AuthToken: "t", Username: "a", RecipientUsername: "b", Message: "hi!"},
			want: "2||1||t||a||b||hi!",
		},
		{
			name: "list accounts request",
			msg:  &ListAccountsRequest{Version: 1, AuthToken: "t", Username: "a", NumberOfAccounts: 10, Regex: ".*"},
			want: "3||1||t||a||10||.*",
		},
		{
			name: "delete reply with error",
			msg:  &DeleteAccountReply{Version: 1, ErrorCode: common.CodeInvalidToken},
			want: "4||1||InvalidToken",
		},
		{
			name: "refresh reply puts message before error code",
			msg:  &RefreshReply{Version: 1, Message: "[a]: hi!"},
			want: "5||1||[a]: hi!||",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(Encode(tt.msg)))
		})
	}
}

func TestDecode_Success(t *testing.T) {
	var req ListAccountsRequest
	require.NoError(t, Decode([]byte("3||1||tok||alice||25||^a"), &req))

	assert.Equal(t, ListAccountsRequest{
		Version:          1,
		AuthToken:        "tok",
		Username:         "alice",
		NumberOfAccounts: 25,
		Regex:            "^a",
	}, req)
}

func TestDecode_EmptyFieldsSurvive(t *testing.T) {
	frame := Encode(&CreateAccountReply{Version: 1, ErrorCode: "", AuthToken: "", Fullname: ""})

	var reply CreateAccountReply
	require.NoError(t, Decode(frame, &reply))
	assert.Equal(t, CreateAccountReply{Version: 1}, reply)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		frame []byte
		msg   Message
		want  error
	}{
		{name: "invalid utf-8", frame: []byte{'0', '|', '|', 0xff, 0xfe}, msg: &LoginRequest{}, want: common.ErrBytesInvalid},
		{name: "garbage buffer", frame: []byte("invalid-buffer"), msg: &CreateAccountRequest{}, want: common.ErrArgCountMismatch},
		{name: "too many fields", frame: []byte("1||1||u||p||extra"), msg: &LoginRequest{}, want: common.ErrArgCountMismatch},
		{name: "delimiter inside payload", frame: Encode(&SendMessageRequest{Version: 1, Message: "a||b"}), msg: &SendMessageRequest{}, want: common.ErrArgCountMismatch},
		{name: "non numeric version", frame: []byte("1||one||u||p"), msg: &LoginRequest{}, want: common.ErrArgTypeMismatch},
		{name: "non numeric list size", frame: []byte("3||1||t||u||ten||.*"), msg: &ListAccountsRequest{}, want: common.ErrArgTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Decode(tt.frame, tt.msg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPeekOpcode(t *testing.T) {
	for op := OpCreateAccount; op <= OpDeliverMessages; op++ {
		got, err := PeekOpcode(Encode(NewRequest(op)))
		require.NoError(t, err, op.String())
		assert.Equal(t, op, got)
	}

	_, err := PeekOpcode([]byte("9||1"))
	assert.ErrorIs(t, err, ErrUnknownOpcode)

	_, err = PeekOpcode([]byte("-1||1"))
	assert.ErrorIs(t, err, ErrUnknownOpcode)

	_, err = PeekOpcode([]byte(""))
	assert.ErrorIs(t, err, common.ErrArgTypeMismatch)

	_, err = PeekOpcode([]byte{0xc3, 0x28})
	assert.ErrorIs(t, err, common.ErrBytesInvalid)

	_, err = PeekOpcode([]byte("3||1||tok||a||0||\xff"))
	assert.ErrorIs(t, err, common.ErrBytesInvalid)
}

func TestErrorReply_MatchesOpcode(t *testing.T) {
	for op := OpCreateAccount; op <= OpDeliverMessages; op++ {
		reply := ErrorReply(op, 1, common.CodeArgCountMismatch)
		require.NotNil(t, reply)
		assert.Equal(t, op, reply.Opcode())
		assert.Equal(t, op, NewReply(op).Opcode())
		assert.Contains(t, string(Encode(reply)), common.CodeArgCountMismatch)
	}

	assert.Nil(t, ErrorReply(Opcode(42), 1, "x"))
	assert.Nil(t, NewRequest(Opcode(42)))
	assert.Equal(t, "Opcode(42)", Opcode(42).String())
}
