package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func TestMarshal_Layout(t *testing.T) {
	b, err := proto.Marshal(&MessageReply{Version: 1, ErrorCode: "InvalidToken"})
	require.NoError(t, err)

	want := []byte{0x08, 0x01, 0x12, byte(len("InvalidToken"))}
	want = append(want, "InvalidToken"...)
	assert.Equal(t, want, b)
}

func TestMarshal_OmitsZeroValues(t *testing.T) {
	b, err := proto.Marshal(&RefreshReply{})
	require.NoError(t, err)
	assert.Empty(t, b)

	b, err = proto.Marshal(&RefreshReply{Version: 1})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x08, 0x01}, b)
}

func TestUnmarshal_RoundTrip(t *testing.T) {
	in := &ListAccountRequest{
		Version:          1,
		AuthToken:        "tok",
		Username:         "aakamishra",
		NumberOfAccounts: -3,
		Regex:            ".*",
	}

	b, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &ListAccountRequest{Regex: "stale"}
	require.NoError(t, proto.Unmarshal(b, out))
	assert.True(t, proto.Equal(in, out), "got %v", out)
}

func TestUnmarshal_KeepsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, 1)
	b = protowire.AppendTag(b, 42, protowire.BytesType)
	b = protowire.AppendString(b, "future")
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, "hi")

	var m RefreshReply
	require.NoError(t, proto.Unmarshal(b, &m))
	assert.Equal(t, int32(1), m.GetVersion())
	assert.Equal(t, "hi", m.GetMessage())
	assert.NotEmpty(t, m.ProtoReflect().GetUnknown())
}

func TestUnmarshal_Errors(t *testing.T) {
	t.Run("truncated", func(t *testing.T) {
		b, err := proto.Marshal(&LoginRequest{Username: "someone"})
		require.NoError(t, err)
		assert.Error(t, proto.Unmarshal(b[:len(b)-2], &LoginRequest{}))
	})

	t.Run("invalid utf8", func(t *testing.T) {
		var b []byte
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, []byte{0xff, 0xfe})
		assert.Error(t, proto.Unmarshal(b, &LoginRequest{}))
	})
}

func TestDescriptor_MatchesService(t *testing.T) {
	fd := File_chat_proto
	assert.Equal(t, protoreflect.FullName("chat"), fd.Package())
	assert.Equal(t, 12, fd.Messages().Len())

	svc := fd.Services().ByName("ChatServer")
	require.NotNil(t, svc)
	assert.Equal(t, ChatServer_ServiceDesc.ServiceName, string(svc.FullName()))

	stream := svc.Methods().ByName("DeliverMessages")
	require.NotNil(t, stream)
	assert.True(t, stream.IsStreamingServer())
	assert.Equal(t, protoreflect.FullName("chat.RefreshReply"), stream.Output().FullName())

	var unary []string
	for _, m := range ChatServer_ServiceDesc.Methods {
		unary = append(unary, m.MethodName)
	}
	assert.ElementsMatch(t, []string{"SendMessage", "Login", "CreateAccount", "ListAccounts", "DeleteAccount"}, unary)

	f := (&AccountCreateReply{}).ProtoReflect().Descriptor().Fields().ByName("auth_token")
	require.NotNil(t, f)
	assert.Equal(t, "authToken", f.JSONName())
	assert.Equal(t, protowire.Number(3), f.Number())
}

func TestRegister_RequiresEmbeddedUnimplemented(t *testing.T) {
	srv := grpc.NewServer()
	defer srv.Stop()

	assert.NotPanics(t, func() { RegisterChatServerServer(srv, UnimplementedChatServerServer{}) })
	assert.Contains(t, srv.GetServiceInfo(), "chat.ChatServer")
}

func TestGetters_NilSafe(t *testing.T) {
	var m *RefreshRequest
	assert.Zero(t, m.GetVersion())
	assert.Empty(t, m.GetUsername())
}
