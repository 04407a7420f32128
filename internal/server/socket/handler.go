package socket

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/logging"
	"github.com/dmitrijs2005/gophchat/internal/server/chat"
	"github.com/dmitrijs2005/gophchat/internal/wire"
)

type operation func(ctx context.Context, req wire.Message) wire.Message

// Handler turns one request frame into one reply frame.
type Handler struct {
	chat   chat.Operations
	logger logging.Logger
	ops    map[wire.Opcode]operation
}

func NewHandler(cs chat.Operations, l logging.Logger) *Handler {
	h := &Handler{chat: cs, logger: l}
	h.ops = map[wire.Opcode]operation{
		wire.OpCreateAccount:   h.createAccount,
		wire.OpLogin:           h.login,
		wire.OpSendMessage:     h.sendMessage,
		wire.OpListAccounts:    h.listAccounts,
		wire.OpDeleteAccount:   h.deleteAccount,
		wire.OpDeliverMessages: h.deliverMessages,
	}
	return h
}

// Handle decodes frame, runs the operation and encodes the reply. ok is
// false when the frame is not valid UTF-8 or does not start with a
// supported opcode; the caller closes the connection without replying in
// that case.
func (h *Handler) Handle(ctx context.Context, frame []byte) (reply []byte, ok bool) {
	op, err := wire.PeekOpcode(frame)
	if err != nil {
		return nil, false
	}
	run, found := h.ops[op]
	if !found {
		return nil, false
	}

	req := wire.NewRequest(op)
	if err := wire.Decode(frame, req); err != nil {
		h.logger.Debug(ctx, "decode failed", "opcode", op.String(), "error", err)
		return wire.Encode(wire.ErrorReply(op, common.ProtocolVersion, common.ErrorCode(err))), true
	}

	return wire.Encode(run(ctx, req)), true
}

// code maps a service error to a reply code, logging faults that fall
// outside the error taxonomy.
func (h *Handler) code(ctx context.Context, op string, err error) string {
	code := common.ErrorCode(err)
	if code == common.CodeInternal {
		h.logger.Error(ctx, "request failed", "op", op, "error", err)
	}
	return code
}

func (h *Handler) createAccount(ctx context.Context, m wire.Message) wire.Message {
	req := m.(*wire.CreateAccountRequest)
	sess, err := h.chat.CreateAccount(ctx, req.Username, req.Password, req.Fullname)
	if err != nil {
		return &wire.CreateAccountReply{Version: common.ProtocolVersion, ErrorCode: h.code(ctx, "CreateAccount", err)}
	}
	h.logger.Info(ctx, "Account created", "username", req.Username)
	return &wire.CreateAccountReply{Version: common.ProtocolVersion, AuthToken: sess.Token, Fullname: sess.FullName}
}

func (h *Handler) login(ctx context.Context, m wire.Message) wire.Message {
	req := m.(*wire.LoginRequest)
	sess, err := h.chat.Login(ctx, req.Username, req.Password)
	if err != nil {
		return &wire.LoginReply{Version: common.ProtocolVersion, ErrorCode: h.code(ctx, "Login", err)}
	}
	return &wire.LoginReply{Version: common.ProtocolVersion, AuthToken: sess.Token, Fullname: sess.FullName}
}

func (h *Handler) sendMessage(ctx context.Context, m wire.Message) wire.Message {
	req := m.(*wire.SendMessageRequest)
	err := h.chat.SendMessage(ctx, req.Username, req.AuthToken, req.RecipientUsername, req.Message)
	return &wire.SendMessageReply{Version: common.ProtocolVersion, ErrorCode: h.code(ctx, "SendMessage", err)}
}

func (h *Handler) listAccounts(ctx context.Context, m wire.Message) wire.Message {
	req := m.(*wire.ListAccountsRequest)
	names, err := h.chat.ListAccounts(ctx, req.Username, req.AuthToken, req.NumberOfAccounts, req.Regex)
	if err != nil {
		return &wire.ListAccountsReply{Version: common.ProtocolVersion, ErrorCode: h.code(ctx, "ListAccounts", err)}
	}
	return &wire.ListAccountsReply{Version: common.ProtocolVersion, AccountNames: strings.Join(names, common.AccountNamesSeparator)}
}

func (h *Handler) deleteAccount(ctx context.Context, m wire.Message) wire.Message {
	req := m.(*wire.DeleteAccountRequest)
	err := h.chat.DeleteAccount(ctx, req.Username, req.AuthToken)
	if err == nil {
		h.logger.Info(ctx, "Account deleted", "username", req.Username)
	}
	return &wire.DeleteAccountReply{Version: common.ProtocolVersion, ErrorCode: h.code(ctx, "DeleteAccount", err)}
}

func (h *Handler) deliverMessages(ctx context.Context, m wire.Message) wire.Message {
	req := m.(*wire.RefreshRequest)
	msgs, err := h.chat.DeliverMessages(ctx, req.Username, req.AuthToken)
	if err != nil {
		return &wire.RefreshReply{Version: common.ProtocolVersion, ErrorCode: h.code(ctx, "DeliverMessages", err)}
	}
	return &wire.RefreshReply{Version: common.ProtocolVersion, Message: strings.Join(msgs, common.MessagesSeparator)}
}
