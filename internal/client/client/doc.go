// Package client contains client-side building blocks for GophChat.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     CreateAccount/Login, SendMessage, ListAccounts, DeleteAccount and
//     Listen for incoming messages.
//  2. A gRPC implementation (see GRPCClient) that consumes the server
//     streaming DeliverMessages call.
//  3. A raw-socket implementation (see SocketClient) speaking the "||"
//     framed protocol over one persistent TCP connection and polling for
//     new messages.
//
// # Error Handling
//
// Server reply codes are mapped back to the sentinel errors of
// internal/common, so callers match them with errors.Is, e.g.
// errors.Is(err, common.ErrInvalidRecipient). Transport failures surface
// as ErrUnavailable; calls made before a session exists fail with
// ErrNotLoggedIn.
//
// Concurrency & Contexts
//
// Both implementations are safe for concurrent use. All operations accept
// context.Context and honor cancellation.
package client
