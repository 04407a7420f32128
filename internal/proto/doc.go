// Package proto holds the gRPC schema of the chat service. The *.pb.go
// files are generated from chat.proto; do not edit them by hand.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative chat.proto
