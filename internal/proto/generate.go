// Package proto holds the gRPC API definition of the keywarden auth server
// and its generated bindings.
package proto

//go:generate protoc --proto_path=../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative internal/proto/auth.proto
