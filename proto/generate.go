// Package proto holds the scoring service wire definitions and their
// generated bindings.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative scoring.proto
