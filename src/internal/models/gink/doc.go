// Package gink holds the protobuf message types exchanged between gink peers
// together with small helpers for building and rendering them.
//
// The *.pb.go files are generated from the schema sources under proto/.
package gink

//go:generate protoc -I ../../../../proto --go_out=. --go_opt=paths=source_relative muid.proto change_set.proto
