package sample

//go:generate go run ../../cmd/protoclass -proto_path testdata -out . sample.proto
