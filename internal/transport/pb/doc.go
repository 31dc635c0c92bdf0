// Package pb holds the DiagnosticService protobuf schema. The generated
// code is not committed; run go generate with protoc, protoc-gen-go, and
// protoc-gen-go-grpc on the path.
package pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative diagnostic.proto
