// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: diagnostic.proto

package pb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	DiagnosticService_HealthCheck_FullMethodName    = "/irmsia.diagnostic.v1.DiagnosticService/HealthCheck"
	DiagnosticService_Diagnose_FullMethodName       = "/irmsia.diagnostic.v1.DiagnosticService/Diagnose"
	DiagnosticService_DiagnoseStream_FullMethodName = "/irmsia.diagnostic.v1.DiagnosticService/DiagnoseStream"
	DiagnosticService_DiagnoseBatch_FullMethodName  = "/irmsia.diagnostic.v1.DiagnosticService/DiagnoseBatch"
)

// DiagnosticServiceClient is the client API for DiagnosticService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// DiagnosticService runs medical image anomaly analysis on a remote
// compute node.
type DiagnosticServiceClient interface {
	// HealthCheck reports service liveness and model state.
	HealthCheck(ctx context.Context, in *HealthCheckRequest, opts ...grpc.CallOption) (*HealthStatus, error)
	// Diagnose analyses a single image payload.
	Diagnose(ctx context.Context, in *DicomRequest, opts ...grpc.CallOption) (*DiagnosticResponse, error)
	// DiagnoseStream uploads a large payload in chunks. The first message
	// must be metadata; the server interleaves PROCESSING progress updates
	// and finishes with exactly one COMPLETED or ERROR response.
	DiagnoseStream(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[UploadChunk, DiagnosticResponse], error)
	// DiagnoseBatch analyses a stream of requests, one response per request,
	// correlated by request_id. Response order is not guaranteed.
	DiagnoseBatch(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[DicomRequest, DiagnosticResponse], error)
}

type diagnosticServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDiagnosticServiceClient(cc grpc.ClientConnInterface) DiagnosticServiceClient {
	return &diagnosticServiceClient{cc}
}

func (c *diagnosticServiceClient) HealthCheck(ctx context.Context, in *HealthCheckRequest, opts ...grpc.CallOption) (*HealthStatus, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(HealthStatus)
	err := c.cc.Invoke(ctx, DiagnosticService_HealthCheck_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *diagnosticServiceClient) Diagnose(ctx context.Context, in *DicomRequest, opts ...grpc.CallOption) (*DiagnosticResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DiagnosticResponse)
	err := c.cc.Invoke(ctx, DiagnosticService_Diagnose_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *diagnosticServiceClient) DiagnoseStream(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[UploadChunk, DiagnosticResponse], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &DiagnosticService_ServiceDesc.Streams[0], DiagnosticService_DiagnoseStream_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[UploadChunk, DiagnosticResponse]{ClientStream: stream}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type DiagnosticService_DiagnoseStreamClient = grpc.BidiStreamingClient[UploadChunk, DiagnosticResponse]

func (c *diagnosticServiceClient) DiagnoseBatch(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[DicomRequest, DiagnosticResponse], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &DiagnosticService_ServiceDesc.Streams[1], DiagnosticService_DiagnoseBatch_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[DicomRequest, DiagnosticResponse]{ClientStream: stream}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type DiagnosticService_DiagnoseBatchClient = grpc.BidiStreamingClient[DicomRequest, DiagnosticResponse]

// DiagnosticServiceServer is the server API for DiagnosticService service.
// All implementations must embed UnimplementedDiagnosticServiceServer
// for forward compatibility.
//
// DiagnosticService runs medical image anomaly analysis on a remote
// compute node.
type DiagnosticServiceServer interface {
	// HealthCheck reports service liveness and model state.
	HealthCheck(context.Context, *HealthCheckRequest) (*HealthStatus, error)
	// Diagnose analyses a single image payload.
	Diagnose(context.Context, *DicomRequest) (*DiagnosticResponse, error)
	// DiagnoseStream uploads a large payload in chunks. The first message
	// must be metadata; the server interleaves PROCESSING progress updates
	// and finishes with exactly one COMPLETED or ERROR response.
	DiagnoseStream(grpc.BidiStreamingServer[UploadChunk, DiagnosticResponse]) error
	// DiagnoseBatch analyses a stream of requests, one response per request,
	// correlated by request_id. Response order is not guaranteed.
	DiagnoseBatch(grpc.BidiStreamingServer[DicomRequest, DiagnosticResponse]) error
	mustEmbedUnimplementedDiagnosticServiceServer()
}

// UnimplementedDiagnosticServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDiagnosticServiceServer struct{}

func (UnimplementedDiagnosticServiceServer) HealthCheck(context.Context, *HealthCheckRequest) (*HealthStatus, error) {
	return nil, status.Error(codes.Unimplemented, "method HealthCheck not implemented")
}
func (UnimplementedDiagnosticServiceServer) Diagnose(context.Context, *DicomRequest) (*DiagnosticResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Diagnose not implemented")
}
func (UnimplementedDiagnosticServiceServer) DiagnoseStream(grpc.BidiStreamingServer[UploadChunk, DiagnosticResponse]) error {
	return status.Error(codes.Unimplemented, "method DiagnoseStream not implemented")
}
func (UnimplementedDiagnosticServiceServer) DiagnoseBatch(grpc.BidiStreamingServer[DicomRequest, DiagnosticResponse]) error {
	return status.Error(codes.Unimplemented, "method DiagnoseBatch not implemented")
}
func (UnimplementedDiagnosticServiceServer) mustEmbedUnimplementedDiagnosticServiceServer() {}
func (UnimplementedDiagnosticServiceServer) testEmbeddedByValue()                           {}

// UnsafeDiagnosticServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DiagnosticServiceServer will
// result in compilation errors.
type UnsafeDiagnosticServiceServer interface {
	mustEmbedUnimplementedDiagnosticServiceServer()
}

func RegisterDiagnosticServiceServer(s grpc.ServiceRegistrar, srv DiagnosticServiceServer) {
	// If the following call panics, it indicates UnimplementedDiagnosticServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DiagnosticService_ServiceDesc, srv)
}

func _DiagnosticService_HealthCheck_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HealthCheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiagnosticServiceServer).HealthCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DiagnosticService_HealthCheck_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DiagnosticServiceServer).HealthCheck(ctx, req.(*HealthCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DiagnosticService_Diagnose_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DicomRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiagnosticServiceServer).Diagnose(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DiagnosticService_Diagnose_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DiagnosticServiceServer).Diagnose(ctx, req.(*DicomRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DiagnosticService_DiagnoseStream_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(DiagnosticServiceServer).DiagnoseStream(&grpc.GenericServerStream[UploadChunk, DiagnosticResponse]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type DiagnosticService_DiagnoseStreamServer = grpc.BidiStreamingServer[UploadChunk, DiagnosticResponse]

func _DiagnosticService_DiagnoseBatch_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(DiagnosticServiceServer).DiagnoseBatch(&grpc.GenericServerStream[DicomRequest, DiagnosticResponse]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type DiagnosticService_DiagnoseBatchServer = grpc.BidiStreamingServer[DicomRequest, DiagnosticResponse]

// DiagnosticService_ServiceDesc is the grpc.ServiceDesc for DiagnosticService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DiagnosticService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "irmsia.diagnostic.v1.DiagnosticService",
	HandlerType: (*DiagnosticServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "HealthCheck",
			Handler:    _DiagnosticService_HealthCheck_Handler,
		},
		{
			MethodName: "Diagnose",
			Handler:    _DiagnosticService_Diagnose_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "DiagnoseStream",
			Handler:       _DiagnosticService_DiagnoseStream_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
		{
			StreamName:    "DiagnoseBatch",
			Handler:       _DiagnosticService_DiagnoseBatch_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "diagnostic.proto",
}
