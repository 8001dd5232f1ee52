package sequence

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	// ServiceName is the fully qualified gRPC service name.
	ServiceName = "sequence.v1.SequenceService"
	// ReverseComplementFullMethod is the full method path of ReverseComplement.
	ReverseComplementFullMethod = "/" + ServiceName + "/ReverseComplement"
)

// SequenceServiceServer is the server API for sequence.v1.SequenceService.
//
// Requests and responses use the well-known StringValue wrapper: the request
// carries the raw sequence, the response its reverse complement.
type SequenceServiceServer interface {
	ReverseComplement(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
}

// ServiceDesc describes sequence.v1.SequenceService for grpc.ServiceRegistrar.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SequenceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ReverseComplement",
			Handler:    reverseComplementHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sequence/v1/sequence.proto",
}

// RegisterSequenceServiceServer registers srv on registrar.
func RegisterSequenceServiceServer(registrar grpc.ServiceRegistrar, srv SequenceServiceServer) {
	registrar.RegisterService(&ServiceDesc, srv)
}

func reverseComplementHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SequenceServiceServer).ReverseComplement(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReverseComplementFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SequenceServiceServer).ReverseComplement(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}
