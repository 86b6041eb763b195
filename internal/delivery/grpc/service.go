package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ServiceName    = "pix.brcode.v1.BRCodeService"
	GenerateMethod = "/" + ServiceName + "/Generate"
)

// BRCodeServiceServer takes the JSON field names of the HTTP API as a
// google.protobuf.Struct and answers with the payload as a StringValue.
type BRCodeServiceServer interface {
	Generate(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BRCodeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Generate",
			Handler:    generateHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pix/brcode/v1/brcode.proto",
}

func RegisterBRCodeServiceServer(s grpc.ServiceRegistrar, srv BRCodeServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func generateHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BRCodeServiceServer).Generate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GenerateMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BRCodeServiceServer).Generate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) Generate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, GenerateMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
