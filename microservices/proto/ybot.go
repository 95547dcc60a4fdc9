// Package ybot holds the gRPC contract of the bot service. Messages are
// google.protobuf.Struct values, see convert.go for their fields.
package ybot

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName        = "ybot.BotService"
	ChooseFullMethod   = "/ybot.BotService/Choose"
	chooseMethodName   = "Choose"
	serviceMetadataKey = "ybot.proto"
)

type BotServiceClient interface {
	Choose(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type botServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBotServiceClient(cc grpc.ClientConnInterface) BotServiceClient {
	return &botServiceClient{cc: cc}
}

func (c *botServiceClient) Choose(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ChooseFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type BotServiceServer interface {
	Choose(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

func RegisterBotServiceServer(s grpc.ServiceRegistrar, srv BotServiceServer) {
	s.RegisterService(&BotServiceDesc, srv)
}

func chooseHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BotServiceServer).Choose(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChooseFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BotServiceServer).Choose(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var BotServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BotServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: chooseMethodName,
			Handler:    chooseHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: serviceMetadataKey,
}
