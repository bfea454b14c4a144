package node

import (
	"context"
	"encoding/json"

	"github.com/lioia/birank/pkg/rank"
	"github.com/lioia/birank/pkg/utils"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Jobs and results travel as google.protobuf.Struct holding their JSON form.
const rankMethod = "/birank.Ranker/Rank"

type RankerServer interface {
	Rank(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

var rankerServiceDesc = grpc.ServiceDesc{
	ServiceName: "birank.Ranker",
	HandlerType: (*RankerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Rank",
			Handler:    rankHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "birank.proto",
}

func rankHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RankerServer).Rank(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: rankMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RankerServer).Rank(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func RegisterRankerServer(s grpc.ServiceRegistrar, srv RankerServer) {
	s.RegisterService(&rankerServiceDesc, srv)
}

type RankServerImpl struct {
	Node *Node
}

func (s *RankServerImpl) Rank(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	job, err := jobFromStruct(in, s.Node.Options)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "could not decode job: %v", err)
	}
	utils.ServerLog("rpc %s job with %d edges", job.Kind, len(job.Edges))
	res, err := Run(job)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return toStruct(res)
}

// CallRank runs job on the node behind conn.
func CallRank(ctx context.Context, conn grpc.ClientConnInterface, job Job) (Result, error) {
	in, err := toStruct(job)
	if err != nil {
		return Result{}, err
	}
	out := new(structpb.Struct)
	if err := conn.Invoke(ctx, rankMethod, in, out); err != nil {
		return Result{}, err
	}
	var res Result
	err = fromStruct(out, &res)
	return res, err
}

func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}

func fromStruct(s *structpb.Struct, v any) error {
	data, err := json.Marshal(s.AsMap())
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func jobFromStruct(s *structpb.Struct, defaults rank.Options) (Job, error) {
	data, err := json.Marshal(s.AsMap())
	if err != nil {
		return Job{}, err
	}
	return decodeJob(data, defaults)
}
