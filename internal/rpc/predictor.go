// Package rpc exposes the predictor over gRPC. Messages are
// google.protobuf.Struct so no generated stubs are needed:
//
//	request:  {"profile": "A", "strategy": "time_seeded"}
//	response: {"profile": "A", "strategy": "time_seeded", "main": [...],
//	           "secondary": [...], "seed": 1234, "formatted": "..."}
package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/xtding233/lotto-predictor/internal/lotto"
	"github.com/xtding233/lotto-predictor/internal/predict"
)

const (
	ServiceName   = "lotto.v1.Predictor"
	PredictMethod = "/" + ServiceName + "/Predict"
)

// PredictorServer is the server API for the Predictor service.
type PredictorServer interface {
	Predict(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func predictHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PredictorServer).Predict(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PredictMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PredictorServer).Predict(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// PredictorServiceDesc describes lotto.v1.Predictor for grpc.Server.RegisterService.
var PredictorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PredictorServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Predict", Handler: predictHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lotto/v1/predictor",
}

// Predictor implements PredictorServer over a predict.Service.
type Predictor struct {
	svc *predict.Service
}

func NewPredictor(svc *predict.Service) *Predictor {
	return &Predictor{svc: svc}
}

func (p *Predictor) Predict(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()
	profile := fields["profile"].GetStringValue()
	if profile == "" {
		return nil, status.Error(codes.InvalidArgument, "missing field profile")
	}
	res, err := p.svc.Predict(profile, fields["strategy"].GetStringValue())
	if err != nil {
		code := codes.Internal
		if predict.IsClientError(err) {
			code = codes.InvalidArgument
		}
		return nil, status.Errorf(code, "prediction failed: %v", err)
	}
	out, err := encodeResult(res)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode result: %v", err)
	}
	return out, nil
}

// NewServer returns a gRPC server carrying the Predictor and the standard
// health service, both reported as SERVING.
func NewServer(svc *predict.Service, opts ...grpc.ServerOption) *grpc.Server {
	gs := grpc.NewServer(opts...)
	gs.RegisterService(&PredictorServiceDesc, NewPredictor(svc))

	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	return gs
}

func encodeResult(r lotto.DrawResult) (*structpb.Struct, error) {
	m := map[string]any{
		"profile":   r.Profile,
		"strategy":  r.Strategy.String(),
		"main":      toList(r.Main),
		"secondary": toList(r.Secondary),
		"formatted": r.Format(),
	}
	if r.Seed != nil {
		m["seed"] = float64(*r.Seed)
	}
	return structpb.NewStruct(m)
}

func toList(nums []int) []any {
	out := make([]any, len(nums))
	for i, n := range nums {
		out[i] = n
	}
	return out
}

// Client calls a remote Predictor.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Predict requests one draw and decodes it back into a DrawResult.
func (c *Client) Predict(ctx context.Context, profile, strategy string) (lotto.DrawResult, error) {
	req, err := structpb.NewStruct(map[string]any{"profile": profile, "strategy": strategy})
	if err != nil {
		return lotto.DrawResult{}, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, PredictMethod, req, out); err != nil {
		return lotto.DrawResult{}, err
	}
	return decodeResult(out)
}

func decodeResult(s *structpb.Struct) (lotto.DrawResult, error) {
	fields := s.GetFields()
	st, err := lotto.ParseStrategy(fields["strategy"].GetStringValue())
	if err != nil {
		return lotto.DrawResult{}, fmt.Errorf("decode result: %w", err)
	}
	r := lotto.DrawResult{
		Profile:   fields["profile"].GetStringValue(),
		Strategy:  st,
		Main:      fromList(fields["main"].GetListValue()),
		Secondary: fromList(fields["secondary"].GetListValue()),
	}
	if v, ok := fields["seed"]; ok {
		seed := uint64(v.GetNumberValue())
		r.Seed = &seed
	}
	return r, nil
}

func fromList(l *structpb.ListValue) []int {
	out := make([]int, 0, len(l.GetValues()))
	for _, v := range l.GetValues() {
		out = append(out, int(v.GetNumberValue()))
	}
	return out
}
