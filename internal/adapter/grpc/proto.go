package grpc

// proto.go defines the gRPC server interface for refiscope.v1.RefiAdvisorService.
// This file serves as a stand-in for buf-generated code; the service is
// registered with the JSON codec from json_codec.go, so the wire messages are
// the plain structs in messages.go.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RefiAdvisorServiceServer is the server API for RefiAdvisorService.
type RefiAdvisorServiceServer interface {
	AnalyzeOffer(context.Context, *AnalyzeOfferRequest) (*AnalyzeOfferResponse, error)
	CompareOffers(context.Context, *CompareOffersRequest) (*CompareOffersResponse, error)
	GetMarketTiming(context.Context, *GetMarketTimingRequest) (*GetMarketTimingResponse, error)
	RunAnalysis(context.Context, *RunAnalysisRequest) (*RunAnalysisResponse, error)
	GetAmortizationSchedule(context.Context, *GetAmortizationScheduleRequest) (*GetAmortizationScheduleResponse, error)
	mustEmbedUnimplementedRefiAdvisorServiceServer()
}

// UnimplementedRefiAdvisorServiceServer provides forward-compatible default
// implementations.
type UnimplementedRefiAdvisorServiceServer struct{}

func (UnimplementedRefiAdvisorServiceServer) AnalyzeOffer(context.Context, *AnalyzeOfferRequest) (*AnalyzeOfferResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnalyzeOffer not implemented")
}
func (UnimplementedRefiAdvisorServiceServer) CompareOffers(context.Context, *CompareOffersRequest) (*CompareOffersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompareOffers not implemented")
}
func (UnimplementedRefiAdvisorServiceServer) GetMarketTiming(context.Context, *GetMarketTimingRequest) (*GetMarketTimingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMarketTiming not implemented")
}
func (UnimplementedRefiAdvisorServiceServer) RunAnalysis(context.Context, *RunAnalysisRequest) (*RunAnalysisResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RunAnalysis not implemented")
}
func (UnimplementedRefiAdvisorServiceServer) GetAmortizationSchedule(context.Context, *GetAmortizationScheduleRequest) (*GetAmortizationScheduleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAmortizationSchedule not implemented")
}
func (UnimplementedRefiAdvisorServiceServer) mustEmbedUnimplementedRefiAdvisorServiceServer() {}

// RegisterRefiAdvisorServiceServer registers the RefiAdvisorServiceServer
// with the gRPC server.
func RegisterRefiAdvisorServiceServer(s *grpclib.Server, srv RefiAdvisorServiceServer) {
	s.RegisterService(&_RefiAdvisorService_serviceDesc, srv)
}

var _RefiAdvisorService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "refiscope.v1.RefiAdvisorService",
	HandlerType: (*RefiAdvisorServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "AnalyzeOffer", Handler: _RefiAdvisorService_AnalyzeOffer_Handler},
		{MethodName: "CompareOffers", Handler: _RefiAdvisorService_CompareOffers_Handler},
		{MethodName: "GetMarketTiming", Handler: _RefiAdvisorService_GetMarketTiming_Handler},
		{MethodName: "RunAnalysis", Handler: _RefiAdvisorService_RunAnalysis_Handler},
		{MethodName: "GetAmortizationSchedule", Handler: _RefiAdvisorService_GetAmortizationSchedule_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _RefiAdvisorService_AnalyzeOffer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeOfferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RefiAdvisorServiceServer).AnalyzeOffer(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/refiscope.v1.RefiAdvisorService/AnalyzeOffer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RefiAdvisorServiceServer).AnalyzeOffer(ctx, req.(*AnalyzeOfferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RefiAdvisorService_CompareOffers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompareOffersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RefiAdvisorServiceServer).CompareOffers(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/refiscope.v1.RefiAdvisorService/CompareOffers",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RefiAdvisorServiceServer).CompareOffers(ctx, req.(*CompareOffersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RefiAdvisorService_GetMarketTiming_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetMarketTimingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RefiAdvisorServiceServer).GetMarketTiming(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/refiscope.v1.RefiAdvisorService/GetMarketTiming",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RefiAdvisorServiceServer).GetMarketTiming(ctx, req.(*GetMarketTimingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RefiAdvisorService_RunAnalysis_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunAnalysisRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RefiAdvisorServiceServer).RunAnalysis(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/refiscope.v1.RefiAdvisorService/RunAnalysis",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RefiAdvisorServiceServer).RunAnalysis(ctx, req.(*RunAnalysisRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RefiAdvisorService_GetAmortizationSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAmortizationScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RefiAdvisorServiceServer).GetAmortizationSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/refiscope.v1.RefiAdvisorService/GetAmortizationSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RefiAdvisorServiceServer).GetAmortizationSchedule(ctx, req.(*GetAmortizationScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}
