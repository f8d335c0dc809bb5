package grpc

// proto.go defines the gRPC server interface derived from
// procurement/risk/v1/risk.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/procurelens/supplier-risk-service/api/gen/go/procurement/risk/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SupplierRiskServiceServer is the server API for SupplierRiskService.
type SupplierRiskServiceServer interface {
	AssessSupplierRisk(context.Context, *AssessSupplierRiskRequest) (*AssessSupplierRiskResponse, error)
	GetAssessment(context.Context, *GetAssessmentRequest) (*GetAssessmentResponse, error)
	mustEmbedUnimplementedSupplierRiskServiceServer()
}

// UnimplementedSupplierRiskServiceServer provides forward-compatible default implementations.
type UnimplementedSupplierRiskServiceServer struct{}

func (UnimplementedSupplierRiskServiceServer) AssessSupplierRisk(context.Context, *AssessSupplierRiskRequest) (*AssessSupplierRiskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AssessSupplierRisk not implemented")
}
func (UnimplementedSupplierRiskServiceServer) GetAssessment(context.Context, *GetAssessmentRequest) (*GetAssessmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAssessment not implemented")
}
func (UnimplementedSupplierRiskServiceServer) mustEmbedUnimplementedSupplierRiskServiceServer() {}

// RegisterSupplierRiskServiceServer registers the SupplierRiskServiceServer with the gRPC server.
func RegisterSupplierRiskServiceServer(s *grpclib.Server, srv SupplierRiskServiceServer) {
	s.RegisterService(&_SupplierRiskService_serviceDesc, srv)
}

var _SupplierRiskService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "procurement.risk.v1.SupplierRiskService",
	HandlerType: (*SupplierRiskServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "AssessSupplierRisk", Handler: _SupplierRiskService_AssessSupplierRisk_Handler},
		{MethodName: "GetAssessment", Handler: _SupplierRiskService_GetAssessment_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _SupplierRiskService_AssessSupplierRisk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(AssessSupplierRiskRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(SupplierRiskServiceServer).AssessSupplierRisk(ctx, req)
}

func _SupplierRiskService_GetAssessment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(GetAssessmentRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(SupplierRiskServiceServer).GetAssessment(ctx, req)
}
