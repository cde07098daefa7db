// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: threatmapper/v1/threatmapper.proto

package threatmapperv1

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
	TaxonomyService_ListAttackObjects_FullMethodName = "/threatmapper.v1.TaxonomyService/ListAttackObjects"
	TaxonomyService_GetAttackObject_FullMethodName   = "/threatmapper.v1.TaxonomyService/GetAttackObject"
)

// TaxonomyServiceClient is the client API for TaxonomyService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type TaxonomyServiceClient interface {
	ListAttackObjects(ctx context.Context, in *ListAttackObjectsRequest, opts ...grpc.CallOption) (*ListAttackObjectsResponse, error)
	GetAttackObject(ctx context.Context, in *GetAttackObjectRequest, opts ...grpc.CallOption) (*GetAttackObjectResponse, error)
}

type taxonomyServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTaxonomyServiceClient(cc grpc.ClientConnInterface) TaxonomyServiceClient {
	return &taxonomyServiceClient{cc}
}

func (c *taxonomyServiceClient) ListAttackObjects(ctx context.Context, in *ListAttackObjectsRequest, opts ...grpc.CallOption) (*ListAttackObjectsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListAttackObjectsResponse)
	err := c.cc.Invoke(ctx, TaxonomyService_ListAttackObjects_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *taxonomyServiceClient) GetAttackObject(ctx context.Context, in *GetAttackObjectRequest, opts ...grpc.CallOption) (*GetAttackObjectResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetAttackObjectResponse)
	err := c.cc.Invoke(ctx, TaxonomyService_GetAttackObject_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TaxonomyServiceServer is the server API for TaxonomyService service.
// All implementations must embed UnimplementedTaxonomyServiceServer
// for forward compatibility.
type TaxonomyServiceServer interface {
	ListAttackObjects(context.Context, *ListAttackObjectsRequest) (*ListAttackObjectsResponse, error)
	GetAttackObject(context.Context, *GetAttackObjectRequest) (*GetAttackObjectResponse, error)
	mustEmbedUnimplementedTaxonomyServiceServer()
}

// UnimplementedTaxonomyServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTaxonomyServiceServer struct{}

func (UnimplementedTaxonomyServiceServer) ListAttackObjects(context.Context, *ListAttackObjectsRequest) (*ListAttackObjectsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAttackObjects not implemented")
}
func (UnimplementedTaxonomyServiceServer) GetAttackObject(context.Context, *GetAttackObjectRequest) (*GetAttackObjectResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAttackObject not implemented")
}
func (UnimplementedTaxonomyServiceServer) mustEmbedUnimplementedTaxonomyServiceServer() {}
func (UnimplementedTaxonomyServiceServer) testEmbeddedByValue()                         {}

// UnsafeTaxonomyServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TaxonomyServiceServer will
// result in compilation errors.
type UnsafeTaxonomyServiceServer interface {
	mustEmbedUnimplementedTaxonomyServiceServer()
}

func RegisterTaxonomyServiceServer(s grpc.ServiceRegistrar, srv TaxonomyServiceServer) {
	// If the following call panics, it indicates UnimplementedTaxonomyServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TaxonomyService_ServiceDesc, srv)
}

func _TaxonomyService_ListAttackObjects_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAttackObjectsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaxonomyServiceServer).ListAttackObjects(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TaxonomyService_ListAttackObjects_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TaxonomyServiceServer).ListAttackObjects(ctx, req.(*ListAttackObjectsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TaxonomyService_GetAttackObject_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAttackObjectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaxonomyServiceServer).GetAttackObject(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TaxonomyService_GetAttackObject_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TaxonomyServiceServer).GetAttackObject(ctx, req.(*GetAttackObjectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TaxonomyService_ServiceDesc is the grpc.ServiceDesc for TaxonomyService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TaxonomyService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "threatmapper.v1.TaxonomyService",
	HandlerType: (*TaxonomyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListAttackObjects",
			Handler:    _TaxonomyService_ListAttackObjects_Handler,
		},
		{
			MethodName: "GetAttackObject",
			Handler:    _TaxonomyService_GetAttackObject_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "threatmapper/v1/threatmapper.proto",
}

const (
	MappingService_GetSentenceCounts_FullMethodName   = "/threatmapper.v1.MappingService/GetSentenceCounts"
	MappingService_GetReportCounts_FullMethodName     = "/threatmapper.v1.MappingService/GetReportCounts"
	MappingService_GetAcceptedMappings_FullMethodName = "/threatmapper.v1.MappingService/GetAcceptedMappings"
	MappingService_ListSentences_FullMethodName       = "/threatmapper.v1.MappingService/ListSentences"
	MappingService_SetDisposition_FullMethodName      = "/threatmapper.v1.MappingService/SetDisposition"
	MappingService_PromoteMapping_FullMethodName      = "/threatmapper.v1.MappingService/PromoteMapping"
)

// MappingServiceClient is the client API for MappingService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type MappingServiceClient interface {
	GetSentenceCounts(ctx context.Context, in *GetSentenceCountsRequest, opts ...grpc.CallOption) (*GetCountsResponse, error)
	GetReportCounts(ctx context.Context, in *GetReportCountsRequest, opts ...grpc.CallOption) (*GetCountsResponse, error)
	GetAcceptedMappings(ctx context.Context, in *GetAcceptedMappingsRequest, opts ...grpc.CallOption) (*GetAcceptedMappingsResponse, error)
	ListSentences(ctx context.Context, in *ListSentencesRequest, opts ...grpc.CallOption) (*ListSentencesResponse, error)
	SetDisposition(ctx context.Context, in *SetDispositionRequest, opts ...grpc.CallOption) (*SetDispositionResponse, error)
	PromoteMapping(ctx context.Context, in *PromoteMappingRequest, opts ...grpc.CallOption) (*PromoteMappingResponse, error)
}

type mappingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMappingServiceClient(cc grpc.ClientConnInterface) MappingServiceClient {
	return &mappingServiceClient{cc}
}

func (c *mappingServiceClient) GetSentenceCounts(ctx context.Context, in *GetSentenceCountsRequest, opts ...grpc.CallOption) (*GetCountsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCountsResponse)
	err := c.cc.Invoke(ctx, MappingService_GetSentenceCounts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mappingServiceClient) GetReportCounts(ctx context.Context, in *GetReportCountsRequest, opts ...grpc.CallOption) (*GetCountsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCountsResponse)
	err := c.cc.Invoke(ctx, MappingService_GetReportCounts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mappingServiceClient) GetAcceptedMappings(ctx context.Context, in *GetAcceptedMappingsRequest, opts ...grpc.CallOption) (*GetAcceptedMappingsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetAcceptedMappingsResponse)
	err := c.cc.Invoke(ctx, MappingService_GetAcceptedMappings_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mappingServiceClient) ListSentences(ctx context.Context, in *ListSentencesRequest, opts ...grpc.CallOption) (*ListSentencesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSentencesResponse)
	err := c.cc.Invoke(ctx, MappingService_ListSentences_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mappingServiceClient) SetDisposition(ctx context.Context, in *SetDispositionRequest, opts ...grpc.CallOption) (*SetDispositionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetDispositionResponse)
	err := c.cc.Invoke(ctx, MappingService_SetDisposition_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mappingServiceClient) PromoteMapping(ctx context.Context, in *PromoteMappingRequest, opts ...grpc.CallOption) (*PromoteMappingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PromoteMappingResponse)
	err := c.cc.Invoke(ctx, MappingService_PromoteMapping_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MappingServiceServer is the server API for MappingService service.
// All implementations must embed UnimplementedMappingServiceServer
// for forward compatibility.
type MappingServiceServer interface {
	GetSentenceCounts(context.Context, *GetSentenceCountsRequest) (*GetCountsResponse, error)
	GetReportCounts(context.Context, *GetReportCountsRequest) (*GetCountsResponse, error)
	GetAcceptedMappings(context.Context, *GetAcceptedMappingsRequest) (*GetAcceptedMappingsResponse, error)
	ListSentences(context.Context, *ListSentencesRequest) (*ListSentencesResponse, error)
	SetDisposition(context.Context, *SetDispositionRequest) (*SetDispositionResponse, error)
	PromoteMapping(context.Context, *PromoteMappingRequest) (*PromoteMappingResponse, error)
	mustEmbedUnimplementedMappingServiceServer()
}

// UnimplementedMappingServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMappingServiceServer struct{}

func (UnimplementedMappingServiceServer) GetSentenceCounts(context.Context, *GetSentenceCountsRequest) (*GetCountsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSentenceCounts not implemented")
}
func (UnimplementedMappingServiceServer) GetReportCounts(context.Context, *GetReportCountsRequest) (*GetCountsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetReportCounts not implemented")
}
func (UnimplementedMappingServiceServer) GetAcceptedMappings(context.Context, *GetAcceptedMappingsRequest) (*GetAcceptedMappingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAcceptedMappings not implemented")
}
func (UnimplementedMappingServiceServer) ListSentences(context.Context, *ListSentencesRequest) (*ListSentencesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSentences not implemented")
}
func (UnimplementedMappingServiceServer) SetDisposition(context.Context, *SetDispositionRequest) (*SetDispositionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetDisposition not implemented")
}
func (UnimplementedMappingServiceServer) PromoteMapping(context.Context, *PromoteMappingRequest) (*PromoteMappingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PromoteMapping not implemented")
}
func (UnimplementedMappingServiceServer) mustEmbedUnimplementedMappingServiceServer() {}
func (UnimplementedMappingServiceServer) testEmbeddedByValue()                        {}

// UnsafeMappingServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MappingServiceServer will
// result in compilation errors.
type UnsafeMappingServiceServer interface {
	mustEmbedUnimplementedMappingServiceServer()
}

func RegisterMappingServiceServer(s grpc.ServiceRegistrar, srv MappingServiceServer) {
	// If the following call panics, it indicates UnimplementedMappingServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MappingService_ServiceDesc, srv)
}

func _MappingService_GetSentenceCounts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSentenceCountsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MappingServiceServer).GetSentenceCounts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MappingService_GetSentenceCounts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MappingServiceServer).GetSentenceCounts(ctx, req.(*GetSentenceCountsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MappingService_GetReportCounts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetReportCountsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MappingServiceServer).GetReportCounts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MappingService_GetReportCounts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MappingServiceServer).GetReportCounts(ctx, req.(*GetReportCountsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MappingService_GetAcceptedMappings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAcceptedMappingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MappingServiceServer).GetAcceptedMappings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MappingService_GetAcceptedMappings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MappingServiceServer).GetAcceptedMappings(ctx, req.(*GetAcceptedMappingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MappingService_ListSentences_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSentencesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MappingServiceServer).ListSentences(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MappingService_ListSentences_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MappingServiceServer).ListSentences(ctx, req.(*ListSentencesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MappingService_SetDisposition_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetDispositionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MappingServiceServer).SetDisposition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MappingService_SetDisposition_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MappingServiceServer).SetDisposition(ctx, req.(*SetDispositionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MappingService_PromoteMapping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PromoteMappingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MappingServiceServer).PromoteMapping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MappingService_PromoteMapping_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MappingServiceServer).PromoteMapping(ctx, req.(*PromoteMappingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MappingService_ServiceDesc is the grpc.ServiceDesc for MappingService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MappingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "threatmapper.v1.MappingService",
	HandlerType: (*MappingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetSentenceCounts",
			Handler:    _MappingService_GetSentenceCounts_Handler,
		},
		{
			MethodName: "GetReportCounts",
			Handler:    _MappingService_GetReportCounts_Handler,
		},
		{
			MethodName: "GetAcceptedMappings",
			Handler:    _MappingService_GetAcceptedMappings_Handler,
		},
		{
			MethodName: "ListSentences",
			Handler:    _MappingService_ListSentences_Handler,
		},
		{
			MethodName: "SetDisposition",
			Handler:    _MappingService_SetDisposition_Handler,
		},
		{
			MethodName: "PromoteMapping",
			Handler:    _MappingService_PromoteMapping_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "threatmapper/v1/threatmapper.proto",
}

const (
	IngestionService_SubmitDocument_FullMethodName = "/threatmapper.v1.IngestionService/SubmitDocument"
	IngestionService_SubmitPath_FullMethodName     = "/threatmapper.v1.IngestionService/SubmitPath"
	IngestionService_GetJob_FullMethodName         = "/threatmapper.v1.IngestionService/GetJob"
	IngestionService_ListJobs_FullMethodName       = "/threatmapper.v1.IngestionService/ListJobs"
	IngestionService_DeleteDocument_FullMethodName = "/threatmapper.v1.IngestionService/DeleteDocument"
)

// IngestionServiceClient is the client API for IngestionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type IngestionServiceClient interface {
	SubmitDocument(ctx context.Context, in *SubmitDocumentRequest, opts ...grpc.CallOption) (*SubmitDocumentResponse, error)
	SubmitPath(ctx context.Context, in *SubmitPathRequest, opts ...grpc.CallOption) (*SubmitPathResponse, error)
	GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error)
	ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error)
	DeleteDocument(ctx context.Context, in *DeleteDocumentRequest, opts ...grpc.CallOption) (*DeleteDocumentResponse, error)
}

type ingestionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIngestionServiceClient(cc grpc.ClientConnInterface) IngestionServiceClient {
	return &ingestionServiceClient{cc}
}

func (c *ingestionServiceClient) SubmitDocument(ctx context.Context, in *SubmitDocumentRequest, opts ...grpc.CallOption) (*SubmitDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitDocumentResponse)
	err := c.cc.Invoke(ctx, IngestionService_SubmitDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestionServiceClient) SubmitPath(ctx context.Context, in *SubmitPathRequest, opts ...grpc.CallOption) (*SubmitPathResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitPathResponse)
	err := c.cc.Invoke(ctx, IngestionService_SubmitPath_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestionServiceClient) GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetJobResponse)
	err := c.cc.Invoke(ctx, IngestionService_GetJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestionServiceClient) ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListJobsResponse)
	err := c.cc.Invoke(ctx, IngestionService_ListJobs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestionServiceClient) DeleteDocument(ctx context.Context, in *DeleteDocumentRequest, opts ...grpc.CallOption) (*DeleteDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteDocumentResponse)
	err := c.cc.Invoke(ctx, IngestionService_DeleteDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IngestionServiceServer is the server API for IngestionService service.
// All implementations must embed UnimplementedIngestionServiceServer
// for forward compatibility.
type IngestionServiceServer interface {
	SubmitDocument(context.Context, *SubmitDocumentRequest) (*SubmitDocumentResponse, error)
	SubmitPath(context.Context, *SubmitPathRequest) (*SubmitPathResponse, error)
	GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error)
	ListJobs(context.Context, *ListJobsRequest) (*ListJobsResponse, error)
	DeleteDocument(context.Context, *DeleteDocumentRequest) (*DeleteDocumentResponse, error)
	mustEmbedUnimplementedIngestionServiceServer()
}

// UnimplementedIngestionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedIngestionServiceServer struct{}

func (UnimplementedIngestionServiceServer) SubmitDocument(context.Context, *SubmitDocumentRequest) (*SubmitDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitDocument not implemented")
}
func (UnimplementedIngestionServiceServer) SubmitPath(context.Context, *SubmitPathRequest) (*SubmitPathResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitPath not implemented")
}
func (UnimplementedIngestionServiceServer) GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetJob not implemented")
}
func (UnimplementedIngestionServiceServer) ListJobs(context.Context, *ListJobsRequest) (*ListJobsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListJobs not implemented")
}
func (UnimplementedIngestionServiceServer) DeleteDocument(context.Context, *DeleteDocumentRequest) (*DeleteDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteDocument not implemented")
}
func (UnimplementedIngestionServiceServer) mustEmbedUnimplementedIngestionServiceServer() {}
func (UnimplementedIngestionServiceServer) testEmbeddedByValue()                          {}

// UnsafeIngestionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to IngestionServiceServer will
// result in compilation errors.
type UnsafeIngestionServiceServer interface {
	mustEmbedUnimplementedIngestionServiceServer()
}

func RegisterIngestionServiceServer(s grpc.ServiceRegistrar, srv IngestionServiceServer) {
	// If the following call panics, it indicates UnimplementedIngestionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&IngestionService_ServiceDesc, srv)
}

func _IngestionService_SubmitDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).SubmitDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_SubmitDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).SubmitDocument(ctx, req.(*SubmitDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestionService_SubmitPath_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitPathRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).SubmitPath(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_SubmitPath_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).SubmitPath(ctx, req.(*SubmitPathRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestionService_GetJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).GetJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_GetJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).GetJob(ctx, req.(*GetJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestionService_ListJobs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).ListJobs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_ListJobs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).ListJobs(ctx, req.(*ListJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestionService_DeleteDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).DeleteDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_DeleteDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).DeleteDocument(ctx, req.(*DeleteDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// IngestionService_ServiceDesc is the grpc.ServiceDesc for IngestionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var IngestionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "threatmapper.v1.IngestionService",
	HandlerType: (*IngestionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitDocument",
			Handler:    _IngestionService_SubmitDocument_Handler,
		},
		{
			MethodName: "SubmitPath",
			Handler:    _IngestionService_SubmitPath_Handler,
		},
		{
			MethodName: "GetJob",
			Handler:    _IngestionService_GetJob_Handler,
		},
		{
			MethodName: "ListJobs",
			Handler:    _IngestionService_ListJobs_Handler,
		},
		{
			MethodName: "DeleteDocument",
			Handler:    _IngestionService_DeleteDocument_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "threatmapper/v1/threatmapper.proto",
}

const (
	ExportService_ExportCounts_FullMethodName   = "/threatmapper.v1.ExportService/ExportCounts"
	ExportService_ExportAccepted_FullMethodName = "/threatmapper.v1.ExportService/ExportAccepted"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExportServiceClient interface {
	ExportCounts(ctx context.Context, in *ExportCountsRequest, opts ...grpc.CallOption) (*ExportCountsResponse, error)
	ExportAccepted(ctx context.Context, in *ExportAcceptedRequest, opts ...grpc.CallOption) (*ExportAcceptedResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportCounts(ctx context.Context, in *ExportCountsRequest, opts ...grpc.CallOption) (*ExportCountsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportCountsResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportCounts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exportServiceClient) ExportAccepted(ctx context.Context, in *ExportAcceptedRequest, opts ...grpc.CallOption) (*ExportAcceptedResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportAcceptedResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportAccepted_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
type ExportServiceServer interface {
	ExportCounts(context.Context, *ExportCountsRequest) (*ExportCountsResponse, error)
	ExportAccepted(context.Context, *ExportAcceptedRequest) (*ExportAcceptedResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportCounts(context.Context, *ExportCountsRequest) (*ExportCountsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportCounts not implemented")
}
func (UnimplementedExportServiceServer) ExportAccepted(context.Context, *ExportAcceptedRequest) (*ExportAcceptedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportAccepted not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call panics, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportCounts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportCountsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportCounts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportCounts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportCounts(ctx, req.(*ExportCountsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportService_ExportAccepted_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportAcceptedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportAccepted(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportAccepted_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportAccepted(ctx, req.(*ExportAcceptedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "threatmapper.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportCounts",
			Handler:    _ExportService_ExportCounts_Handler,
		},
		{
			MethodName: "ExportAccepted",
			Handler:    _ExportService_ExportAccepted_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "threatmapper/v1/threatmapper.proto",
}
