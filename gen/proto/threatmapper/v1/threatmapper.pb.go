// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: threatmapper/v1/threatmapper.proto

package threatmapperv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type AttackObject struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Kind          string                 `protobuf:"bytes,2,opt,name=kind,proto3" json:"kind,omitempty"` // technique | group
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	StixId        string                 `protobuf:"bytes,4,opt,name=stix_id,json=stixId,proto3" json:"stix_id,omitempty"`
	AttackId      string                 `protobuf:"bytes,5,opt,name=attack_id,json=attackId,proto3" json:"attack_id,omitempty"`
	AttackUrl     string                 `protobuf:"bytes,6,opt,name=attack_url,json=attackUrl,proto3" json:"attack_url,omitempty"`
	Matrix        string                 `protobuf:"bytes,7,opt,name=matrix,proto3" json:"matrix,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttackObject) Reset() {
	*x = AttackObject{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttackObject) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttackObject) ProtoMessage() {}

func (x *AttackObject) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttackObject.ProtoReflect.Descriptor instead.
func (*AttackObject) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{0}
}

func (x *AttackObject) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *AttackObject) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *AttackObject) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *AttackObject) GetStixId() string {
	if x != nil {
		return x.StixId
	}
	return ""
}

func (x *AttackObject) GetAttackId() string {
	if x != nil {
		return x.AttackId
	}
	return ""
}

func (x *AttackObject) GetAttackUrl() string {
	if x != nil {
		return x.AttackUrl
	}
	return ""
}

func (x *AttackObject) GetMatrix() string {
	if x != nil {
		return x.Matrix
	}
	return ""
}

type ListAttackObjectsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`     // technique | group
	Matrix        string                 `protobuf:"bytes,2,opt,name=matrix,proto3" json:"matrix,omitempty"` // optional filter
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAttackObjectsRequest) Reset() {
	*x = ListAttackObjectsRequest{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAttackObjectsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAttackObjectsRequest) ProtoMessage() {}

func (x *ListAttackObjectsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAttackObjectsRequest.ProtoReflect.Descriptor instead.
func (*ListAttackObjectsRequest) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{1}
}

func (x *ListAttackObjectsRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *ListAttackObjectsRequest) GetMatrix() string {
	if x != nil {
		return x.Matrix
	}
	return ""
}

type ListAttackObjectsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Objects       []*AttackObject        `protobuf:"bytes,1,rep,name=objects,proto3" json:"objects,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAttackObjectsResponse) Reset() {
	*x = ListAttackObjectsResponse{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAttackObjectsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAttackObjectsResponse) ProtoMessage() {}

func (x *ListAttackObjectsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAttackObjectsResponse.ProtoReflect.Descriptor instead.
func (*ListAttackObjectsResponse) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{2}
}

func (x *ListAttackObjectsResponse) GetObjects() []*AttackObject {
	if x != nil {
		return x.Objects
	}
	return nil
}

type GetAttackObjectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AttackId      string                 `protobuf:"bytes,1,opt,name=attack_id,json=attackId,proto3" json:"attack_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAttackObjectRequest) Reset() {
	*x = GetAttackObjectRequest{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAttackObjectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAttackObjectRequest) ProtoMessage() {}

func (x *GetAttackObjectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAttackObjectRequest.ProtoReflect.Descriptor instead.
func (*GetAttackObjectRequest) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{3}
}

func (x *GetAttackObjectRequest) GetAttackId() string {
	if x != nil {
		return x.AttackId
	}
	return ""
}

type GetAttackObjectResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Object        *AttackObject          `protobuf:"bytes,1,opt,name=object,proto3" json:"object,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAttackObjectResponse) Reset() {
	*x = GetAttackObjectResponse{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAttackObjectResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAttackObjectResponse) ProtoMessage() {}

func (x *GetAttackObjectResponse) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAttackObjectResponse.ProtoReflect.Descriptor instead.
func (*GetAttackObjectResponse) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{4}
}

func (x *GetAttackObjectResponse) GetObject() *AttackObject {
	if x != nil {
		return x.Object
	}
	return nil
}

type Mapping struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ReportId       string                 `protobuf:"bytes,2,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	SentenceId     string                 `protobuf:"bytes,3,opt,name=sentence_id,json=sentenceId,proto3" json:"sentence_id,omitempty"`               // empty => report-level mapping
	AttackObjectId string                 `protobuf:"bytes,4,opt,name=attack_object_id,json=attackObjectId,proto3" json:"attack_object_id,omitempty"` // empty => negative example
	AttackId       string                 `protobuf:"bytes,5,opt,name=attack_id,json=attackId,proto3" json:"attack_id,omitempty"`
	Confidence     float64                `protobuf:"fixed64,6,opt,name=confidence,proto3" json:"confidence,omitempty"`
	ModelName      string                 `protobuf:"bytes,7,opt,name=model_name,json=modelName,proto3" json:"model_name,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Mapping) Reset() {
	*x = Mapping{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Mapping) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Mapping) ProtoMessage() {}

func (x *Mapping) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Mapping.ProtoReflect.Descriptor instead.
func (*Mapping) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{5}
}

func (x *Mapping) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Mapping) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

func (x *Mapping) GetSentenceId() string {
	if x != nil {
		return x.SentenceId
	}
	return ""
}

func (x *Mapping) GetAttackObjectId() string {
	if x != nil {
		return x.AttackObjectId
	}
	return ""
}

func (x *Mapping) GetAttackId() string {
	if x != nil {
		return x.AttackId
	}
	return ""
}

func (x *Mapping) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Mapping) GetModelName() string {
	if x != nil {
		return x.ModelName
	}
	return ""
}

type Sentence struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ReportId      string                 `protobuf:"bytes,2,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	Text          string                 `protobuf:"bytes,3,opt,name=text,proto3" json:"text,omitempty"`
	Order         int32                  `protobuf:"varint,4,opt,name=order,proto3" json:"order,omitempty"`
	Disposition   string                 `protobuf:"bytes,5,opt,name=disposition,proto3" json:"disposition,omitempty"` // accept | reject | "" (pending)
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Sentence) Reset() {
	*x = Sentence{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Sentence) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Sentence) ProtoMessage() {}

func (x *Sentence) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Sentence.ProtoReflect.Descriptor instead.
func (*Sentence) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{6}
}

func (x *Sentence) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Sentence) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

func (x *Sentence) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *Sentence) GetOrder() int32 {
	if x != nil {
		return x.Order
	}
	return 0
}

func (x *Sentence) GetDisposition() string {
	if x != nil {
		return x.Disposition
	}
	return ""
}

type ObjectCounts struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Object        *AttackObject          `protobuf:"bytes,1,opt,name=object,proto3" json:"object,omitempty"`
	Accepted      int32                  `protobuf:"varint,2,opt,name=accepted,proto3" json:"accepted,omitempty"`
	Pending       int32                  `protobuf:"varint,3,opt,name=pending,proto3" json:"pending,omitempty"`
	Total         int32                  `protobuf:"varint,4,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ObjectCounts) Reset() {
	*x = ObjectCounts{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ObjectCounts) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ObjectCounts) ProtoMessage() {}

func (x *ObjectCounts) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ObjectCounts.ProtoReflect.Descriptor instead.
func (*ObjectCounts) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{7}
}

func (x *ObjectCounts) GetObject() *AttackObject {
	if x != nil {
		return x.Object
	}
	return nil
}

func (x *ObjectCounts) GetAccepted() int32 {
	if x != nil {
		return x.Accepted
	}
	return 0
}

func (x *ObjectCounts) GetPending() int32 {
	if x != nil {
		return x.Pending
	}
	return 0
}

func (x *ObjectCounts) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type GetSentenceCountsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Threshold     int32                  `protobuf:"varint,2,opt,name=threshold,proto3" json:"threshold,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSentenceCountsRequest) Reset() {
	*x = GetSentenceCountsRequest{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSentenceCountsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSentenceCountsRequest) ProtoMessage() {}

func (x *GetSentenceCountsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSentenceCountsRequest.ProtoReflect.Descriptor instead.
func (*GetSentenceCountsRequest) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{8}
}

func (x *GetSentenceCountsRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *GetSentenceCountsRequest) GetThreshold() int32 {
	if x != nil {
		return x.Threshold
	}
	return 0
}

type GetReportCountsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Threshold     int32                  `protobuf:"varint,2,opt,name=threshold,proto3" json:"threshold,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReportCountsRequest) Reset() {
	*x = GetReportCountsRequest{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReportCountsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReportCountsRequest) ProtoMessage() {}

func (x *GetReportCountsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReportCountsRequest.ProtoReflect.Descriptor instead.
func (*GetReportCountsRequest) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{9}
}

func (x *GetReportCountsRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *GetReportCountsRequest) GetThreshold() int32 {
	if x != nil {
		return x.Threshold
	}
	return 0
}

type GetCountsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Counts        []*ObjectCounts        `protobuf:"bytes,1,rep,name=counts,proto3" json:"counts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCountsResponse) Reset() {
	*x = GetCountsResponse{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCountsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCountsResponse) ProtoMessage() {}

func (x *GetCountsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCountsResponse.ProtoReflect.Descriptor instead.
func (*GetCountsResponse) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{10}
}

func (x *GetCountsResponse) GetCounts() []*ObjectCounts {
	if x != nil {
		return x.Counts
	}
	return nil
}

type GetAcceptedMappingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Granularity   string                 `protobuf:"bytes,2,opt,name=granularity,proto3" json:"granularity,omitempty"` // sentence | report
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAcceptedMappingsRequest) Reset() {
	*x = GetAcceptedMappingsRequest{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAcceptedMappingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAcceptedMappingsRequest) ProtoMessage() {}

func (x *GetAcceptedMappingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAcceptedMappingsRequest.ProtoReflect.Descriptor instead.
func (*GetAcceptedMappingsRequest) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{11}
}

func (x *GetAcceptedMappingsRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *GetAcceptedMappingsRequest) GetGranularity() string {
	if x != nil {
		return x.Granularity
	}
	return ""
}

type GetAcceptedMappingsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Mappings      []*Mapping             `protobuf:"bytes,1,rep,name=mappings,proto3" json:"mappings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAcceptedMappingsResponse) Reset() {
	*x = GetAcceptedMappingsResponse{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAcceptedMappingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAcceptedMappingsResponse) ProtoMessage() {}

func (x *GetAcceptedMappingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAcceptedMappingsResponse.ProtoReflect.Descriptor instead.
func (*GetAcceptedMappingsResponse) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{12}
}

func (x *GetAcceptedMappingsResponse) GetMappings() []*Mapping {
	if x != nil {
		return x.Mappings
	}
	return nil
}

type ListSentencesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReportId      string                 `protobuf:"bytes,1,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSentencesRequest) Reset() {
	*x = ListSentencesRequest{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSentencesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSentencesRequest) ProtoMessage() {}

func (x *ListSentencesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSentencesRequest.ProtoReflect.Descriptor instead.
func (*ListSentencesRequest) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{13}
}

func (x *ListSentencesRequest) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

type ListSentencesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sentences     []*Sentence            `protobuf:"bytes,1,rep,name=sentences,proto3" json:"sentences,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSentencesResponse) Reset() {
	*x = ListSentencesResponse{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSentencesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSentencesResponse) ProtoMessage() {}

func (x *ListSentencesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSentencesResponse.ProtoReflect.Descriptor instead.
func (*ListSentencesResponse) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{14}
}

func (x *ListSentencesResponse) GetSentences() []*Sentence {
	if x != nil {
		return x.Sentences
	}
	return nil
}

type SetDispositionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SentenceId    string                 `protobuf:"bytes,1,opt,name=sentence_id,json=sentenceId,proto3" json:"sentence_id,omitempty"`
	Disposition   string                 `protobuf:"bytes,2,opt,name=disposition,proto3" json:"disposition,omitempty"` // accept | reject | "" clears back to pending
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetDispositionRequest) Reset() {
	*x = SetDispositionRequest{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetDispositionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetDispositionRequest) ProtoMessage() {}

func (x *SetDispositionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetDispositionRequest.ProtoReflect.Descriptor instead.
func (*SetDispositionRequest) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{15}
}

func (x *SetDispositionRequest) GetSentenceId() string {
	if x != nil {
		return x.SentenceId
	}
	return ""
}

func (x *SetDispositionRequest) GetDisposition() string {
	if x != nil {
		return x.Disposition
	}
	return ""
}

type SetDispositionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetDispositionResponse) Reset() {
	*x = SetDispositionResponse{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetDispositionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetDispositionResponse) ProtoMessage() {}

func (x *SetDispositionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetDispositionResponse.ProtoReflect.Descriptor instead.
func (*SetDispositionResponse) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{16}
}

type PromoteMappingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SentenceId    string                 `protobuf:"bytes,1,opt,name=sentence_id,json=sentenceId,proto3" json:"sentence_id,omitempty"`
	AttackId      string                 `protobuf:"bytes,2,opt,name=attack_id,json=attackId,proto3" json:"attack_id,omitempty"`
	Confidence    float64                `protobuf:"fixed64,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PromoteMappingRequest) Reset() {
	*x = PromoteMappingRequest{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PromoteMappingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PromoteMappingRequest) ProtoMessage() {}

func (x *PromoteMappingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PromoteMappingRequest.ProtoReflect.Descriptor instead.
func (*PromoteMappingRequest) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{17}
}

func (x *PromoteMappingRequest) GetSentenceId() string {
	if x != nil {
		return x.SentenceId
	}
	return ""
}

func (x *PromoteMappingRequest) GetAttackId() string {
	if x != nil {
		return x.AttackId
	}
	return ""
}

func (x *PromoteMappingRequest) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type PromoteMappingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Mapping       *Mapping               `protobuf:"bytes,1,opt,name=mapping,proto3" json:"mapping,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PromoteMappingResponse) Reset() {
	*x = PromoteMappingResponse{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PromoteMappingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PromoteMappingResponse) ProtoMessage() {}

func (x *PromoteMappingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PromoteMappingResponse.ProtoReflect.Descriptor instead.
func (*PromoteMappingResponse) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{18}
}

func (x *PromoteMappingResponse) GetMapping() *Mapping {
	if x != nil {
		return x.Mapping
	}
	return nil
}

type IngestJob struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"` // queued | done | error
	Message       string                 `protobuf:"bytes,4,opt,name=message,proto3" json:"message,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	UpdatedAt     string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestJob) Reset() {
	*x = IngestJob{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestJob) ProtoMessage() {}

func (x *IngestJob) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestJob.ProtoReflect.Descriptor instead.
func (*IngestJob) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{19}
}

func (x *IngestJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *IngestJob) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *IngestJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *IngestJob) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *IngestJob) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *IngestJob) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type SubmitDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	CreatedBy     string                 `protobuf:"bytes,3,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentRequest) Reset() {
	*x = SubmitDocumentRequest{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentRequest) ProtoMessage() {}

func (x *SubmitDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentRequest.ProtoReflect.Descriptor instead.
func (*SubmitDocumentRequest) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{20}
}

func (x *SubmitDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *SubmitDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *SubmitDocumentRequest) GetCreatedBy() string {
	if x != nil {
		return x.CreatedBy
	}
	return ""
}

type SubmitDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentResponse) Reset() {
	*x = SubmitDocumentResponse{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentResponse) ProtoMessage() {}

func (x *SubmitDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentResponse.ProtoReflect.Descriptor instead.
func (*SubmitDocumentResponse) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{21}
}

func (x *SubmitDocumentResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *SubmitDocumentResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type SubmitPathRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	CreatedBy     string                 `protobuf:"bytes,2,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitPathRequest) Reset() {
	*x = SubmitPathRequest{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitPathRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitPathRequest) ProtoMessage() {}

func (x *SubmitPathRequest) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitPathRequest.ProtoReflect.Descriptor instead.
func (*SubmitPathRequest) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{22}
}

func (x *SubmitPathRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *SubmitPathRequest) GetCreatedBy() string {
	if x != nil {
		return x.CreatedBy
	}
	return ""
}

type SubmitPathResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitPathResponse) Reset() {
	*x = SubmitPathResponse{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitPathResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitPathResponse) ProtoMessage() {}

func (x *SubmitPathResponse) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitPathResponse.ProtoReflect.Descriptor instead.
func (*SubmitPathResponse) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{23}
}

func (x *SubmitPathResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *SubmitPathResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{24}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *IngestJob             `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{25}
}

func (x *GetJobResponse) GetJob() *IngestJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"` // queued | done | error
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{26}
}

func (x *ListJobsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*IngestJob           `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{27}
}

func (x *ListJobsResponse) GetJobs() []*IngestJob {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type DeleteDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentRequest) Reset() {
	*x = DeleteDocumentRequest{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentRequest) ProtoMessage() {}

func (x *DeleteDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentRequest.ProtoReflect.Descriptor instead.
func (*DeleteDocumentRequest) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{28}
}

func (x *DeleteDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type DeleteDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentResponse) Reset() {
	*x = DeleteDocumentResponse{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentResponse) ProtoMessage() {}

func (x *DeleteDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentResponse.ProtoReflect.Descriptor instead.
func (*DeleteDocumentResponse) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{29}
}

type ExportCountsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Threshold     int32                  `protobuf:"varint,2,opt,name=threshold,proto3" json:"threshold,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCountsRequest) Reset() {
	*x = ExportCountsRequest{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCountsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCountsRequest) ProtoMessage() {}

func (x *ExportCountsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCountsRequest.ProtoReflect.Descriptor instead.
func (*ExportCountsRequest) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{30}
}

func (x *ExportCountsRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *ExportCountsRequest) GetThreshold() int32 {
	if x != nil {
		return x.Threshold
	}
	return 0
}

type ExportCountsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCountsResponse) Reset() {
	*x = ExportCountsResponse{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCountsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCountsResponse) ProtoMessage() {}

func (x *ExportCountsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCountsResponse.ProtoReflect.Descriptor instead.
func (*ExportCountsResponse) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{31}
}

func (x *ExportCountsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ExportAcceptedRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Granularity   string                 `protobuf:"bytes,2,opt,name=granularity,proto3" json:"granularity,omitempty"` // sentence | report
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAcceptedRequest) Reset() {
	*x = ExportAcceptedRequest{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAcceptedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAcceptedRequest) ProtoMessage() {}

func (x *ExportAcceptedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAcceptedRequest.ProtoReflect.Descriptor instead.
func (*ExportAcceptedRequest) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{32}
}

func (x *ExportAcceptedRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *ExportAcceptedRequest) GetGranularity() string {
	if x != nil {
		return x.Granularity
	}
	return ""
}

type ExportAcceptedResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAcceptedResponse) Reset() {
	*x = ExportAcceptedResponse{}
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAcceptedResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAcceptedResponse) ProtoMessage() {}

func (x *ExportAcceptedResponse) ProtoReflect() protoreflect.Message {
	mi := &file_threatmapper_v1_threatmapper_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAcceptedResponse.ProtoReflect.Descriptor instead.
func (*ExportAcceptedResponse) Descriptor() ([]byte, []int) {
	return file_threatmapper_v1_threatmapper_proto_rawDescGZIP(), []int{33}
}

func (x *ExportAcceptedResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_threatmapper_v1_threatmapper_proto protoreflect.FileDescriptor

const file_threatmapper_v1_threatmapper_proto_rawDesc = "" +
	"\n" +
	"\"threatmapper/v1/threatmapper.proto\x12\x0fthreatmapper.v1\"\xb3\x01\n" +
	"\fAttackObject\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04kind\x18\x02 \x01(\tR\x04kind\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x17\n" +
	"\astix_id\x18\x04 \x01(\tR\x06stixId\x12\x1b\n" +
	"\tattack_id\x18\x05 \x01(\tR\battackId\x12\x1d\n" +
	"\n" +
	"attack_url\x18\x06 \x01(\tR\tattackUrl\x12\x16\n" +
	"\x06matrix\x18\a \x01(\tR\x06matrix\"F\n" +
	"\x18ListAttackObjectsRequest\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12\x16\n" +
	"\x06matrix\x18\x02 \x01(\tR\x06matrix\"T\n" +
	"\x19ListAttackObjectsResponse\x127\n" +
	"\aobjects\x18\x01 \x03(\v2\x1d.threatmapper.v1.AttackObjectR\aobjects\"5\n" +
	"\x16GetAttackObjectRequest\x12\x1b\n" +
	"\tattack_id\x18\x01 \x01(\tR\battackId\"P\n" +
	"\x17GetAttackObjectResponse\x125\n" +
	"\x06object\x18\x01 \x01(\v2\x1d.threatmapper.v1.AttackObjectR\x06object\"\xdd\x01\n" +
	"\aMapping\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\treport_id\x18\x02 \x01(\tR\breportId\x12\x1f\n" +
	"\vsentence_id\x18\x03 \x01(\tR\n" +
	"sentenceId\x12(\n" +
	"\x10attack_object_id\x18\x04 \x01(\tR\x0eattackObjectId\x12\x1b\n" +
	"\tattack_id\x18\x05 \x01(\tR\battackId\x12\x1e\n" +
	"\n" +
	"confidence\x18\x06 \x01(\x01R\n" +
	"confidence\x12\x1d\n" +
	"\n" +
	"model_name\x18\a \x01(\tR\tmodelName\"\x83\x01\n" +
	"\bSentence\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\treport_id\x18\x02 \x01(\tR\breportId\x12\x12\n" +
	"\x04text\x18\x03 \x01(\tR\x04text\x12\x14\n" +
	"\x05order\x18\x04 \x01(\x05R\x05order\x12 \n" +
	"\vdisposition\x18\x05 \x01(\tR\vdisposition\"\x91\x01\n" +
	"\fObjectCounts\x125\n" +
	"\x06object\x18\x01 \x01(\v2\x1d.threatmapper.v1.AttackObjectR\x06object\x12\x1a\n" +
	"\baccepted\x18\x02 \x01(\x05R\baccepted\x12\x18\n" +
	"\apending\x18\x03 \x01(\x05R\apending\x12\x14\n" +
	"\x05total\x18\x04 \x01(\x05R\x05total\"L\n" +
	"\x18GetSentenceCountsRequest\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12\x1c\n" +
	"\tthreshold\x18\x02 \x01(\x05R\tthreshold\"J\n" +
	"\x16GetReportCountsRequest\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12\x1c\n" +
	"\tthreshold\x18\x02 \x01(\x05R\tthreshold\"J\n" +
	"\x11GetCountsResponse\x125\n" +
	"\x06counts\x18\x01 \x03(\v2\x1d.threatmapper.v1.ObjectCountsR\x06counts\"R\n" +
	"\x1aGetAcceptedMappingsRequest\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12 \n" +
	"\vgranularity\x18\x02 \x01(\tR\vgranularity\"S\n" +
	"\x1bGetAcceptedMappingsResponse\x124\n" +
	"\bmappings\x18\x01 \x03(\v2\x18.threatmapper.v1.MappingR\bmappings\"3\n" +
	"\x14ListSentencesRequest\x12\x1b\n" +
	"\treport_id\x18\x01 \x01(\tR\breportId\"P\n" +
	"\x15ListSentencesResponse\x127\n" +
	"\tsentences\x18\x01 \x03(\v2\x19.threatmapper.v1.SentenceR\tsentences\"Z\n" +
	"\x15SetDispositionRequest\x12\x1f\n" +
	"\vsentence_id\x18\x01 \x01(\tR\n" +
	"sentenceId\x12 \n" +
	"\vdisposition\x18\x02 \x01(\tR\vdisposition\"\x18\n" +
	"\x16SetDispositionResponse\"u\n" +
	"\x15PromoteMappingRequest\x12\x1f\n" +
	"\vsentence_id\x18\x01 \x01(\tR\n" +
	"sentenceId\x12\x1b\n" +
	"\tattack_id\x18\x02 \x01(\tR\battackId\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x01R\n" +
	"confidence\"L\n" +
	"\x16PromoteMappingResponse\x122\n" +
	"\amapping\x18\x01 \x01(\v2\x18.threatmapper.v1.MappingR\amapping\"\xac\x01\n" +
	"\tIngestJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x18\n" +
	"\amessage\x18\x04 \x01(\tR\amessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"l\n" +
	"\x15SubmitDocumentRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\x12\x1d\n" +
	"\n" +
	"created_by\x18\x03 \x01(\tR\tcreatedBy\"P\n" +
	"\x16SubmitDocumentResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\"F\n" +
	"\x11SubmitPathRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x1d\n" +
	"\n" +
	"created_by\x18\x02 \x01(\tR\tcreatedBy\"L\n" +
	"\x12SubmitPathResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\">\n" +
	"\x0eGetJobResponse\x12,\n" +
	"\x03job\x18\x01 \x01(\v2\x1a.threatmapper.v1.IngestJobR\x03job\")\n" +
	"\x0fListJobsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\"B\n" +
	"\x10ListJobsResponse\x12.\n" +
	"\x04jobs\x18\x01 \x03(\v2\x1a.threatmapper.v1.IngestJobR\x04jobs\"8\n" +
	"\x15DeleteDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\x18\n" +
	"\x16DeleteDocumentResponse\"G\n" +
	"\x13ExportCountsRequest\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12\x1c\n" +
	"\tthreshold\x18\x02 \x01(\x05R\tthreshold\"*\n" +
	"\x14ExportCountsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"M\n" +
	"\x15ExportAcceptedRequest\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12 \n" +
	"\vgranularity\x18\x02 \x01(\tR\vgranularity\",\n" +
	"\x16ExportAcceptedResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xe3\x01\n" +
	"\x0fTaxonomyService\x12j\n" +
	"\x11ListAttackObjects\x12).threatmapper.v1.ListAttackObjectsRequest\x1a*.threatmapper.v1.ListAttackObjectsResponse\x12d\n" +
	"\x0fGetAttackObject\x12'.threatmapper.v1.GetAttackObjectRequest\x1a(.threatmapper.v1.GetAttackObjectResponse2\xec\x04\n" +
	"\x0eMappingService\x12b\n" +
	"\x11GetSentenceCounts\x12).threatmapper.v1.GetSentenceCountsRequest\x1a\".threatmapper.v1.GetCountsResponse\x12^\n" +
	"\x0fGetReportCounts\x12'.threatmapper.v1.GetReportCountsRequest\x1a\".threatmapper.v1.GetCountsResponse\x12p\n" +
	"\x13GetAcceptedMappings\x12+.threatmapper.v1.GetAcceptedMappingsRequest\x1a,.threatmapper.v1.GetAcceptedMappingsResponse\x12^\n" +
	"\rListSentences\x12%.threatmapper.v1.ListSentencesRequest\x1a&.threatmapper.v1.ListSentencesResponse\x12a\n" +
	"\x0eSetDisposition\x12&.threatmapper.v1.SetDispositionRequest\x1a'.threatmapper.v1.SetDispositionResponse\x12a\n" +
	"\x0ePromoteMapping\x12&.threatmapper.v1.PromoteMappingRequest\x1a'.threatmapper.v1.PromoteMappingResponse2\xcb\x03\n" +
	"\x10IngestionService\x12a\n" +
	"\x0eSubmitDocument\x12&.threatmapper.v1.SubmitDocumentRequest\x1a'.threatmapper.v1.SubmitDocumentResponse\x12U\n" +
	"\n" +
	"SubmitPath\x12\".threatmapper.v1.SubmitPathRequest\x1a#.threatmapper.v1.SubmitPathResponse\x12I\n" +
	"\x06GetJob\x12\x1e.threatmapper.v1.GetJobRequest\x1a\x1f.threatmapper.v1.GetJobResponse\x12O\n" +
	"\bListJobs\x12 .threatmapper.v1.ListJobsRequest\x1a!.threatmapper.v1.ListJobsResponse\x12a\n" +
	"\x0eDeleteDocument\x12&.threatmapper.v1.DeleteDocumentRequest\x1a'.threatmapper.v1.DeleteDocumentResponse2\xcf\x01\n" +
	"\rExportService\x12[\n" +
	"\fExportCounts\x12$.threatmapper.v1.ExportCountsRequest\x1a%.threatmapper.v1.ExportCountsResponse\x12a\n" +
	"\x0eExportAccepted\x12&.threatmapper.v1.ExportAcceptedRequest\x1a'.threatmapper.v1.ExportAcceptedResponseBRZPgithub.com/joseph-ayodele/threat-mapper/gen/proto/threatmapper/v1;threatmapperv1b\x06proto3"

var (
	file_threatmapper_v1_threatmapper_proto_rawDescOnce sync.Once
	file_threatmapper_v1_threatmapper_proto_rawDescData []byte
)

func file_threatmapper_v1_threatmapper_proto_rawDescGZIP() []byte {
	file_threatmapper_v1_threatmapper_proto_rawDescOnce.Do(func() {
		file_threatmapper_v1_threatmapper_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_threatmapper_v1_threatmapper_proto_rawDesc), len(file_threatmapper_v1_threatmapper_proto_rawDesc)))
	})
	return file_threatmapper_v1_threatmapper_proto_rawDescData
}

var file_threatmapper_v1_threatmapper_proto_msgTypes = make([]protoimpl.MessageInfo, 34)
var file_threatmapper_v1_threatmapper_proto_goTypes = []any{
	(*AttackObject)(nil),                // 0: threatmapper.v1.AttackObject
	(*ListAttackObjectsRequest)(nil),    // 1: threatmapper.v1.ListAttackObjectsRequest
	(*ListAttackObjectsResponse)(nil),   // 2: threatmapper.v1.ListAttackObjectsResponse
	(*GetAttackObjectRequest)(nil),      // 3: threatmapper.v1.GetAttackObjectRequest
	(*GetAttackObjectResponse)(nil),     // 4: threatmapper.v1.GetAttackObjectResponse
	(*Mapping)(nil),                     // 5: threatmapper.v1.Mapping
	(*Sentence)(nil),                    // 6: threatmapper.v1.Sentence
	(*ObjectCounts)(nil),                // 7: threatmapper.v1.ObjectCounts
	(*GetSentenceCountsRequest)(nil),    // 8: threatmapper.v1.GetSentenceCountsRequest
	(*GetReportCountsRequest)(nil),      // 9: threatmapper.v1.GetReportCountsRequest
	(*GetCountsResponse)(nil),           // 10: threatmapper.v1.GetCountsResponse
	(*GetAcceptedMappingsRequest)(nil),  // 11: threatmapper.v1.GetAcceptedMappingsRequest
	(*GetAcceptedMappingsResponse)(nil), // 12: threatmapper.v1.GetAcceptedMappingsResponse
	(*ListSentencesRequest)(nil),        // 13: threatmapper.v1.ListSentencesRequest
	(*ListSentencesResponse)(nil),       // 14: threatmapper.v1.ListSentencesResponse
	(*SetDispositionRequest)(nil),       // 15: threatmapper.v1.SetDispositionRequest
	(*SetDispositionResponse)(nil),      // 16: threatmapper.v1.SetDispositionResponse
	(*PromoteMappingRequest)(nil),       // 17: threatmapper.v1.PromoteMappingRequest
	(*PromoteMappingResponse)(nil),      // 18: threatmapper.v1.PromoteMappingResponse
	(*IngestJob)(nil),                   // 19: threatmapper.v1.IngestJob
	(*SubmitDocumentRequest)(nil),       // 20: threatmapper.v1.SubmitDocumentRequest
	(*SubmitDocumentResponse)(nil),      // 21: threatmapper.v1.SubmitDocumentResponse
	(*SubmitPathRequest)(nil),           // 22: threatmapper.v1.SubmitPathRequest
	(*SubmitPathResponse)(nil),          // 23: threatmapper.v1.SubmitPathResponse
	(*GetJobRequest)(nil),               // 24: threatmapper.v1.GetJobRequest
	(*GetJobResponse)(nil),              // 25: threatmapper.v1.GetJobResponse
	(*ListJobsRequest)(nil),             // 26: threatmapper.v1.ListJobsRequest
	(*ListJobsResponse)(nil),            // 27: threatmapper.v1.ListJobsResponse
	(*DeleteDocumentRequest)(nil),       // 28: threatmapper.v1.DeleteDocumentRequest
	(*DeleteDocumentResponse)(nil),      // 29: threatmapper.v1.DeleteDocumentResponse
	(*ExportCountsRequest)(nil),         // 30: threatmapper.v1.ExportCountsRequest
	(*ExportCountsResponse)(nil),        // 31: threatmapper.v1.ExportCountsResponse
	(*ExportAcceptedRequest)(nil),       // 32: threatmapper.v1.ExportAcceptedRequest
	(*ExportAcceptedResponse)(nil),      // 33: threatmapper.v1.ExportAcceptedResponse
}
var file_threatmapper_v1_threatmapper_proto_depIdxs = []int32{
	0,  // 0: threatmapper.v1.ListAttackObjectsResponse.objects:type_name -> threatmapper.v1.AttackObject
	0,  // 1: threatmapper.v1.GetAttackObjectResponse.object:type_name -> threatmapper.v1.AttackObject
	0,  // 2: threatmapper.v1.ObjectCounts.object:type_name -> threatmapper.v1.AttackObject
	7,  // 3: threatmapper.v1.GetCountsResponse.counts:type_name -> threatmapper.v1.ObjectCounts
	5,  // 4: threatmapper.v1.GetAcceptedMappingsResponse.mappings:type_name -> threatmapper.v1.Mapping
	6,  // 5: threatmapper.v1.ListSentencesResponse.sentences:type_name -> threatmapper.v1.Sentence
	5,  // 6: threatmapper.v1.PromoteMappingResponse.mapping:type_name -> threatmapper.v1.Mapping
	19, // 7: threatmapper.v1.GetJobResponse.job:type_name -> threatmapper.v1.IngestJob
	19, // 8: threatmapper.v1.ListJobsResponse.jobs:type_name -> threatmapper.v1.IngestJob
	1,  // 9: threatmapper.v1.TaxonomyService.ListAttackObjects:input_type -> threatmapper.v1.ListAttackObjectsRequest
	3,  // 10: threatmapper.v1.TaxonomyService.GetAttackObject:input_type -> threatmapper.v1.GetAttackObjectRequest
	8,  // 11: threatmapper.v1.MappingService.GetSentenceCounts:input_type -> threatmapper.v1.GetSentenceCountsRequest
	9,  // 12: threatmapper.v1.MappingService.GetReportCounts:input_type -> threatmapper.v1.GetReportCountsRequest
	11, // 13: threatmapper.v1.MappingService.GetAcceptedMappings:input_type -> threatmapper.v1.GetAcceptedMappingsRequest
	13, // 14: threatmapper.v1.MappingService.ListSentences:input_type -> threatmapper.v1.ListSentencesRequest
	15, // 15: threatmapper.v1.MappingService.SetDisposition:input_type -> threatmapper.v1.SetDispositionRequest
	17, // 16: threatmapper.v1.MappingService.PromoteMapping:input_type -> threatmapper.v1.PromoteMappingRequest
	20, // 17: threatmapper.v1.IngestionService.SubmitDocument:input_type -> threatmapper.v1.SubmitDocumentRequest
	22, // 18: threatmapper.v1.IngestionService.SubmitPath:input_type -> threatmapper.v1.SubmitPathRequest
	24, // 19: threatmapper.v1.IngestionService.GetJob:input_type -> threatmapper.v1.GetJobRequest
	26, // 20: threatmapper.v1.IngestionService.ListJobs:input_type -> threatmapper.v1.ListJobsRequest
	28, // 21: threatmapper.v1.IngestionService.DeleteDocument:input_type -> threatmapper.v1.DeleteDocumentRequest
	30, // 22: threatmapper.v1.ExportService.ExportCounts:input_type -> threatmapper.v1.ExportCountsRequest
	32, // 23: threatmapper.v1.ExportService.ExportAccepted:input_type -> threatmapper.v1.ExportAcceptedRequest
	2,  // 24: threatmapper.v1.TaxonomyService.ListAttackObjects:output_type -> threatmapper.v1.ListAttackObjectsResponse
	4,  // 25: threatmapper.v1.TaxonomyService.GetAttackObject:output_type -> threatmapper.v1.GetAttackObjectResponse
	10, // 26: threatmapper.v1.MappingService.GetSentenceCounts:output_type -> threatmapper.v1.GetCountsResponse
	10, // 27: threatmapper.v1.MappingService.GetReportCounts:output_type -> threatmapper.v1.GetCountsResponse
	12, // 28: threatmapper.v1.MappingService.GetAcceptedMappings:output_type -> threatmapper.v1.GetAcceptedMappingsResponse
	14, // 29: threatmapper.v1.MappingService.ListSentences:output_type -> threatmapper.v1.ListSentencesResponse
	16, // 30: threatmapper.v1.MappingService.SetDisposition:output_type -> threatmapper.v1.SetDispositionResponse
	18, // 31: threatmapper.v1.MappingService.PromoteMapping:output_type -> threatmapper.v1.PromoteMappingResponse
	21, // 32: threatmapper.v1.IngestionService.SubmitDocument:output_type -> threatmapper.v1.SubmitDocumentResponse
	23, // 33: threatmapper.v1.IngestionService.SubmitPath:output_type -> threatmapper.v1.SubmitPathResponse
	25, // 34: threatmapper.v1.IngestionService.GetJob:output_type -> threatmapper.v1.GetJobResponse
	27, // 35: threatmapper.v1.IngestionService.ListJobs:output_type -> threatmapper.v1.ListJobsResponse
	29, // 36: threatmapper.v1.IngestionService.DeleteDocument:output_type -> threatmapper.v1.DeleteDocumentResponse
	31, // 37: threatmapper.v1.ExportService.ExportCounts:output_type -> threatmapper.v1.ExportCountsResponse
	33, // 38: threatmapper.v1.ExportService.ExportAccepted:output_type -> threatmapper.v1.ExportAcceptedResponse
	24, // [24:39] is the sub-list for method output_type
	9,  // [9:24] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_threatmapper_v1_threatmapper_proto_init() }
func file_threatmapper_v1_threatmapper_proto_init() {
	if File_threatmapper_v1_threatmapper_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_threatmapper_v1_threatmapper_proto_rawDesc), len(file_threatmapper_v1_threatmapper_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   34,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_threatmapper_v1_threatmapper_proto_goTypes,
		DependencyIndexes: file_threatmapper_v1_threatmapper_proto_depIdxs,
		MessageInfos:      file_threatmapper_v1_threatmapper_proto_msgTypes,
	}.Build()
	File_threatmapper_v1_threatmapper_proto = out.File
	file_threatmapper_v1_threatmapper_proto_goTypes = nil
	file_threatmapper_v1_threatmapper_proto_depIdxs = nil
}
