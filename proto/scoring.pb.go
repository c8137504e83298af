// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: scoring.proto

package proto

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

type InferRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Prompt        string                 `protobuf:"bytes,1,opt,name=prompt,proto3" json:"prompt,omitempty"`
	ModelIds      []string               `protobuf:"bytes,2,rep,name=model_ids,json=modelIds,proto3" json:"model_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InferRequest) Reset() {
	*x = InferRequest{}
	mi := &file_scoring_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InferRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InferRequest) ProtoMessage() {}

func (x *InferRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scoring_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InferRequest.ProtoReflect.Descriptor instead.
func (*InferRequest) Descriptor() ([]byte, []int) {
	return file_scoring_proto_rawDescGZIP(), []int{0}
}

func (x *InferRequest) GetPrompt() string {
	if x != nil {
		return x.Prompt
	}
	return ""
}

func (x *InferRequest) GetModelIds() []string {
	if x != nil {
		return x.ModelIds
	}
	return nil
}

type ModelPrediction struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	ModelId string                 `protobuf:"bytes,1,opt,name=model_id,json=modelId,proto3" json:"model_id,omitempty"`
	// Roughly standard-normal quality score, higher is better.
	Score float64 `protobuf:"fixed64,2,opt,name=score,proto3" json:"score,omitempty"`
	// Predicted completion length in tokens.
	PredictedLength float64 `protobuf:"fixed64,3,opt,name=predicted_length,json=predictedLength,proto3" json:"predicted_length,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ModelPrediction) Reset() {
	*x = ModelPrediction{}
	mi := &file_scoring_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ModelPrediction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ModelPrediction) ProtoMessage() {}

func (x *ModelPrediction) ProtoReflect() protoreflect.Message {
	mi := &file_scoring_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ModelPrediction.ProtoReflect.Descriptor instead.
func (*ModelPrediction) Descriptor() ([]byte, []int) {
	return file_scoring_proto_rawDescGZIP(), []int{1}
}

func (x *ModelPrediction) GetModelId() string {
	if x != nil {
		return x.ModelId
	}
	return ""
}

func (x *ModelPrediction) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *ModelPrediction) GetPredictedLength() float64 {
	if x != nil {
		return x.PredictedLength
	}
	return 0
}

type InferResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Predictions   []*ModelPrediction     `protobuf:"bytes,1,rep,name=predictions,proto3" json:"predictions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InferResponse) Reset() {
	*x = InferResponse{}
	mi := &file_scoring_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InferResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InferResponse) ProtoMessage() {}

func (x *InferResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scoring_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InferResponse.ProtoReflect.Descriptor instead.
func (*InferResponse) Descriptor() ([]byte, []int) {
	return file_scoring_proto_rawDescGZIP(), []int{2}
}

func (x *InferResponse) GetPredictions() []*ModelPrediction {
	if x != nil {
		return x.Predictions
	}
	return nil
}

type HealthRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HealthRequest) Reset() {
	*x = HealthRequest{}
	mi := &file_scoring_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealthRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthRequest) ProtoMessage() {}

func (x *HealthRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scoring_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HealthRequest.ProtoReflect.Descriptor instead.
func (*HealthRequest) Descriptor() ([]byte, []int) {
	return file_scoring_proto_rawDescGZIP(), []int{3}
}

type HealthResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Healthy       bool                   `protobuf:"varint,1,opt,name=healthy,proto3" json:"healthy,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HealthResponse) Reset() {
	*x = HealthResponse{}
	mi := &file_scoring_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealthResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthResponse) ProtoMessage() {}

func (x *HealthResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scoring_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HealthResponse.ProtoReflect.Descriptor instead.
func (*HealthResponse) Descriptor() ([]byte, []int) {
	return file_scoring_proto_rawDescGZIP(), []int{4}
}

func (x *HealthResponse) GetHealthy() bool {
	if x != nil {
		return x.Healthy
	}
	return false
}

var File_scoring_proto protoreflect.FileDescriptor

const file_scoring_proto_rawDesc = "" +
	"\n" +
	"\rscoring.proto\x12\n" +
	"scoring.v1\"C\n" +
	"\fInferRequest\x12\x16\n" +
	"\x06prompt\x18\x01 \x01(\tR\x06prompt\x12\x1b\n" +
	"\tmodel_ids\x18\x02 \x03(\tR\bmodelIds\"m\n" +
	"\x0fModelPrediction\x12\x19\n" +
	"\bmodel_id\x18\x01 \x01(\tR\amodelId\x12\x14\n" +
	"\x05score\x18\x02 \x01(\x01R\x05score\x12)\n" +
	"\x10predicted_length\x18\x03 \x01(\x01R\x0fpredictedLength\"N\n" +
	"\rInferResponse\x12=\n" +
	"\vpredictions\x18\x01 \x03(\v2\x1b.scoring.v1.ModelPredictionR\vpredictions\"\x0f\n" +
	"\rHealthRequest\"*\n" +
	"\x0eHealthResponse\x12\x18\n" +
	"\ahealthy\x18\x01 \x01(\bR\ahealthy2\x8f\x01\n" +
	"\x0eScoringService\x12<\n" +
	"\x05Infer\x12\x18.scoring.v1.InferRequest\x1a\x19.scoring.v1.InferResponse\x12?\n" +
	"\x06Health\x12\x19.scoring.v1.HealthRequest\x1a\x1a.scoring.v1.HealthResponseB'Z%github.com/llimit/gateway/proto;protob\x06proto3"

var (
	file_scoring_proto_rawDescOnce sync.Once
	file_scoring_proto_rawDescData []byte
)

func file_scoring_proto_rawDescGZIP() []byte {
	file_scoring_proto_rawDescOnce.Do(func() {
		file_scoring_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_scoring_proto_rawDesc), len(file_scoring_proto_rawDesc)))
	})
	return file_scoring_proto_rawDescData
}

var file_scoring_proto_msgTypes = make([]protoimpl.MessageInfo, 5)
var file_scoring_proto_goTypes = []any{
	(*InferRequest)(nil),    // 0: scoring.v1.InferRequest
	(*ModelPrediction)(nil), // 1: scoring.v1.ModelPrediction
	(*InferResponse)(nil),   // 2: scoring.v1.InferResponse
	(*HealthRequest)(nil),   // 3: scoring.v1.HealthRequest
	(*HealthResponse)(nil),  // 4: scoring.v1.HealthResponse
}
var file_scoring_proto_depIdxs = []int32{
	1, // 0: scoring.v1.InferResponse.predictions:type_name -> scoring.v1.ModelPrediction
	0, // 1: scoring.v1.ScoringService.Infer:input_type -> scoring.v1.InferRequest
	3, // 2: scoring.v1.ScoringService.Health:input_type -> scoring.v1.HealthRequest
	2, // 3: scoring.v1.ScoringService.Infer:output_type -> scoring.v1.InferResponse
	4, // 4: scoring.v1.ScoringService.Health:output_type -> scoring.v1.HealthResponse
	3, // [3:5] is the sub-list for method output_type
	1, // [1:3] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_scoring_proto_init() }
func file_scoring_proto_init() {
	if File_scoring_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_scoring_proto_rawDesc), len(file_scoring_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   5,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_scoring_proto_goTypes,
		DependencyIndexes: file_scoring_proto_depIdxs,
		MessageInfos:      file_scoring_proto_msgTypes,
	}.Build()
	File_scoring_proto = out.File
	file_scoring_proto_goTypes = nil
	file_scoring_proto_depIdxs = nil
}
