// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: diagnostic.proto

package pb

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

type ResponseStatus int32

const (
	ResponseStatus_PROCESSING ResponseStatus = 0
	ResponseStatus_COMPLETED  ResponseStatus = 1
	ResponseStatus_ERROR      ResponseStatus = 2
)

// Enum value maps for ResponseStatus.
var (
	ResponseStatus_name = map[int32]string{
		0: "PROCESSING",
		1: "COMPLETED",
		2: "ERROR",
	}
	ResponseStatus_value = map[string]int32{
		"PROCESSING": 0,
		"COMPLETED":  1,
		"ERROR":      2,
	}
)

func (x ResponseStatus) Enum() *ResponseStatus {
	p := new(ResponseStatus)
	*p = x
	return p
}

func (x ResponseStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ResponseStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_diagnostic_proto_enumTypes[0].Descriptor()
}

func (ResponseStatus) Type() protoreflect.EnumType {
	return &file_diagnostic_proto_enumTypes[0]
}

func (x ResponseStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ResponseStatus.Descriptor instead.
func (ResponseStatus) EnumDescriptor() ([]byte, []int) {
	return file_diagnostic_proto_rawDescGZIP(), []int{0}
}

type HealthCheckRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HealthCheckRequest) Reset() {
	*x = HealthCheckRequest{}
	mi := &file_diagnostic_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealthCheckRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthCheckRequest) ProtoMessage() {}

func (x *HealthCheckRequest) ProtoReflect() protoreflect.Message {
	mi := &file_diagnostic_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HealthCheckRequest.ProtoReflect.Descriptor instead.
func (*HealthCheckRequest) Descriptor() ([]byte, []int) {
	return file_diagnostic_proto_rawDescGZIP(), []int{0}
}

type HealthStatus struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	IsHealthy     bool                   `protobuf:"varint,1,opt,name=is_healthy,json=isHealthy,proto3" json:"is_healthy,omitempty"`
	ModelLoaded   string                 `protobuf:"bytes,2,opt,name=model_loaded,json=modelLoaded,proto3" json:"model_loaded,omitempty"`
	UptimeSeconds float64                `protobuf:"fixed64,3,opt,name=uptime_seconds,json=uptimeSeconds,proto3" json:"uptime_seconds,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HealthStatus) Reset() {
	*x = HealthStatus{}
	mi := &file_diagnostic_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealthStatus) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthStatus) ProtoMessage() {}

func (x *HealthStatus) ProtoReflect() protoreflect.Message {
	mi := &file_diagnostic_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HealthStatus.ProtoReflect.Descriptor instead.
func (*HealthStatus) Descriptor() ([]byte, []int) {
	return file_diagnostic_proto_rawDescGZIP(), []int{1}
}

func (x *HealthStatus) GetIsHealthy() bool {
	if x != nil {
		return x.IsHealthy
	}
	return false
}

func (x *HealthStatus) GetModelLoaded() string {
	if x != nil {
		return x.ModelLoaded
	}
	return ""
}

func (x *HealthStatus) GetUptimeSeconds() float64 {
	if x != nil {
		return x.UptimeSeconds
	}
	return 0
}

type DiagnosticOptions struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	ConfidenceThreshold float64                `protobuf:"fixed64,1,opt,name=confidence_threshold,json=confidenceThreshold,proto3" json:"confidence_threshold,omitempty"`
	IncludeSegmentation bool                   `protobuf:"varint,2,opt,name=include_segmentation,json=includeSegmentation,proto3" json:"include_segmentation,omitempty"`
	IncludeHeatmap      bool                   `protobuf:"varint,3,opt,name=include_heatmap,json=includeHeatmap,proto3" json:"include_heatmap,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *DiagnosticOptions) Reset() {
	*x = DiagnosticOptions{}
	mi := &file_diagnostic_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DiagnosticOptions) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DiagnosticOptions) ProtoMessage() {}

func (x *DiagnosticOptions) ProtoReflect() protoreflect.Message {
	mi := &file_diagnostic_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DiagnosticOptions.ProtoReflect.Descriptor instead.
func (*DiagnosticOptions) Descriptor() ([]byte, []int) {
	return file_diagnostic_proto_rawDescGZIP(), []int{2}
}

func (x *DiagnosticOptions) GetConfidenceThreshold() float64 {
	if x != nil {
		return x.ConfidenceThreshold
	}
	return 0
}

func (x *DiagnosticOptions) GetIncludeSegmentation() bool {
	if x != nil {
		return x.IncludeSegmentation
	}
	return false
}

func (x *DiagnosticOptions) GetIncludeHeatmap() bool {
	if x != nil {
		return x.IncludeHeatmap
	}
	return false
}

type DicomRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	RequestId string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Payload   []byte                 `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	// Format hint: "auto", "dicom", "png", "jpeg".
	Format        string             `protobuf:"bytes,3,opt,name=format,proto3" json:"format,omitempty"`
	Options       *DiagnosticOptions `protobuf:"bytes,4,opt,name=options,proto3" json:"options,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DicomRequest) Reset() {
	*x = DicomRequest{}
	mi := &file_diagnostic_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DicomRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DicomRequest) ProtoMessage() {}

func (x *DicomRequest) ProtoReflect() protoreflect.Message {
	mi := &file_diagnostic_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DicomRequest.ProtoReflect.Descriptor instead.
func (*DicomRequest) Descriptor() ([]byte, []int) {
	return file_diagnostic_proto_rawDescGZIP(), []int{3}
}

func (x *DicomRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *DicomRequest) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *DicomRequest) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *DicomRequest) GetOptions() *DiagnosticOptions {
	if x != nil {
		return x.Options
	}
	return nil
}

type UploadChunk struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Content:
	//
	//	*UploadChunk_Metadata
	//	*UploadChunk_Data
	Content       isUploadChunk_Content `protobuf_oneof:"content"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadChunk) Reset() {
	*x = UploadChunk{}
	mi := &file_diagnostic_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadChunk) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadChunk) ProtoMessage() {}

func (x *UploadChunk) ProtoReflect() protoreflect.Message {
	mi := &file_diagnostic_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadChunk.ProtoReflect.Descriptor instead.
func (*UploadChunk) Descriptor() ([]byte, []int) {
	return file_diagnostic_proto_rawDescGZIP(), []int{4}
}

func (x *UploadChunk) GetContent() isUploadChunk_Content {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *UploadChunk) GetMetadata() *UploadMetadata {
	if x != nil {
		if x, ok := x.Content.(*UploadChunk_Metadata); ok {
			return x.Metadata
		}
	}
	return nil
}

func (x *UploadChunk) GetData() *DataChunk {
	if x != nil {
		if x, ok := x.Content.(*UploadChunk_Data); ok {
			return x.Data
		}
	}
	return nil
}

type isUploadChunk_Content interface {
	isUploadChunk_Content()
}

type UploadChunk_Metadata struct {
	Metadata *UploadMetadata `protobuf:"bytes,1,opt,name=metadata,proto3,oneof"`
}

type UploadChunk_Data struct {
	Data *DataChunk `protobuf:"bytes,2,opt,name=data,proto3,oneof"`
}

func (*UploadChunk_Metadata) isUploadChunk_Content() {}

func (*UploadChunk_Data) isUploadChunk_Content() {}

type UploadMetadata struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequestId     string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	TotalBytes    int64                  `protobuf:"varint,2,opt,name=total_bytes,json=totalBytes,proto3" json:"total_bytes,omitempty"`
	Format        string                 `protobuf:"bytes,3,opt,name=format,proto3" json:"format,omitempty"`
	Options       *DiagnosticOptions     `protobuf:"bytes,4,opt,name=options,proto3" json:"options,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadMetadata) Reset() {
	*x = UploadMetadata{}
	mi := &file_diagnostic_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadMetadata) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadMetadata) ProtoMessage() {}

func (x *UploadMetadata) ProtoReflect() protoreflect.Message {
	mi := &file_diagnostic_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadMetadata.ProtoReflect.Descriptor instead.
func (*UploadMetadata) Descriptor() ([]byte, []int) {
	return file_diagnostic_proto_rawDescGZIP(), []int{5}
}

func (x *UploadMetadata) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *UploadMetadata) GetTotalBytes() int64 {
	if x != nil {
		return x.TotalBytes
	}
	return 0
}

func (x *UploadMetadata) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *UploadMetadata) GetOptions() *DiagnosticOptions {
	if x != nil {
		return x.Options
	}
	return nil
}

type DataChunk struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Sequence numbers start at zero and must be contiguous.
	Sequence      uint64 `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Payload       []byte `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DataChunk) Reset() {
	*x = DataChunk{}
	mi := &file_diagnostic_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DataChunk) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DataChunk) ProtoMessage() {}

func (x *DataChunk) ProtoReflect() protoreflect.Message {
	mi := &file_diagnostic_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DataChunk.ProtoReflect.Descriptor instead.
func (*DataChunk) Descriptor() ([]byte, []int) {
	return file_diagnostic_proto_rawDescGZIP(), []int{6}
}

func (x *DataChunk) GetSequence() uint64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

func (x *DataChunk) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

type DiagnosticResponse struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	RequestId string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Status    ResponseStatus         `protobuf:"varint,2,opt,name=status,proto3,enum=irmsia.diagnostic.v1.ResponseStatus" json:"status,omitempty"`
	// Progress in [0,1]; upload progress is capped at 0.3.
	Progress      float64           `protobuf:"fixed64,3,opt,name=progress,proto3" json:"progress,omitempty"`
	Error         string            `protobuf:"bytes,4,opt,name=error,proto3" json:"error,omitempty"`
	Result        *DiagnosticResult `protobuf:"bytes,5,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DiagnosticResponse) Reset() {
	*x = DiagnosticResponse{}
	mi := &file_diagnostic_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DiagnosticResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DiagnosticResponse) ProtoMessage() {}

func (x *DiagnosticResponse) ProtoReflect() protoreflect.Message {
	mi := &file_diagnostic_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DiagnosticResponse.ProtoReflect.Descriptor instead.
func (*DiagnosticResponse) Descriptor() ([]byte, []int) {
	return file_diagnostic_proto_rawDescGZIP(), []int{7}
}

func (x *DiagnosticResponse) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *DiagnosticResponse) GetStatus() ResponseStatus {
	if x != nil {
		return x.Status
	}
	return ResponseStatus_PROCESSING
}

func (x *DiagnosticResponse) GetProgress() float64 {
	if x != nil {
		return x.Progress
	}
	return 0
}

func (x *DiagnosticResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *DiagnosticResponse) GetResult() *DiagnosticResult {
	if x != nil {
		return x.Result
	}
	return nil
}

type Region struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	X              int32                  `protobuf:"varint,2,opt,name=x,proto3" json:"x,omitempty"`
	Y              int32                  `protobuf:"varint,3,opt,name=y,proto3" json:"y,omitempty"`
	W              int32                  `protobuf:"varint,4,opt,name=w,proto3" json:"w,omitempty"`
	H              int32                  `protobuf:"varint,5,opt,name=h,proto3" json:"h,omitempty"`
	AreaPx         int64                  `protobuf:"varint,6,opt,name=area_px,json=areaPx,proto3" json:"area_px,omitempty"`
	PerimeterPx    float64                `protobuf:"fixed64,7,opt,name=perimeter_px,json=perimeterPx,proto3" json:"perimeter_px,omitempty"`
	Circularity    float64                `protobuf:"fixed64,8,opt,name=circularity,proto3" json:"circularity,omitempty"`
	Confidence     float64                `protobuf:"fixed64,9,opt,name=confidence,proto3" json:"confidence,omitempty"`
	WidthMm        float64                `protobuf:"fixed64,10,opt,name=width_mm,json=widthMm,proto3" json:"width_mm,omitempty"`
	HeightMm       float64                `protobuf:"fixed64,11,opt,name=height_mm,json=heightMm,proto3" json:"height_mm,omitempty"`
	AreaMm2        float64                `protobuf:"fixed64,12,opt,name=area_mm2,json=areaMm2,proto3" json:"area_mm2,omitempty"`
	PerimeterMm    float64                `protobuf:"fixed64,13,opt,name=perimeter_mm,json=perimeterMm,proto3" json:"perimeter_mm,omitempty"`
	PathologyLabel string                 `protobuf:"bytes,14,opt,name=pathology_label,json=pathologyLabel,proto3" json:"pathology_label,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Region) Reset() {
	*x = Region{}
	mi := &file_diagnostic_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Region) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Region) ProtoMessage() {}

func (x *Region) ProtoReflect() protoreflect.Message {
	mi := &file_diagnostic_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Region.ProtoReflect.Descriptor instead.
func (*Region) Descriptor() ([]byte, []int) {
	return file_diagnostic_proto_rawDescGZIP(), []int{8}
}

func (x *Region) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Region) GetX() int32 {
	if x != nil {
		return x.X
	}
	return 0
}

func (x *Region) GetY() int32 {
	if x != nil {
		return x.Y
	}
	return 0
}

func (x *Region) GetW() int32 {
	if x != nil {
		return x.W
	}
	return 0
}

func (x *Region) GetH() int32 {
	if x != nil {
		return x.H
	}
	return 0
}

func (x *Region) GetAreaPx() int64 {
	if x != nil {
		return x.AreaPx
	}
	return 0
}

func (x *Region) GetPerimeterPx() float64 {
	if x != nil {
		return x.PerimeterPx
	}
	return 0
}

func (x *Region) GetCircularity() float64 {
	if x != nil {
		return x.Circularity
	}
	return 0
}

func (x *Region) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Region) GetWidthMm() float64 {
	if x != nil {
		return x.WidthMm
	}
	return 0
}

func (x *Region) GetHeightMm() float64 {
	if x != nil {
		return x.HeightMm
	}
	return 0
}

func (x *Region) GetAreaMm2() float64 {
	if x != nil {
		return x.AreaMm2
	}
	return 0
}

func (x *Region) GetPerimeterMm() float64 {
	if x != nil {
		return x.PerimeterMm
	}
	return 0
}

func (x *Region) GetPathologyLabel() string {
	if x != nil {
		return x.PathologyLabel
	}
	return ""
}

type Heatmap struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	Width  int32                  `protobuf:"varint,1,opt,name=width,proto3" json:"width,omitempty"`
	Height int32                  `protobuf:"varint,2,opt,name=height,proto3" json:"height,omitempty"`
	// Row-major attention values in [0,1].
	Values        []float32 `protobuf:"fixed32,3,rep,packed,name=values,proto3" json:"values,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Heatmap) Reset() {
	*x = Heatmap{}
	mi := &file_diagnostic_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Heatmap) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Heatmap) ProtoMessage() {}

func (x *Heatmap) ProtoReflect() protoreflect.Message {
	mi := &file_diagnostic_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Heatmap.ProtoReflect.Descriptor instead.
func (*Heatmap) Descriptor() ([]byte, []int) {
	return file_diagnostic_proto_rawDescGZIP(), []int{9}
}

func (x *Heatmap) GetWidth() int32 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *Heatmap) GetHeight() int32 {
	if x != nil {
		return x.Height
	}
	return 0
}

func (x *Heatmap) GetValues() []float32 {
	if x != nil {
		return x.Values
	}
	return nil
}

type SegmentationMask struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	Width  int32                  `protobuf:"varint,1,opt,name=width,proto3" json:"width,omitempty"`
	Height int32                  `protobuf:"varint,2,opt,name=height,proto3" json:"height,omitempty"`
	// One byte per pixel, row-major, values 0 or 1.
	Bits          []byte `protobuf:"bytes,3,opt,name=bits,proto3" json:"bits,omitempty"`
	Components    int32  `protobuf:"varint,4,opt,name=components,proto3" json:"components,omitempty"`
	AreaPx        int64  `protobuf:"varint,5,opt,name=area_px,json=areaPx,proto3" json:"area_px,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SegmentationMask) Reset() {
	*x = SegmentationMask{}
	mi := &file_diagnostic_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SegmentationMask) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SegmentationMask) ProtoMessage() {}

func (x *SegmentationMask) ProtoReflect() protoreflect.Message {
	mi := &file_diagnostic_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SegmentationMask.ProtoReflect.Descriptor instead.
func (*SegmentationMask) Descriptor() ([]byte, []int) {
	return file_diagnostic_proto_rawDescGZIP(), []int{10}
}

func (x *SegmentationMask) GetWidth() int32 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *SegmentationMask) GetHeight() int32 {
	if x != nil {
		return x.Height
	}
	return 0
}

func (x *SegmentationMask) GetBits() []byte {
	if x != nil {
		return x.Bits
	}
	return nil
}

func (x *SegmentationMask) GetComponents() int32 {
	if x != nil {
		return x.Components
	}
	return 0
}

func (x *SegmentationMask) GetAreaPx() int64 {
	if x != nil {
		return x.AreaPx
	}
	return 0
}

type Measurements struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	NumRegions          int32                  `protobuf:"varint,1,opt,name=num_regions,json=numRegions,proto3" json:"num_regions,omitempty"`
	TotalRegionAreaPx   int64                  `protobuf:"varint,2,opt,name=total_region_area_px,json=totalRegionAreaPx,proto3" json:"total_region_area_px,omitempty"`
	LargestRegionAreaPx int64                  `protobuf:"varint,3,opt,name=largest_region_area_px,json=largestRegionAreaPx,proto3" json:"largest_region_area_px,omitempty"`
	TotalRegionAreaMm2  float64                `protobuf:"fixed64,4,opt,name=total_region_area_mm2,json=totalRegionAreaMm2,proto3" json:"total_region_area_mm2,omitempty"`
	MaskComponents      int32                  `protobuf:"varint,5,opt,name=mask_components,json=maskComponents,proto3" json:"mask_components,omitempty"`
	SegmentedAreaPx     int64                  `protobuf:"varint,6,opt,name=segmented_area_px,json=segmentedAreaPx,proto3" json:"segmented_area_px,omitempty"`
	SegmentedAreaMm2    float64                `protobuf:"fixed64,7,opt,name=segmented_area_mm2,json=segmentedAreaMm2,proto3" json:"segmented_area_mm2,omitempty"`
	MeanIntensity       float64                `protobuf:"fixed64,8,opt,name=mean_intensity,json=meanIntensity,proto3" json:"mean_intensity,omitempty"`
	StdIntensity        float64                `protobuf:"fixed64,9,opt,name=std_intensity,json=stdIntensity,proto3" json:"std_intensity,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *Measurements) Reset() {
	*x = Measurements{}
	mi := &file_diagnostic_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Measurements) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Measurements) ProtoMessage() {}

func (x *Measurements) ProtoReflect() protoreflect.Message {
	mi := &file_diagnostic_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Measurements.ProtoReflect.Descriptor instead.
func (*Measurements) Descriptor() ([]byte, []int) {
	return file_diagnostic_proto_rawDescGZIP(), []int{11}
}

func (x *Measurements) GetNumRegions() int32 {
	if x != nil {
		return x.NumRegions
	}
	return 0
}

func (x *Measurements) GetTotalRegionAreaPx() int64 {
	if x != nil {
		return x.TotalRegionAreaPx
	}
	return 0
}

func (x *Measurements) GetLargestRegionAreaPx() int64 {
	if x != nil {
		return x.LargestRegionAreaPx
	}
	return 0
}

func (x *Measurements) GetTotalRegionAreaMm2() float64 {
	if x != nil {
		return x.TotalRegionAreaMm2
	}
	return 0
}

func (x *Measurements) GetMaskComponents() int32 {
	if x != nil {
		return x.MaskComponents
	}
	return 0
}

func (x *Measurements) GetSegmentedAreaPx() int64 {
	if x != nil {
		return x.SegmentedAreaPx
	}
	return 0
}

func (x *Measurements) GetSegmentedAreaMm2() float64 {
	if x != nil {
		return x.SegmentedAreaMm2
	}
	return 0
}

func (x *Measurements) GetMeanIntensity() float64 {
	if x != nil {
		return x.MeanIntensity
	}
	return 0
}

func (x *Measurements) GetStdIntensity() float64 {
	if x != nil {
		return x.StdIntensity
	}
	return 0
}

type DiagnosticResult struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	PrimaryClass    string                 `protobuf:"bytes,1,opt,name=primary_class,json=primaryClass,proto3" json:"primary_class,omitempty"`
	Confidence      float64                `protobuf:"fixed64,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Probabilities   map[string]float64     `protobuf:"bytes,3,rep,name=probabilities,proto3" json:"probabilities,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"fixed64,2,opt,name=value"`
	HasAnomaly      bool                   `protobuf:"varint,4,opt,name=has_anomaly,json=hasAnomaly,proto3" json:"has_anomaly,omitempty"`
	Severity        string                 `protobuf:"bytes,5,opt,name=severity,proto3" json:"severity,omitempty"`
	Urgency         string                 `protobuf:"bytes,6,opt,name=urgency,proto3" json:"urgency,omitempty"`
	Regions         []*Region              `protobuf:"bytes,7,rep,name=regions,proto3" json:"regions,omitempty"`
	Mask            *SegmentationMask      `protobuf:"bytes,8,opt,name=mask,proto3" json:"mask,omitempty"`
	Measurements    *Measurements          `protobuf:"bytes,9,opt,name=measurements,proto3" json:"measurements,omitempty"`
	Recommendations []string               `protobuf:"bytes,10,rep,name=recommendations,proto3" json:"recommendations,omitempty"`
	Backend         string                 `protobuf:"bytes,11,opt,name=backend,proto3" json:"backend,omitempty"`
	Heatmap         *Heatmap               `protobuf:"bytes,12,opt,name=heatmap,proto3" json:"heatmap,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *DiagnosticResult) Reset() {
	*x = DiagnosticResult{}
	mi := &file_diagnostic_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DiagnosticResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DiagnosticResult) ProtoMessage() {}

func (x *DiagnosticResult) ProtoReflect() protoreflect.Message {
	mi := &file_diagnostic_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DiagnosticResult.ProtoReflect.Descriptor instead.
func (*DiagnosticResult) Descriptor() ([]byte, []int) {
	return file_diagnostic_proto_rawDescGZIP(), []int{12}
}

func (x *DiagnosticResult) GetPrimaryClass() string {
	if x != nil {
		return x.PrimaryClass
	}
	return ""
}

func (x *DiagnosticResult) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *DiagnosticResult) GetProbabilities() map[string]float64 {
	if x != nil {
		return x.Probabilities
	}
	return nil
}

func (x *DiagnosticResult) GetHasAnomaly() bool {
	if x != nil {
		return x.HasAnomaly
	}
	return false
}

func (x *DiagnosticResult) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

func (x *DiagnosticResult) GetUrgency() string {
	if x != nil {
		return x.Urgency
	}
	return ""
}

func (x *DiagnosticResult) GetRegions() []*Region {
	if x != nil {
		return x.Regions
	}
	return nil
}

func (x *DiagnosticResult) GetMask() *SegmentationMask {
	if x != nil {
		return x.Mask
	}
	return nil
}

func (x *DiagnosticResult) GetMeasurements() *Measurements {
	if x != nil {
		return x.Measurements
	}
	return nil
}

func (x *DiagnosticResult) GetRecommendations() []string {
	if x != nil {
		return x.Recommendations
	}
	return nil
}

func (x *DiagnosticResult) GetBackend() string {
	if x != nil {
		return x.Backend
	}
	return ""
}

func (x *DiagnosticResult) GetHeatmap() *Heatmap {
	if x != nil {
		return x.Heatmap
	}
	return nil
}

var File_diagnostic_proto protoreflect.FileDescriptor

const file_diagnostic_proto_rawDesc = "" +
	"\n" +
	"\x10diagnostic.proto\x12\x14irmsia.diagnostic.v1\"\x14\n" +
	"\x12HealthCheckRequest\"w\n" +
	"\fHealthStatus\x12\x1d\n" +
	"\n" +
	"is_healthy\x18\x01 \x01(\bR\tisHealthy\x12!\n" +
	"\fmodel_loaded\x18\x02 \x01(\tR\vmodelLoaded\x12%\n" +
	"\x0euptime_seconds\x18\x03 \x01(\x01R\ruptimeSeconds\"\xa2\x01\n" +
	"\x11DiagnosticOptions\x121\n" +
	"\x14confidence_threshold\x18\x01 \x01(\x01R\x13confidenceThreshold\x121\n" +
	"\x14include_segmentation\x18\x02 \x01(\bR\x13includeSegmentation\x12'\n" +
	"\x0finclude_heatmap\x18\x03 \x01(\bR\x0eincludeHeatmap\"\xa2\x01\n" +
	"\fDicomRequest\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\x12\x18\n" +
	"\apayload\x18\x02 \x01(\fR\apayload\x12\x16\n" +
	"\x06format\x18\x03 \x01(\tR\x06format\x12A\n" +
	"\aoptions\x18\x04 \x01(\v2'.irmsia.diagnostic.v1.DiagnosticOptionsR\aoptions\"\x93\x01\n" +
	"\vUploadChunk\x12B\n" +
	"\bmetadata\x18\x01 \x01(\v2$.irmsia.diagnostic.v1.UploadMetadataH\x00R\bmetadata\x125\n" +
	"\x04data\x18\x02 \x01(\v2\x1f.irmsia.diagnostic.v1.DataChunkH\x00R\x04dataB\t\n" +
	"\acontent\"\xab\x01\n" +
	"\x0eUploadMetadata\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\x12\x1f\n" +
	"\vtotal_bytes\x18\x02 \x01(\x03R\n" +
	"totalBytes\x12\x16\n" +
	"\x06format\x18\x03 \x01(\tR\x06format\x12A\n" +
	"\aoptions\x18\x04 \x01(\v2'.irmsia.diagnostic.v1.DiagnosticOptionsR\aoptions\"A\n" +
	"\tDataChunk\x12\x1a\n" +
	"\bsequence\x18\x01 \x01(\x04R\bsequence\x12\x18\n" +
	"\apayload\x18\x02 \x01(\fR\apayload\"\xe3\x01\n" +
	"\x12DiagnosticResponse\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\x12<\n" +
	"\x06status\x18\x02 \x01(\x0e2$.irmsia.diagnostic.v1.ResponseStatusR\x06status\x12\x1a\n" +
	"\bprogress\x18\x03 \x01(\x01R\bprogress\x12\x14\n" +
	"\x05error\x18\x04 \x01(\tR\x05error\x12>\n" +
	"\x06result\x18\x05 \x01(\v2&.irmsia.diagnostic.v1.DiagnosticResultR\x06result\"\xed\x02\n" +
	"\x06Region\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x05R\x02id\x12\f\n" +
	"\x01x\x18\x02 \x01(\x05R\x01x\x12\f\n" +
	"\x01y\x18\x03 \x01(\x05R\x01y\x12\f\n" +
	"\x01w\x18\x04 \x01(\x05R\x01w\x12\f\n" +
	"\x01h\x18\x05 \x01(\x05R\x01h\x12\x17\n" +
	"\aarea_px\x18\x06 \x01(\x03R\x06areaPx\x12!\n" +
	"\fperimeter_px\x18\a \x01(\x01R\vperimeterPx\x12 \n" +
	"\vcircularity\x18\b \x01(\x01R\vcircularity\x12\x1e\n" +
	"\n" +
	"confidence\x18\t \x01(\x01R\n" +
	"confidence\x12\x19\n" +
	"\bwidth_mm\x18\n" +
	" \x01(\x01R\awidthMm\x12\x1b\n" +
	"\theight_mm\x18\v \x01(\x01R\bheightMm\x12\x19\n" +
	"\barea_mm2\x18\f \x01(\x01R\aareaMm2\x12!\n" +
	"\fperimeter_mm\x18\r \x01(\x01R\vperimeterMm\x12'\n" +
	"\x0fpathology_label\x18\x0e \x01(\tR\x0epathologyLabel\"O\n" +
	"\aHeatmap\x12\x14\n" +
	"\x05width\x18\x01 \x01(\x05R\x05width\x12\x16\n" +
	"\x06height\x18\x02 \x01(\x05R\x06height\x12\x16\n" +
	"\x06values\x18\x03 \x03(\x02R\x06values\"\x8d\x01\n" +
	"\x10SegmentationMask\x12\x14\n" +
	"\x05width\x18\x01 \x01(\x05R\x05width\x12\x16\n" +
	"\x06height\x18\x02 \x01(\x05R\x06height\x12\x12\n" +
	"\x04bits\x18\x03 \x01(\fR\x04bits\x12\x1e\n" +
	"\n" +
	"components\x18\x04 \x01(\x05R\n" +
	"components\x12\x17\n" +
	"\aarea_px\x18\x05 \x01(\x03R\x06areaPx\"\x97\x03\n" +
	"\fMeasurements\x12\x1f\n" +
	"\vnum_regions\x18\x01 \x01(\x05R\n" +
	"numRegions\x12/\n" +
	"\x14total_region_area_px\x18\x02 \x01(\x03R\x11totalRegionAreaPx\x123\n" +
	"\x16largest_region_area_px\x18\x03 \x01(\x03R\x13largestRegionAreaPx\x121\n" +
	"\x15total_region_area_mm2\x18\x04 \x01(\x01R\x12totalRegionAreaMm2\x12'\n" +
	"\x0fmask_components\x18\x05 \x01(\x05R\x0emaskComponents\x12*\n" +
	"\x11segmented_area_px\x18\x06 \x01(\x03R\x0fsegmentedAreaPx\x12,\n" +
	"\x12segmented_area_mm2\x18\a \x01(\x01R\x10segmentedAreaMm2\x12%\n" +
	"\x0emean_intensity\x18\b \x01(\x01R\rmeanIntensity\x12#\n" +
	"\rstd_intensity\x18\t \x01(\x01R\fstdIntensity\"\x8a\x05\n" +
	"\x10DiagnosticResult\x12#\n" +
	"\rprimary_class\x18\x01 \x01(\tR\fprimaryClass\x12\x1e\n" +
	"\n" +
	"confidence\x18\x02 \x01(\x01R\n" +
	"confidence\x12_\n" +
	"\rprobabilities\x18\x03 \x03(\v29.irmsia.diagnostic.v1.DiagnosticResult.ProbabilitiesEntryR\rprobabilities\x12\x1f\n" +
	"\vhas_anomaly\x18\x04 \x01(\bR\n" +
	"hasAnomaly\x12\x1a\n" +
	"\bseverity\x18\x05 \x01(\tR\bseverity\x12\x18\n" +
	"\aurgency\x18\x06 \x01(\tR\aurgency\x126\n" +
	"\aregions\x18\a \x03(\v2\x1c.irmsia.diagnostic.v1.RegionR\aregions\x12:\n" +
	"\x04mask\x18\b \x01(\v2&.irmsia.diagnostic.v1.SegmentationMaskR\x04mask\x12F\n" +
	"\fmeasurements\x18\t \x01(\v2\".irmsia.diagnostic.v1.MeasurementsR\fmeasurements\x12(\n" +
	"\x0frecommendations\x18\n" +
	" \x03(\tR\x0frecommendations\x12\x18\n" +
	"\abackend\x18\v \x01(\tR\abackend\x127\n" +
	"\aheatmap\x18\f \x01(\v2\x1d.irmsia.diagnostic.v1.HeatmapR\aheatmap\x1a@\n" +
	"\x12ProbabilitiesEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x01R\x05value:\x028\x01*:\n" +
	"\x0eResponseStatus\x12\x0e\n" +
	"\n" +
	"PROCESSING\x10\x00\x12\r\n" +
	"\tCOMPLETED\x10\x01\x12\t\n" +
	"\x05ERROR\x10\x022\x90\x03\n" +
	"\x11DiagnosticService\x12[\n" +
	"\vHealthCheck\x12(.irmsia.diagnostic.v1.HealthCheckRequest\x1a\".irmsia.diagnostic.v1.HealthStatus\x12X\n" +
	"\bDiagnose\x12\".irmsia.diagnostic.v1.DicomRequest\x1a(.irmsia.diagnostic.v1.DiagnosticResponse\x12a\n" +
	"\x0eDiagnoseStream\x12!.irmsia.diagnostic.v1.UploadChunk\x1a(.irmsia.diagnostic.v1.DiagnosticResponse(\x010\x01\x12a\n" +
	"\rDiagnoseBatch\x12\".irmsia.diagnostic.v1.DicomRequest\x1a(.irmsia.diagnostic.v1.DiagnosticResponse(\x010\x01B=Z;github.com/irmsia-data/anomaly.report/internal/transport/pbb\x06proto3"

var (
	file_diagnostic_proto_rawDescOnce sync.Once
	file_diagnostic_proto_rawDescData []byte
)

func file_diagnostic_proto_rawDescGZIP() []byte {
	file_diagnostic_proto_rawDescOnce.Do(func() {
		file_diagnostic_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_diagnostic_proto_rawDesc), len(file_diagnostic_proto_rawDesc)))
	})
	return file_diagnostic_proto_rawDescData
}

var file_diagnostic_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_diagnostic_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_diagnostic_proto_goTypes = []any{
	(ResponseStatus)(0),        // 0: irmsia.diagnostic.v1.ResponseStatus
	(*HealthCheckRequest)(nil), // 1: irmsia.diagnostic.v1.HealthCheckRequest
	(*HealthStatus)(nil),       // 2: irmsia.diagnostic.v1.HealthStatus
	(*DiagnosticOptions)(nil),  // 3: irmsia.diagnostic.v1.DiagnosticOptions
	(*DicomRequest)(nil),       // 4: irmsia.diagnostic.v1.DicomRequest
	(*UploadChunk)(nil),        // 5: irmsia.diagnostic.v1.UploadChunk
	(*UploadMetadata)(nil),     // 6: irmsia.diagnostic.v1.UploadMetadata
	(*DataChunk)(nil),          // 7: irmsia.diagnostic.v1.DataChunk
	(*DiagnosticResponse)(nil), // 8: irmsia.diagnostic.v1.DiagnosticResponse
	(*Region)(nil),             // 9: irmsia.diagnostic.v1.Region
	(*Heatmap)(nil),            // 10: irmsia.diagnostic.v1.Heatmap
	(*SegmentationMask)(nil),   // 11: irmsia.diagnostic.v1.SegmentationMask
	(*Measurements)(nil),       // 12: irmsia.diagnostic.v1.Measurements
	(*DiagnosticResult)(nil),   // 13: irmsia.diagnostic.v1.DiagnosticResult
	nil,                        // 14: irmsia.diagnostic.v1.DiagnosticResult.ProbabilitiesEntry
}
var file_diagnostic_proto_depIdxs = []int32{
	3,  // 0: irmsia.diagnostic.v1.DicomRequest.options:type_name -> irmsia.diagnostic.v1.DiagnosticOptions
	6,  // 1: irmsia.diagnostic.v1.UploadChunk.metadata:type_name -> irmsia.diagnostic.v1.UploadMetadata
	7,  // 2: irmsia.diagnostic.v1.UploadChunk.data:type_name -> irmsia.diagnostic.v1.DataChunk
	3,  // 3: irmsia.diagnostic.v1.UploadMetadata.options:type_name -> irmsia.diagnostic.v1.DiagnosticOptions
	0,  // 4: irmsia.diagnostic.v1.DiagnosticResponse.status:type_name -> irmsia.diagnostic.v1.ResponseStatus
	13, // 5: irmsia.diagnostic.v1.DiagnosticResponse.result:type_name -> irmsia.diagnostic.v1.DiagnosticResult
	14, // 6: irmsia.diagnostic.v1.DiagnosticResult.probabilities:type_name -> irmsia.diagnostic.v1.DiagnosticResult.ProbabilitiesEntry
	9,  // 7: irmsia.diagnostic.v1.DiagnosticResult.regions:type_name -> irmsia.diagnostic.v1.Region
	11, // 8: irmsia.diagnostic.v1.DiagnosticResult.mask:type_name -> irmsia.diagnostic.v1.SegmentationMask
	12, // 9: irmsia.diagnostic.v1.DiagnosticResult.measurements:type_name -> irmsia.diagnostic.v1.Measurements
	10, // 10: irmsia.diagnostic.v1.DiagnosticResult.heatmap:type_name -> irmsia.diagnostic.v1.Heatmap
	1,  // 11: irmsia.diagnostic.v1.DiagnosticService.HealthCheck:input_type -> irmsia.diagnostic.v1.HealthCheckRequest
	4,  // 12: irmsia.diagnostic.v1.DiagnosticService.Diagnose:input_type -> irmsia.diagnostic.v1.DicomRequest
	5,  // 13: irmsia.diagnostic.v1.DiagnosticService.DiagnoseStream:input_type -> irmsia.diagnostic.v1.UploadChunk
	4,  // 14: irmsia.diagnostic.v1.DiagnosticService.DiagnoseBatch:input_type -> irmsia.diagnostic.v1.DicomRequest
	2,  // 15: irmsia.diagnostic.v1.DiagnosticService.HealthCheck:output_type -> irmsia.diagnostic.v1.HealthStatus
	8,  // 16: irmsia.diagnostic.v1.DiagnosticService.Diagnose:output_type -> irmsia.diagnostic.v1.DiagnosticResponse
	8,  // 17: irmsia.diagnostic.v1.DiagnosticService.DiagnoseStream:output_type -> irmsia.diagnostic.v1.DiagnosticResponse
	8,  // 18: irmsia.diagnostic.v1.DiagnosticService.DiagnoseBatch:output_type -> irmsia.diagnostic.v1.DiagnosticResponse
	15, // [15:19] is the sub-list for method output_type
	11, // [11:15] is the sub-list for method input_type
	11, // [11:11] is the sub-list for extension type_name
	11, // [11:11] is the sub-list for extension extendee
	0,  // [0:11] is the sub-list for field type_name
}

func init() { file_diagnostic_proto_init() }
func file_diagnostic_proto_init() {
	if File_diagnostic_proto != nil {
		return
	}
	file_diagnostic_proto_msgTypes[4].OneofWrappers = []any{
		(*UploadChunk_Metadata)(nil),
		(*UploadChunk_Data)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_diagnostic_proto_rawDesc), len(file_diagnostic_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_diagnostic_proto_goTypes,
		DependencyIndexes: file_diagnostic_proto_depIdxs,
		EnumInfos:         file_diagnostic_proto_enumTypes,
		MessageInfos:      file_diagnostic_proto_msgTypes,
	}.Build()
	File_diagnostic_proto = out.File
	file_diagnostic_proto_goTypes = nil
	file_diagnostic_proto_depIdxs = nil
}
