// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: billfeed/v1/billfeed.proto

package billfeedv1

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

type Bill struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Bank          string                 `protobuf:"bytes,2,opt,name=bank,proto3" json:"bank,omitempty"`
	TradeDate     string                 `protobuf:"bytes,3,opt,name=trade_date,json=tradeDate,proto3" json:"trade_date,omitempty"`    // YYYY-MM-DD, empty when unknown
	RecordDate    string                 `protobuf:"bytes,4,opt,name=record_date,json=recordDate,proto3" json:"record_date,omitempty"` // YYYY-MM-DD, empty when unknown
	Description   string                 `protobuf:"bytes,5,opt,name=description,proto3" json:"description,omitempty"`
	AmountCny     string                 `protobuf:"bytes,6,opt,name=amount_cny,json=amountCny,proto3" json:"amount_cny,omitempty"` // decimal string, empty when unknown
	CardLast4     string                 `protobuf:"bytes,7,opt,name=card_last4,json=cardLast4,proto3" json:"card_last4,omitempty"`
	AmountForeign string                 `protobuf:"bytes,8,opt,name=amount_foreign,json=amountForeign,proto3" json:"amount_foreign,omitempty"` // decimal string, empty when unknown
	Currency      string                 `protobuf:"bytes,9,opt,name=currency,proto3" json:"currency,omitempty"`
	Status        string                 `protobuf:"bytes,10,opt,name=status,proto3" json:"status,omitempty"`
	RawLine       string                 `protobuf:"bytes,11,opt,name=raw_line,json=rawLine,proto3" json:"raw_line,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Bill) Reset() {
	*x = Bill{}
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Bill) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Bill) ProtoMessage() {}

func (x *Bill) ProtoReflect() protoreflect.Message {
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Bill.ProtoReflect.Descriptor instead.
func (*Bill) Descriptor() ([]byte, []int) {
	return file_billfeed_v1_billfeed_proto_rawDescGZIP(), []int{0}
}

func (x *Bill) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Bill) GetBank() string {
	if x != nil {
		return x.Bank
	}
	return ""
}

func (x *Bill) GetTradeDate() string {
	if x != nil {
		return x.TradeDate
	}
	return ""
}

func (x *Bill) GetRecordDate() string {
	if x != nil {
		return x.RecordDate
	}
	return ""
}

func (x *Bill) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Bill) GetAmountCny() string {
	if x != nil {
		return x.AmountCny
	}
	return ""
}

func (x *Bill) GetCardLast4() string {
	if x != nil {
		return x.CardLast4
	}
	return ""
}

func (x *Bill) GetAmountForeign() string {
	if x != nil {
		return x.AmountForeign
	}
	return ""
}

func (x *Bill) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *Bill) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Bill) GetRawLine() string {
	if x != nil {
		return x.RawLine
	}
	return ""
}

type SubmitUploadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WorkspaceId   string                 `protobuf:"bytes,1,opt,name=workspace_id,json=workspaceId,proto3" json:"workspace_id,omitempty"`
	ActorId       string                 `protobuf:"bytes,2,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitUploadRequest) Reset() {
	*x = SubmitUploadRequest{}
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitUploadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitUploadRequest) ProtoMessage() {}

func (x *SubmitUploadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitUploadRequest.ProtoReflect.Descriptor instead.
func (*SubmitUploadRequest) Descriptor() ([]byte, []int) {
	return file_billfeed_v1_billfeed_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitUploadRequest) GetWorkspaceId() string {
	if x != nil {
		return x.WorkspaceId
	}
	return ""
}

func (x *SubmitUploadRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *SubmitUploadRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *SubmitUploadRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type SubmitUploadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"` // "duplicate" | "accepted"
	FileId        string                 `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	FileStatus    string                 `protobuf:"bytes,4,opt,name=file_status,json=fileStatus,proto3" json:"file_status,omitempty"`
	FileSize      int64                  `protobuf:"varint,5,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	RawPreview    string                 `protobuf:"bytes,6,opt,name=raw_preview,json=rawPreview,proto3" json:"raw_preview,omitempty"` // accepted only
	Bills         []*Bill                `protobuf:"bytes,7,rep,name=bills,proto3" json:"bills,omitempty"`                             // duplicate only
	BillsCount    int32                  `protobuf:"varint,8,opt,name=bills_count,json=billsCount,proto3" json:"bills_count,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,9,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitUploadResponse) Reset() {
	*x = SubmitUploadResponse{}
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitUploadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitUploadResponse) ProtoMessage() {}

func (x *SubmitUploadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitUploadResponse.ProtoReflect.Descriptor instead.
func (*SubmitUploadResponse) Descriptor() ([]byte, []int) {
	return file_billfeed_v1_billfeed_proto_rawDescGZIP(), []int{2}
}

func (x *SubmitUploadResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *SubmitUploadResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *SubmitUploadResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *SubmitUploadResponse) GetFileStatus() string {
	if x != nil {
		return x.FileStatus
	}
	return ""
}

func (x *SubmitUploadResponse) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *SubmitUploadResponse) GetRawPreview() string {
	if x != nil {
		return x.RawPreview
	}
	return ""
}

func (x *SubmitUploadResponse) GetBills() []*Bill {
	if x != nil {
		return x.Bills
	}
	return nil
}

func (x *SubmitUploadResponse) GetBillsCount() int32 {
	if x != nil {
		return x.BillsCount
	}
	return 0
}

func (x *SubmitUploadResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type GetProgressRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WorkspaceId   string                 `protobuf:"bytes,1,opt,name=workspace_id,json=workspaceId,proto3" json:"workspace_id,omitempty"`
	FileId        string                 `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	ActorId       string                 `protobuf:"bytes,3,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProgressRequest) Reset() {
	*x = GetProgressRequest{}
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProgressRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProgressRequest) ProtoMessage() {}

func (x *GetProgressRequest) ProtoReflect() protoreflect.Message {
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProgressRequest.ProtoReflect.Descriptor instead.
func (*GetProgressRequest) Descriptor() ([]byte, []int) {
	return file_billfeed_v1_billfeed_proto_rawDescGZIP(), []int{3}
}

func (x *GetProgressRequest) GetWorkspaceId() string {
	if x != nil {
		return x.WorkspaceId
	}
	return ""
}

func (x *GetProgressRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *GetProgressRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

type GetProgressResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	FileStatus    string                 `protobuf:"bytes,3,opt,name=file_status,json=fileStatus,proto3" json:"file_status,omitempty"`
	BillsCount    int32                  `protobuf:"varint,4,opt,name=bills_count,json=billsCount,proto3" json:"bills_count,omitempty"`
	Remark        string                 `protobuf:"bytes,5,opt,name=remark,proto3" json:"remark,omitempty"`
	Bills         []*Bill                `protobuf:"bytes,6,rep,name=bills,proto3" json:"bills,omitempty"` // completed only
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProgressResponse) Reset() {
	*x = GetProgressResponse{}
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProgressResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProgressResponse) ProtoMessage() {}

func (x *GetProgressResponse) ProtoReflect() protoreflect.Message {
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProgressResponse.ProtoReflect.Descriptor instead.
func (*GetProgressResponse) Descriptor() ([]byte, []int) {
	return file_billfeed_v1_billfeed_proto_rawDescGZIP(), []int{4}
}

func (x *GetProgressResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *GetProgressResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *GetProgressResponse) GetFileStatus() string {
	if x != nil {
		return x.FileStatus
	}
	return ""
}

func (x *GetProgressResponse) GetBillsCount() int32 {
	if x != nil {
		return x.BillsCount
	}
	return 0
}

func (x *GetProgressResponse) GetRemark() string {
	if x != nil {
		return x.Remark
	}
	return ""
}

func (x *GetProgressResponse) GetBills() []*Bill {
	if x != nil {
		return x.Bills
	}
	return nil
}

type DeleteUploadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WorkspaceId   string                 `protobuf:"bytes,1,opt,name=workspace_id,json=workspaceId,proto3" json:"workspace_id,omitempty"`
	FileId        string                 `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	ActorId       string                 `protobuf:"bytes,3,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteUploadRequest) Reset() {
	*x = DeleteUploadRequest{}
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteUploadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteUploadRequest) ProtoMessage() {}

func (x *DeleteUploadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteUploadRequest.ProtoReflect.Descriptor instead.
func (*DeleteUploadRequest) Descriptor() ([]byte, []int) {
	return file_billfeed_v1_billfeed_proto_rawDescGZIP(), []int{5}
}

func (x *DeleteUploadRequest) GetWorkspaceId() string {
	if x != nil {
		return x.WorkspaceId
	}
	return ""
}

func (x *DeleteUploadRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *DeleteUploadRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

type DeleteUploadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteUploadResponse) Reset() {
	*x = DeleteUploadResponse{}
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteUploadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteUploadResponse) ProtoMessage() {}

func (x *DeleteUploadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteUploadResponse.ProtoReflect.Descriptor instead.
func (*DeleteUploadResponse) Descriptor() ([]byte, []int) {
	return file_billfeed_v1_billfeed_proto_rawDescGZIP(), []int{6}
}

type GetBalanceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActorId       string                 `protobuf:"bytes,1,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBalanceRequest) Reset() {
	*x = GetBalanceRequest{}
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBalanceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBalanceRequest) ProtoMessage() {}

func (x *GetBalanceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBalanceRequest.ProtoReflect.Descriptor instead.
func (*GetBalanceRequest) Descriptor() ([]byte, []int) {
	return file_billfeed_v1_billfeed_proto_rawDescGZIP(), []int{7}
}

func (x *GetBalanceRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

type GetBalanceResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Balance        string                 `protobuf:"bytes,1,opt,name=balance,proto3" json:"balance,omitempty"`                                     // decimal string
	TotalRecharged string                 `protobuf:"bytes,2,opt,name=total_recharged,json=totalRecharged,proto3" json:"total_recharged,omitempty"` // decimal string
	TotalConsumed  string                 `protobuf:"bytes,3,opt,name=total_consumed,json=totalConsumed,proto3" json:"total_consumed,omitempty"`    // decimal string
	Status         string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetBalanceResponse) Reset() {
	*x = GetBalanceResponse{}
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBalanceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBalanceResponse) ProtoMessage() {}

func (x *GetBalanceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBalanceResponse.ProtoReflect.Descriptor instead.
func (*GetBalanceResponse) Descriptor() ([]byte, []int) {
	return file_billfeed_v1_billfeed_proto_rawDescGZIP(), []int{8}
}

func (x *GetBalanceResponse) GetBalance() string {
	if x != nil {
		return x.Balance
	}
	return ""
}

func (x *GetBalanceResponse) GetTotalRecharged() string {
	if x != nil {
		return x.TotalRecharged
	}
	return ""
}

func (x *GetBalanceResponse) GetTotalConsumed() string {
	if x != nil {
		return x.TotalConsumed
	}
	return ""
}

func (x *GetBalanceResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type DailyStat struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Date          string                 `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"`     // YYYY-MM-DD
	Amount        string                 `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"` // decimal string
	ApiCalls      int32                  `protobuf:"varint,3,opt,name=api_calls,json=apiCalls,proto3" json:"api_calls,omitempty"`
	Tokens        int64                  `protobuf:"varint,4,opt,name=tokens,proto3" json:"tokens,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DailyStat) Reset() {
	*x = DailyStat{}
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DailyStat) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DailyStat) ProtoMessage() {}

func (x *DailyStat) ProtoReflect() protoreflect.Message {
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DailyStat.ProtoReflect.Descriptor instead.
func (*DailyStat) Descriptor() ([]byte, []int) {
	return file_billfeed_v1_billfeed_proto_rawDescGZIP(), []int{9}
}

func (x *DailyStat) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *DailyStat) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *DailyStat) GetApiCalls() int32 {
	if x != nil {
		return x.ApiCalls
	}
	return 0
}

func (x *DailyStat) GetTokens() int64 {
	if x != nil {
		return x.Tokens
	}
	return 0
}

type GetMonthlyUsageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActorId       string                 `protobuf:"bytes,1,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	Month         string                 `protobuf:"bytes,2,opt,name=month,proto3" json:"month,omitempty"` // YYYY-MM
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMonthlyUsageRequest) Reset() {
	*x = GetMonthlyUsageRequest{}
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMonthlyUsageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMonthlyUsageRequest) ProtoMessage() {}

func (x *GetMonthlyUsageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMonthlyUsageRequest.ProtoReflect.Descriptor instead.
func (*GetMonthlyUsageRequest) Descriptor() ([]byte, []int) {
	return file_billfeed_v1_billfeed_proto_rawDescGZIP(), []int{10}
}

func (x *GetMonthlyUsageRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *GetMonthlyUsageRequest) GetMonth() string {
	if x != nil {
		return x.Month
	}
	return ""
}

type GetMonthlyUsageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Month         string                 `protobuf:"bytes,1,opt,name=month,proto3" json:"month,omitempty"`
	TotalAmount   string                 `protobuf:"bytes,2,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"` // decimal string
	TotalApiCalls int32                  `protobuf:"varint,3,opt,name=total_api_calls,json=totalApiCalls,proto3" json:"total_api_calls,omitempty"`
	TotalTokens   int64                  `protobuf:"varint,4,opt,name=total_tokens,json=totalTokens,proto3" json:"total_tokens,omitempty"`
	DailyStats    []*DailyStat           `protobuf:"bytes,5,rep,name=daily_stats,json=dailyStats,proto3" json:"daily_stats,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMonthlyUsageResponse) Reset() {
	*x = GetMonthlyUsageResponse{}
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMonthlyUsageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMonthlyUsageResponse) ProtoMessage() {}

func (x *GetMonthlyUsageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMonthlyUsageResponse.ProtoReflect.Descriptor instead.
func (*GetMonthlyUsageResponse) Descriptor() ([]byte, []int) {
	return file_billfeed_v1_billfeed_proto_rawDescGZIP(), []int{11}
}

func (x *GetMonthlyUsageResponse) GetMonth() string {
	if x != nil {
		return x.Month
	}
	return ""
}

func (x *GetMonthlyUsageResponse) GetTotalAmount() string {
	if x != nil {
		return x.TotalAmount
	}
	return ""
}

func (x *GetMonthlyUsageResponse) GetTotalApiCalls() int32 {
	if x != nil {
		return x.TotalApiCalls
	}
	return 0
}

func (x *GetMonthlyUsageResponse) GetTotalTokens() int64 {
	if x != nil {
		return x.TotalTokens
	}
	return 0
}

func (x *GetMonthlyUsageResponse) GetDailyStats() []*DailyStat {
	if x != nil {
		return x.DailyStats
	}
	return nil
}

type ExportMonthlyUsageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActorId       string                 `protobuf:"bytes,1,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	Month         string                 `protobuf:"bytes,2,opt,name=month,proto3" json:"month,omitempty"` // YYYY-MM
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportMonthlyUsageRequest) Reset() {
	*x = ExportMonthlyUsageRequest{}
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportMonthlyUsageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportMonthlyUsageRequest) ProtoMessage() {}

func (x *ExportMonthlyUsageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportMonthlyUsageRequest.ProtoReflect.Descriptor instead.
func (*ExportMonthlyUsageRequest) Descriptor() ([]byte, []int) {
	return file_billfeed_v1_billfeed_proto_rawDescGZIP(), []int{12}
}

func (x *ExportMonthlyUsageRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *ExportMonthlyUsageRequest) GetMonth() string {
	if x != nil {
		return x.Month
	}
	return ""
}

type ExportMonthlyUsageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"` // xlsx workbook
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportMonthlyUsageResponse) Reset() {
	*x = ExportMonthlyUsageResponse{}
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportMonthlyUsageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportMonthlyUsageResponse) ProtoMessage() {}

func (x *ExportMonthlyUsageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportMonthlyUsageResponse.ProtoReflect.Descriptor instead.
func (*ExportMonthlyUsageResponse) Descriptor() ([]byte, []int) {
	return file_billfeed_v1_billfeed_proto_rawDescGZIP(), []int{13}
}

func (x *ExportMonthlyUsageResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExportMonthlyUsageResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type BillingRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Amount        string                 `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`                                    // decimal string
	BalanceBefore string                 `protobuf:"bytes,3,opt,name=balance_before,json=balanceBefore,proto3" json:"balance_before,omitempty"` // decimal string
	BalanceAfter  string                 `protobuf:"bytes,4,opt,name=balance_after,json=balanceAfter,proto3" json:"balance_after,omitempty"`    // decimal string
	BillingType   string                 `protobuf:"bytes,5,opt,name=billing_type,json=billingType,proto3" json:"billing_type,omitempty"`
	Description   string                 `protobuf:"bytes,6,opt,name=description,proto3" json:"description,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BillingRecord) Reset() {
	*x = BillingRecord{}
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BillingRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BillingRecord) ProtoMessage() {}

func (x *BillingRecord) ProtoReflect() protoreflect.Message {
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BillingRecord.ProtoReflect.Descriptor instead.
func (*BillingRecord) Descriptor() ([]byte, []int) {
	return file_billfeed_v1_billfeed_proto_rawDescGZIP(), []int{14}
}

func (x *BillingRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *BillingRecord) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *BillingRecord) GetBalanceBefore() string {
	if x != nil {
		return x.BalanceBefore
	}
	return ""
}

func (x *BillingRecord) GetBalanceAfter() string {
	if x != nil {
		return x.BalanceAfter
	}
	return ""
}

func (x *BillingRecord) GetBillingType() string {
	if x != nil {
		return x.BillingType
	}
	return ""
}

func (x *BillingRecord) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *BillingRecord) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListBillingRecordsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActorId       string                 `protobuf:"bytes,1,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	Month         string                 `protobuf:"bytes,2,opt,name=month,proto3" json:"month,omitempty"` // optional YYYY-MM filter
	Page          int32                  `protobuf:"varint,3,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,4,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBillingRecordsRequest) Reset() {
	*x = ListBillingRecordsRequest{}
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBillingRecordsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBillingRecordsRequest) ProtoMessage() {}

func (x *ListBillingRecordsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBillingRecordsRequest.ProtoReflect.Descriptor instead.
func (*ListBillingRecordsRequest) Descriptor() ([]byte, []int) {
	return file_billfeed_v1_billfeed_proto_rawDescGZIP(), []int{15}
}

func (x *ListBillingRecordsRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *ListBillingRecordsRequest) GetMonth() string {
	if x != nil {
		return x.Month
	}
	return ""
}

func (x *ListBillingRecordsRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListBillingRecordsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListBillingRecordsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*BillingRecord       `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBillingRecordsResponse) Reset() {
	*x = ListBillingRecordsResponse{}
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBillingRecordsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBillingRecordsResponse) ProtoMessage() {}

func (x *ListBillingRecordsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_billfeed_v1_billfeed_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBillingRecordsResponse.ProtoReflect.Descriptor instead.
func (*ListBillingRecordsResponse) Descriptor() ([]byte, []int) {
	return file_billfeed_v1_billfeed_proto_rawDescGZIP(), []int{16}
}

func (x *ListBillingRecordsResponse) GetRecords() []*BillingRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

var File_billfeed_v1_billfeed_proto protoreflect.FileDescriptor

const file_billfeed_v1_billfeed_proto_rawDesc = "" +
	"\n" +
	"\x1abillfeed/v1/billfeed.proto\x12\vbillfeed.v1\"\xc0\x02\n" +
	"\x04Bill\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04bank\x18\x02 \x01(\tR\x04bank\x12\x1d\n" +
	"\n" +
	"trade_date\x18\x03 \x01(\tR\ttradeDate\x12\x1f\n" +
	"\vrecord_date\x18\x04 \x01(\tR\n" +
	"recordDate\x12 \n" +
	"\vdescription\x18\x05 \x01(\tR\vdescription\x12\x1d\n" +
	"\n" +
	"amount_cny\x18\x06 \x01(\tR\tamountCny\x12\x1d\n" +
	"\n" +
	"card_last4\x18\a \x01(\tR\tcardLast4\x12%\n" +
	"\x0eamount_foreign\x18\b \x01(\tR\ramountForeign\x12\x1a\n" +
	"\bcurrency\x18\t \x01(\tR\bcurrency\x12\x16\n" +
	"\x06status\x18\n" +
	" \x01(\tR\x06status\x12\x19\n" +
	"\braw_line\x18\v \x01(\tR\arawLine\"\x89\x01\n" +
	"\x13SubmitUploadRequest\x12!\n" +
	"\fworkspace_id\x18\x01 \x01(\tR\vworkspaceId\x12\x19\n" +
	"\bactor_id\x18\x02 \x01(\tR\aactorId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x04 \x01(\fR\acontent\"\xad\x02\n" +
	"\x14SubmitUploadResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x1f\n" +
	"\vfile_status\x18\x04 \x01(\tR\n" +
	"fileStatus\x12\x1b\n" +
	"\tfile_size\x18\x05 \x01(\x03R\bfileSize\x12\x1f\n" +
	"\vraw_preview\x18\x06 \x01(\tR\n" +
	"rawPreview\x12'\n" +
	"\x05bills\x18\a \x03(\v2\x11.billfeed.v1.BillR\x05bills\x12\x1f\n" +
	"\vbills_count\x18\b \x01(\x05R\n" +
	"billsCount\x12\x1f\n" +
	"\vuploaded_at\x18\t \x01(\tR\n" +
	"uploadedAt\"k\n" +
	"\x12GetProgressRequest\x12!\n" +
	"\fworkspace_id\x18\x01 \x01(\tR\vworkspaceId\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\x12\x19\n" +
	"\bactor_id\x18\x03 \x01(\tR\aactorId\"\xcd\x01\n" +
	"\x13GetProgressResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x1f\n" +
	"\vfile_status\x18\x03 \x01(\tR\n" +
	"fileStatus\x12\x1f\n" +
	"\vbills_count\x18\x04 \x01(\x05R\n" +
	"billsCount\x12\x16\n" +
	"\x06remark\x18\x05 \x01(\tR\x06remark\x12'\n" +
	"\x05bills\x18\x06 \x03(\v2\x11.billfeed.v1.BillR\x05bills\"l\n" +
	"\x13DeleteUploadRequest\x12!\n" +
	"\fworkspace_id\x18\x01 \x01(\tR\vworkspaceId\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\x12\x19\n" +
	"\bactor_id\x18\x03 \x01(\tR\aactorId\"\x16\n" +
	"\x14DeleteUploadResponse\".\n" +
	"\x11GetBalanceRequest\x12\x19\n" +
	"\bactor_id\x18\x01 \x01(\tR\aactorId\"\x96\x01\n" +
	"\x12GetBalanceResponse\x12\x18\n" +
	"\abalance\x18\x01 \x01(\tR\abalance\x12'\n" +
	"\x0ftotal_recharged\x18\x02 \x01(\tR\x0etotalRecharged\x12%\n" +
	"\x0etotal_consumed\x18\x03 \x01(\tR\rtotalConsumed\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\"l\n" +
	"\tDailyStat\x12\x12\n" +
	"\x04date\x18\x01 \x01(\tR\x04date\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\tR\x06amount\x12\x1b\n" +
	"\tapi_calls\x18\x03 \x01(\x05R\bapiCalls\x12\x16\n" +
	"\x06tokens\x18\x04 \x01(\x03R\x06tokens\"I\n" +
	"\x16GetMonthlyUsageRequest\x12\x19\n" +
	"\bactor_id\x18\x01 \x01(\tR\aactorId\x12\x14\n" +
	"\x05month\x18\x02 \x01(\tR\x05month\"\xd6\x01\n" +
	"\x17GetMonthlyUsageResponse\x12\x14\n" +
	"\x05month\x18\x01 \x01(\tR\x05month\x12!\n" +
	"\ftotal_amount\x18\x02 \x01(\tR\vtotalAmount\x12&\n" +
	"\x0ftotal_api_calls\x18\x03 \x01(\x05R\rtotalApiCalls\x12!\n" +
	"\ftotal_tokens\x18\x04 \x01(\x03R\vtotalTokens\x127\n" +
	"\vdaily_stats\x18\x05 \x03(\v2\x16.billfeed.v1.DailyStatR\n" +
	"dailyStats\"L\n" +
	"\x19ExportMonthlyUsageRequest\x12\x19\n" +
	"\bactor_id\x18\x01 \x01(\tR\aactorId\x12\x14\n" +
	"\x05month\x18\x02 \x01(\tR\x05month\"R\n" +
	"\x1aExportMonthlyUsageResponse\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\"\xe7\x01\n" +
	"\rBillingRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\tR\x06amount\x12%\n" +
	"\x0ebalance_before\x18\x03 \x01(\tR\rbalanceBefore\x12#\n" +
	"\rbalance_after\x18\x04 \x01(\tR\fbalanceAfter\x12!\n" +
	"\fbilling_type\x18\x05 \x01(\tR\vbillingType\x12 \n" +
	"\vdescription\x18\x06 \x01(\tR\vdescription\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\"}\n" +
	"\x19ListBillingRecordsRequest\x12\x19\n" +
	"\bactor_id\x18\x01 \x01(\tR\aactorId\x12\x14\n" +
	"\x05month\x18\x02 \x01(\tR\x05month\x12\x12\n" +
	"\x04page\x18\x03 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x04 \x01(\x05R\bpageSize\"R\n" +
	"\x1aListBillingRecordsResponse\x124\n" +
	"\arecords\x18\x01 \x03(\v2\x1a.billfeed.v1.BillingRecordR\arecords2\x8b\x02\n" +
	"\rUploadService\x12S\n" +
	"\fSubmitUpload\x12 .billfeed.v1.SubmitUploadRequest\x1a!.billfeed.v1.SubmitUploadResponse\x12P\n" +
	"\vGetProgress\x12\x1f.billfeed.v1.GetProgressRequest\x1a .billfeed.v1.GetProgressResponse\x12S\n" +
	"\fDeleteUpload\x12 .billfeed.v1.DeleteUploadRequest\x1a!.billfeed.v1.DeleteUploadResponse2\x8b\x03\n" +
	"\x0eBillingService\x12M\n" +
	"\n" +
	"GetBalance\x12\x1e.billfeed.v1.GetBalanceRequest\x1a\x1f.billfeed.v1.GetBalanceResponse\x12\\\n" +
	"\x0fGetMonthlyUsage\x12#.billfeed.v1.GetMonthlyUsageRequest\x1a$.billfeed.v1.GetMonthlyUsageResponse\x12e\n" +
	"\x12ExportMonthlyUsage\x12&.billfeed.v1.ExportMonthlyUsageRequest\x1a'.billfeed.v1.ExportMonthlyUsageResponse\x12e\n" +
	"\x12ListBillingRecords\x12&.billfeed.v1.ListBillingRecordsRequest\x1a'.billfeed.v1.ListBillingRecordsResponseB?Z=github.com/billfeed/billfeed/gen/proto/billfeed/v1;billfeedv1b\x06proto3"

var (
	file_billfeed_v1_billfeed_proto_rawDescOnce sync.Once
	file_billfeed_v1_billfeed_proto_rawDescData []byte
)

func file_billfeed_v1_billfeed_proto_rawDescGZIP() []byte {
	file_billfeed_v1_billfeed_proto_rawDescOnce.Do(func() {
		file_billfeed_v1_billfeed_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_billfeed_v1_billfeed_proto_rawDesc), len(file_billfeed_v1_billfeed_proto_rawDesc)))
	})
	return file_billfeed_v1_billfeed_proto_rawDescData
}

var file_billfeed_v1_billfeed_proto_msgTypes = make([]protoimpl.MessageInfo, 17)
var file_billfeed_v1_billfeed_proto_goTypes = []any{
	(*Bill)(nil),                       // 0: billfeed.v1.Bill
	(*SubmitUploadRequest)(nil),        // 1: billfeed.v1.SubmitUploadRequest
	(*SubmitUploadResponse)(nil),       // 2: billfeed.v1.SubmitUploadResponse
	(*GetProgressRequest)(nil),         // 3: billfeed.v1.GetProgressRequest
	(*GetProgressResponse)(nil),        // 4: billfeed.v1.GetProgressResponse
	(*DeleteUploadRequest)(nil),        // 5: billfeed.v1.DeleteUploadRequest
	(*DeleteUploadResponse)(nil),       // 6: billfeed.v1.DeleteUploadResponse
	(*GetBalanceRequest)(nil),          // 7: billfeed.v1.GetBalanceRequest
	(*GetBalanceResponse)(nil),         // 8: billfeed.v1.GetBalanceResponse
	(*DailyStat)(nil),                  // 9: billfeed.v1.DailyStat
	(*GetMonthlyUsageRequest)(nil),     // 10: billfeed.v1.GetMonthlyUsageRequest
	(*GetMonthlyUsageResponse)(nil),    // 11: billfeed.v1.GetMonthlyUsageResponse
	(*ExportMonthlyUsageRequest)(nil),  // 12: billfeed.v1.ExportMonthlyUsageRequest
	(*ExportMonthlyUsageResponse)(nil), // 13: billfeed.v1.ExportMonthlyUsageResponse
	(*BillingRecord)(nil),              // 14: billfeed.v1.BillingRecord
	(*ListBillingRecordsRequest)(nil),  // 15: billfeed.v1.ListBillingRecordsRequest
	(*ListBillingRecordsResponse)(nil), // 16: billfeed.v1.ListBillingRecordsResponse
}
var file_billfeed_v1_billfeed_proto_depIdxs = []int32{
	0,  // 0: billfeed.v1.SubmitUploadResponse.bills:type_name -> billfeed.v1.Bill
	0,  // 1: billfeed.v1.GetProgressResponse.bills:type_name -> billfeed.v1.Bill
	9,  // 2: billfeed.v1.GetMonthlyUsageResponse.daily_stats:type_name -> billfeed.v1.DailyStat
	14, // 3: billfeed.v1.ListBillingRecordsResponse.records:type_name -> billfeed.v1.BillingRecord
	1,  // 4: billfeed.v1.UploadService.SubmitUpload:input_type -> billfeed.v1.SubmitUploadRequest
	3,  // 5: billfeed.v1.UploadService.GetProgress:input_type -> billfeed.v1.GetProgressRequest
	5,  // 6: billfeed.v1.UploadService.DeleteUpload:input_type -> billfeed.v1.DeleteUploadRequest
	7,  // 7: billfeed.v1.BillingService.GetBalance:input_type -> billfeed.v1.GetBalanceRequest
	10, // 8: billfeed.v1.BillingService.GetMonthlyUsage:input_type -> billfeed.v1.GetMonthlyUsageRequest
	12, // 9: billfeed.v1.BillingService.ExportMonthlyUsage:input_type -> billfeed.v1.ExportMonthlyUsageRequest
	15, // 10: billfeed.v1.BillingService.ListBillingRecords:input_type -> billfeed.v1.ListBillingRecordsRequest
	2,  // 11: billfeed.v1.UploadService.SubmitUpload:output_type -> billfeed.v1.SubmitUploadResponse
	4,  // 12: billfeed.v1.UploadService.GetProgress:output_type -> billfeed.v1.GetProgressResponse
	6,  // 13: billfeed.v1.UploadService.DeleteUpload:output_type -> billfeed.v1.DeleteUploadResponse
	8,  // 14: billfeed.v1.BillingService.GetBalance:output_type -> billfeed.v1.GetBalanceResponse
	11, // 15: billfeed.v1.BillingService.GetMonthlyUsage:output_type -> billfeed.v1.GetMonthlyUsageResponse
	13, // 16: billfeed.v1.BillingService.ExportMonthlyUsage:output_type -> billfeed.v1.ExportMonthlyUsageResponse
	16, // 17: billfeed.v1.BillingService.ListBillingRecords:output_type -> billfeed.v1.ListBillingRecordsResponse
	11, // [11:18] is the sub-list for method output_type
	4,  // [4:11] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_billfeed_v1_billfeed_proto_init() }
func file_billfeed_v1_billfeed_proto_init() {
	if File_billfeed_v1_billfeed_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_billfeed_v1_billfeed_proto_rawDesc), len(file_billfeed_v1_billfeed_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   17,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_billfeed_v1_billfeed_proto_goTypes,
		DependencyIndexes: file_billfeed_v1_billfeed_proto_depIdxs,
		MessageInfos:      file_billfeed_v1_billfeed_proto_msgTypes,
	}.Build()
	File_billfeed_v1_billfeed_proto = out.File
	file_billfeed_v1_billfeed_proto_goTypes = nil
	file_billfeed_v1_billfeed_proto_depIdxs = nil
}
