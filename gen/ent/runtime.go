// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/billfeed/billfeed/db/ent/schema"
	"github.com/billfeed/billfeed/gen/ent/bill"
	"github.com/billfeed/billfeed/gen/ent/billingrecord"
	"github.com/billfeed/billfeed/gen/ent/fileupload"
	"github.com/billfeed/billfeed/gen/ent/tokenusage"
	"github.com/billfeed/billfeed/gen/ent/useraccount"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	billFields := schema.Bill{}.Fields()
	_ = billFields
	// billDescBank is the schema descriptor for bank field.
	billDescBank := billFields[3].Descriptor()
	// bill.BankValidator is a validator for the "bank" field. It is called by the builders before save.
	bill.BankValidator = billDescBank.Validators[0].(func(string) error)
	// billDescCardLast4 is the schema descriptor for card_last4 field.
	billDescCardLast4 := billFields[8].Descriptor()
	// bill.CardLast4Validator is a validator for the "card_last4" field. It is called by the builders before save.
	bill.CardLast4Validator = billDescCardLast4.Validators[0].(func(string) error)
	// billDescCurrency is the schema descriptor for currency field.
	billDescCurrency := billFields[10].Descriptor()
	// bill.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	bill.CurrencyValidator = billDescCurrency.Validators[0].(func(string) error)
	// billDescStatus is the schema descriptor for status field.
	billDescStatus := billFields[11].Descriptor()
	// bill.DefaultStatus holds the default value on creation for the status field.
	bill.DefaultStatus = billDescStatus.Default.(string)
	// bill.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	bill.StatusValidator = billDescStatus.Validators[0].(func(string) error)
	// billDescRawLine is the schema descriptor for raw_line field.
	billDescRawLine := billFields[12].Descriptor()
	// bill.DefaultRawLine holds the default value on creation for the raw_line field.
	bill.DefaultRawLine = billDescRawLine.Default.(string)
	// billDescIsDeleted is the schema descriptor for is_deleted field.
	billDescIsDeleted := billFields[13].Descriptor()
	// bill.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	bill.DefaultIsDeleted = billDescIsDeleted.Default.(bool)
	// billDescCreatedAt is the schema descriptor for created_at field.
	billDescCreatedAt := billFields[15].Descriptor()
	// bill.DefaultCreatedAt holds the default value on creation for the created_at field.
	bill.DefaultCreatedAt = billDescCreatedAt.Default.(func() time.Time)
	// billDescID is the schema descriptor for id field.
	billDescID := billFields[0].Descriptor()
	// bill.DefaultID holds the default value on creation for the id field.
	bill.DefaultID = billDescID.Default.(func() uuid.UUID)
	billingrecordFields := schema.BillingRecord{}.Fields()
	_ = billingrecordFields
	// billingrecordDescActorID is the schema descriptor for actor_id field.
	billingrecordDescActorID := billingrecordFields[1].Descriptor()
	// billingrecord.ActorIDValidator is a validator for the "actor_id" field. It is called by the builders before save.
	billingrecord.ActorIDValidator = func() func(string) error {
		validators := billingrecordDescActorID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(actor_id string) error {
			for _, fn := range fns {
				if err := fn(actor_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// billingrecordDescAmount is the schema descriptor for amount field.
	billingrecordDescAmount := billingrecordFields[3].Descriptor()
	// billingrecord.DefaultAmount holds the default value on creation for the amount field.
	billingrecord.DefaultAmount = billingrecordDescAmount.Default.(decimal.Decimal)
	// billingrecordDescBalanceBefore is the schema descriptor for balance_before field.
	billingrecordDescBalanceBefore := billingrecordFields[4].Descriptor()
	// billingrecord.DefaultBalanceBefore holds the default value on creation for the balance_before field.
	billingrecord.DefaultBalanceBefore = billingrecordDescBalanceBefore.Default.(decimal.Decimal)
	// billingrecordDescBalanceAfter is the schema descriptor for balance_after field.
	billingrecordDescBalanceAfter := billingrecordFields[5].Descriptor()
	// billingrecord.DefaultBalanceAfter holds the default value on creation for the balance_after field.
	billingrecord.DefaultBalanceAfter = billingrecordDescBalanceAfter.Default.(decimal.Decimal)
	// billingrecordDescBillingType is the schema descriptor for billing_type field.
	billingrecordDescBillingType := billingrecordFields[6].Descriptor()
	// billingrecord.DefaultBillingType holds the default value on creation for the billing_type field.
	billingrecord.DefaultBillingType = billingrecordDescBillingType.Default.(string)
	// billingrecord.BillingTypeValidator is a validator for the "billing_type" field. It is called by the builders before save.
	billingrecord.BillingTypeValidator = billingrecordDescBillingType.Validators[0].(func(string) error)
	// billingrecordDescIsDeleted is the schema descriptor for is_deleted field.
	billingrecordDescIsDeleted := billingrecordFields[8].Descriptor()
	// billingrecord.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	billingrecord.DefaultIsDeleted = billingrecordDescIsDeleted.Default.(bool)
	// billingrecordDescCreatedAt is the schema descriptor for created_at field.
	billingrecordDescCreatedAt := billingrecordFields[9].Descriptor()
	// billingrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	billingrecord.DefaultCreatedAt = billingrecordDescCreatedAt.Default.(func() time.Time)
	// billingrecordDescID is the schema descriptor for id field.
	billingrecordDescID := billingrecordFields[0].Descriptor()
	// billingrecord.DefaultID holds the default value on creation for the id field.
	billingrecord.DefaultID = billingrecordDescID.Default.(func() uuid.UUID)
	fileuploadFields := schema.FileUpload{}.Fields()
	_ = fileuploadFields
	// fileuploadDescActorID is the schema descriptor for actor_id field.
	fileuploadDescActorID := fileuploadFields[2].Descriptor()
	// fileupload.ActorIDValidator is a validator for the "actor_id" field. It is called by the builders before save.
	fileupload.ActorIDValidator = func() func(string) error {
		validators := fileuploadDescActorID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(actor_id string) error {
			for _, fn := range fns {
				if err := fn(actor_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// fileuploadDescContentHash is the schema descriptor for content_hash field.
	fileuploadDescContentHash := fileuploadFields[3].Descriptor()
	// fileupload.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	fileupload.ContentHashValidator = func() func(string) error {
		validators := fileuploadDescContentHash.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(content_hash string) error {
			for _, fn := range fns {
				if err := fn(content_hash); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// fileuploadDescFilename is the schema descriptor for filename field.
	fileuploadDescFilename := fileuploadFields[4].Descriptor()
	// fileupload.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	fileupload.FilenameValidator = fileuploadDescFilename.Validators[0].(func(string) error)
	// fileuploadDescSavedPath is the schema descriptor for saved_path field.
	fileuploadDescSavedPath := fileuploadFields[5].Descriptor()
	// fileupload.SavedPathValidator is a validator for the "saved_path" field. It is called by the builders before save.
	fileupload.SavedPathValidator = fileuploadDescSavedPath.Validators[0].(func(string) error)
	// fileuploadDescFileSize is the schema descriptor for file_size field.
	fileuploadDescFileSize := fileuploadFields[6].Descriptor()
	// fileupload.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	fileupload.FileSizeValidator = fileuploadDescFileSize.Validators[0].(func(int64) error)
	// fileuploadDescBillsCount is the schema descriptor for bills_count field.
	fileuploadDescBillsCount := fileuploadFields[9].Descriptor()
	// fileupload.DefaultBillsCount holds the default value on creation for the bills_count field.
	fileupload.DefaultBillsCount = fileuploadDescBillsCount.Default.(int)
	// fileuploadDescUploadedAt is the schema descriptor for uploaded_at field.
	fileuploadDescUploadedAt := fileuploadFields[10].Descriptor()
	// fileupload.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	fileupload.DefaultUploadedAt = fileuploadDescUploadedAt.Default.(func() time.Time)
	// fileuploadDescStatus is the schema descriptor for status field.
	fileuploadDescStatus := fileuploadFields[11].Descriptor()
	// fileupload.DefaultStatus holds the default value on creation for the status field.
	fileupload.DefaultStatus = fileuploadDescStatus.Default.(string)
	// fileupload.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	fileupload.StatusValidator = fileuploadDescStatus.Validators[0].(func(string) error)
	// fileuploadDescIsDeleted is the schema descriptor for is_deleted field.
	fileuploadDescIsDeleted := fileuploadFields[13].Descriptor()
	// fileupload.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	fileupload.DefaultIsDeleted = fileuploadDescIsDeleted.Default.(bool)
	// fileuploadDescCreatedAt is the schema descriptor for created_at field.
	fileuploadDescCreatedAt := fileuploadFields[15].Descriptor()
	// fileupload.DefaultCreatedAt holds the default value on creation for the created_at field.
	fileupload.DefaultCreatedAt = fileuploadDescCreatedAt.Default.(func() time.Time)
	// fileuploadDescID is the schema descriptor for id field.
	fileuploadDescID := fileuploadFields[0].Descriptor()
	// fileupload.DefaultID holds the default value on creation for the id field.
	fileupload.DefaultID = fileuploadDescID.Default.(func() uuid.UUID)
	tokenusageFields := schema.TokenUsage{}.Fields()
	_ = tokenusageFields
	// tokenusageDescActorID is the schema descriptor for actor_id field.
	tokenusageDescActorID := tokenusageFields[1].Descriptor()
	// tokenusage.ActorIDValidator is a validator for the "actor_id" field. It is called by the builders before save.
	tokenusage.ActorIDValidator = func() func(string) error {
		validators := tokenusageDescActorID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(actor_id string) error {
			for _, fn := range fns {
				if err := fn(actor_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// tokenusageDescCallKind is the schema descriptor for call_kind field.
	tokenusageDescCallKind := tokenusageFields[4].Descriptor()
	// tokenusage.CallKindValidator is a validator for the "call_kind" field. It is called by the builders before save.
	tokenusage.CallKindValidator = tokenusageDescCallKind.Validators[0].(func(string) error)
	// tokenusageDescModel is the schema descriptor for model field.
	tokenusageDescModel := tokenusageFields[5].Descriptor()
	// tokenusage.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	tokenusage.ModelValidator = tokenusageDescModel.Validators[0].(func(string) error)
	// tokenusageDescPromptTokens is the schema descriptor for prompt_tokens field.
	tokenusageDescPromptTokens := tokenusageFields[6].Descriptor()
	// tokenusage.DefaultPromptTokens holds the default value on creation for the prompt_tokens field.
	tokenusage.DefaultPromptTokens = tokenusageDescPromptTokens.Default.(int)
	// tokenusageDescCompletionTokens is the schema descriptor for completion_tokens field.
	tokenusageDescCompletionTokens := tokenusageFields[7].Descriptor()
	// tokenusage.DefaultCompletionTokens holds the default value on creation for the completion_tokens field.
	tokenusage.DefaultCompletionTokens = tokenusageDescCompletionTokens.Default.(int)
	// tokenusageDescTotalTokens is the schema descriptor for total_tokens field.
	tokenusageDescTotalTokens := tokenusageFields[8].Descriptor()
	// tokenusage.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	tokenusage.DefaultTotalTokens = tokenusageDescTotalTokens.Default.(int)
	// tokenusageDescCost is the schema descriptor for cost field.
	tokenusageDescCost := tokenusageFields[10].Descriptor()
	// tokenusage.DefaultCost holds the default value on creation for the cost field.
	tokenusage.DefaultCost = tokenusageDescCost.Default.(decimal.Decimal)
	// tokenusageDescRequestID is the schema descriptor for request_id field.
	tokenusageDescRequestID := tokenusageFields[11].Descriptor()
	// tokenusage.RequestIDValidator is a validator for the "request_id" field. It is called by the builders before save.
	tokenusage.RequestIDValidator = tokenusageDescRequestID.Validators[0].(func(string) error)
	// tokenusageDescStatus is the schema descriptor for status field.
	tokenusageDescStatus := tokenusageFields[13].Descriptor()
	// tokenusage.DefaultStatus holds the default value on creation for the status field.
	tokenusage.DefaultStatus = tokenusageDescStatus.Default.(string)
	// tokenusage.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	tokenusage.StatusValidator = tokenusageDescStatus.Validators[0].(func(string) error)
	// tokenusageDescIsDeleted is the schema descriptor for is_deleted field.
	tokenusageDescIsDeleted := tokenusageFields[15].Descriptor()
	// tokenusage.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	tokenusage.DefaultIsDeleted = tokenusageDescIsDeleted.Default.(bool)
	// tokenusageDescCreatedAt is the schema descriptor for created_at field.
	tokenusageDescCreatedAt := tokenusageFields[16].Descriptor()
	// tokenusage.DefaultCreatedAt holds the default value on creation for the created_at field.
	tokenusage.DefaultCreatedAt = tokenusageDescCreatedAt.Default.(func() time.Time)
	// tokenusageDescID is the schema descriptor for id field.
	tokenusageDescID := tokenusageFields[0].Descriptor()
	// tokenusage.DefaultID holds the default value on creation for the id field.
	tokenusage.DefaultID = tokenusageDescID.Default.(func() uuid.UUID)
	useraccountFields := schema.UserAccount{}.Fields()
	_ = useraccountFields
	// useraccountDescActorID is the schema descriptor for actor_id field.
	useraccountDescActorID := useraccountFields[1].Descriptor()
	// useraccount.ActorIDValidator is a validator for the "actor_id" field. It is called by the builders before save.
	useraccount.ActorIDValidator = func() func(string) error {
		validators := useraccountDescActorID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(actor_id string) error {
			for _, fn := range fns {
				if err := fn(actor_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// useraccountDescBalance is the schema descriptor for balance field.
	useraccountDescBalance := useraccountFields[2].Descriptor()
	// useraccount.DefaultBalance holds the default value on creation for the balance field.
	useraccount.DefaultBalance = useraccountDescBalance.Default.(decimal.Decimal)
	// useraccountDescTotalRecharged is the schema descriptor for total_recharged field.
	useraccountDescTotalRecharged := useraccountFields[3].Descriptor()
	// useraccount.DefaultTotalRecharged holds the default value on creation for the total_recharged field.
	useraccount.DefaultTotalRecharged = useraccountDescTotalRecharged.Default.(decimal.Decimal)
	// useraccountDescTotalConsumed is the schema descriptor for total_consumed field.
	useraccountDescTotalConsumed := useraccountFields[4].Descriptor()
	// useraccount.DefaultTotalConsumed holds the default value on creation for the total_consumed field.
	useraccount.DefaultTotalConsumed = useraccountDescTotalConsumed.Default.(decimal.Decimal)
	// useraccountDescStatus is the schema descriptor for status field.
	useraccountDescStatus := useraccountFields[5].Descriptor()
	// useraccount.DefaultStatus holds the default value on creation for the status field.
	useraccount.DefaultStatus = useraccountDescStatus.Default.(string)
	// useraccount.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	useraccount.StatusValidator = useraccountDescStatus.Validators[0].(func(string) error)
	// useraccountDescIsDeleted is the schema descriptor for is_deleted field.
	useraccountDescIsDeleted := useraccountFields[6].Descriptor()
	// useraccount.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	useraccount.DefaultIsDeleted = useraccountDescIsDeleted.Default.(bool)
	// useraccountDescCreatedAt is the schema descriptor for created_at field.
	useraccountDescCreatedAt := useraccountFields[7].Descriptor()
	// useraccount.DefaultCreatedAt holds the default value on creation for the created_at field.
	useraccount.DefaultCreatedAt = useraccountDescCreatedAt.Default.(func() time.Time)
	// useraccountDescUpdatedAt is the schema descriptor for updated_at field.
	useraccountDescUpdatedAt := useraccountFields[8].Descriptor()
	// useraccount.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	useraccount.DefaultUpdatedAt = useraccountDescUpdatedAt.Default.(func() time.Time)
	// useraccount.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	useraccount.UpdateDefaultUpdatedAt = useraccountDescUpdatedAt.UpdateDefault.(func() time.Time)
	// useraccountDescID is the schema descriptor for id field.
	useraccountDescID := useraccountFields[0].Descriptor()
	// useraccount.DefaultID holds the default value on creation for the id field.
	useraccount.DefaultID = useraccountDescID.Default.(func() uuid.UUID)
}
