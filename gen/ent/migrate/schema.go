// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BillsColumns holds the columns for the "bills" table.
	BillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "workspace_id", Type: field.TypeUUID},
		{Name: "bank", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "trade_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "record_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "amount_cny", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(15,2)"}},
		{Name: "card_last4", Type: field.TypeString, Nullable: true},
		{Name: "amount_foreign", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(15,2)"}},
		{Name: "currency", Type: field.TypeString, Nullable: true, Size: 10},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "raw_line", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "file_upload_id", Type: field.TypeUUID},
	}
	// BillsTable holds the schema information for the "bills" table.
	BillsTable = &schema.Table{
		Name:       "bills",
		Columns:    BillsColumns,
		PrimaryKey: []*schema.Column{BillsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bills_file_uploads_bills",
				Columns:    []*schema.Column{BillsColumns[15]},
				RefColumns: []*schema.Column{FileUploadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "bill_file_upload_id_is_deleted",
				Unique:  false,
				Columns: []*schema.Column{BillsColumns[15], BillsColumns[12]},
			},
			{
				Name:    "bill_workspace_id_trade_date_is_deleted",
				Unique:  false,
				Columns: []*schema.Column{BillsColumns[1], BillsColumns[3], BillsColumns[12]},
			},
		},
	}
	// BillingRecordsColumns holds the columns for the "billing_records" table.
	BillingRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "actor_id", Type: field.TypeString, Size: 64},
		{Name: "amount", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(10,2)", "sqlite3": "numeric"}},
		{Name: "balance_before", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(10,2)", "sqlite3": "numeric"}},
		{Name: "balance_after", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(10,2)", "sqlite3": "numeric"}},
		{Name: "billing_type", Type: field.TypeString, Size: 20, Default: "token_usage"},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "token_usage_id", Type: field.TypeUUID, Nullable: true},
	}
	// BillingRecordsTable holds the schema information for the "billing_records" table.
	BillingRecordsTable = &schema.Table{
		Name:       "billing_records",
		Columns:    BillingRecordsColumns,
		PrimaryKey: []*schema.Column{BillingRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "billing_records_token_usage_records_billing_records",
				Columns:    []*schema.Column{BillingRecordsColumns[9]},
				RefColumns: []*schema.Column{TokenUsageRecordsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "billingrecord_actor_id_billing_type_is_deleted",
				Unique:  false,
				Columns: []*schema.Column{BillingRecordsColumns[1], BillingRecordsColumns[5], BillingRecordsColumns[7]},
			},
			{
				Name:    "billingrecord_actor_id_created_at_is_deleted",
				Unique:  false,
				Columns: []*schema.Column{BillingRecordsColumns[1], BillingRecordsColumns[8], BillingRecordsColumns[7]},
			},
		},
	}
	// FileUploadsColumns holds the columns for the "file_uploads" table.
	FileUploadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "workspace_id", Type: field.TypeUUID},
		{Name: "actor_id", Type: field.TypeString, Size: 64},
		{Name: "content_hash", Type: field.TypeString, Size: 64},
		{Name: "filename", Type: field.TypeString},
		{Name: "saved_path", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "raw_content", Type: field.TypeString, Size: 2147483647},
		{Name: "refined_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "bills_count", Type: field.TypeInt, Default: 0},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeString, Default: "processing"},
		{Name: "remark", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FileUploadsTable holds the schema information for the "file_uploads" table.
	FileUploadsTable = &schema.Table{
		Name:       "file_uploads",
		Columns:    FileUploadsColumns,
		PrimaryKey: []*schema.Column{FileUploadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fileupload_workspace_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{FileUploadsColumns[1], FileUploadsColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "not is_deleted",
				},
			},
			{
				Name:    "fileupload_workspace_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{FileUploadsColumns[1], FileUploadsColumns[10]},
			},
			{
				Name:    "fileupload_actor_id",
				Unique:  false,
				Columns: []*schema.Column{FileUploadsColumns[2]},
			},
		},
	}
	// TokenUsageRecordsColumns holds the columns for the "token_usage_records" table.
	TokenUsageRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "actor_id", Type: field.TypeString, Size: 64},
		{Name: "workspace_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_upload_id", Type: field.TypeUUID, Nullable: true},
		{Name: "call_kind", Type: field.TypeString},
		{Name: "model", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "prompt_tokens", Type: field.TypeInt, Default: 0},
		{Name: "completion_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "unit_price", Type: field.TypeOther, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(10,2)", "sqlite3": "numeric"}},
		{Name: "cost", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(10,2)", "sqlite3": "numeric"}},
		{Name: "request_id", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "response_time_ms", Type: field.TypeInt, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "success"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TokenUsageRecordsTable holds the schema information for the "token_usage_records" table.
	TokenUsageRecordsTable = &schema.Table{
		Name:       "token_usage_records",
		Columns:    TokenUsageRecordsColumns,
		PrimaryKey: []*schema.Column{TokenUsageRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tokenusage_actor_id_workspace_id_is_deleted",
				Unique:  false,
				Columns: []*schema.Column{TokenUsageRecordsColumns[1], TokenUsageRecordsColumns[2], TokenUsageRecordsColumns[15]},
			},
			{
				Name:    "tokenusage_file_upload_id_is_deleted",
				Unique:  false,
				Columns: []*schema.Column{TokenUsageRecordsColumns[3], TokenUsageRecordsColumns[15]},
			},
			{
				Name:    "tokenusage_actor_id_created_at_is_deleted",
				Unique:  false,
				Columns: []*schema.Column{TokenUsageRecordsColumns[1], TokenUsageRecordsColumns[16], TokenUsageRecordsColumns[15]},
			},
		},
	}
	// UserAccountsColumns holds the columns for the "user_accounts" table.
	UserAccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "actor_id", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "balance", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(10,2)", "sqlite3": "numeric"}},
		{Name: "total_recharged", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(10,2)", "sqlite3": "numeric"}},
		{Name: "total_consumed", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(10,2)", "sqlite3": "numeric"}},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserAccountsTable holds the schema information for the "user_accounts" table.
	UserAccountsTable = &schema.Table{
		Name:       "user_accounts",
		Columns:    UserAccountsColumns,
		PrimaryKey: []*schema.Column{UserAccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "useraccount_actor_id_status_is_deleted",
				Unique:  false,
				Columns: []*schema.Column{UserAccountsColumns[1], UserAccountsColumns[5], UserAccountsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BillsTable,
		BillingRecordsTable,
		FileUploadsTable,
		TokenUsageRecordsTable,
		UserAccountsTable,
	}
)

func init() {
	BillsTable.ForeignKeys[0].RefTable = FileUploadsTable
	BillsTable.Annotation = &entsql.Annotation{
		Table: "bills",
	}
	BillingRecordsTable.ForeignKeys[0].RefTable = TokenUsageRecordsTable
	BillingRecordsTable.Annotation = &entsql.Annotation{
		Table: "billing_records",
	}
	FileUploadsTable.Annotation = &entsql.Annotation{
		Table: "file_uploads",
	}
	TokenUsageRecordsTable.Annotation = &entsql.Annotation{
		Table: "token_usage_records",
	}
	UserAccountsTable.Annotation = &entsql.Annotation{
		Table: "user_accounts",
	}
}
