// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APIKeysColumns holds the columns for the "api_keys" table.
	APIKeysColumns = []*schema.Column{
		{Name: "api_key_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "key_hash", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
	}
	// APIKeysTable holds the schema information for the "api_keys" table.
	APIKeysTable = &schema.Table{
		Name:       "api_keys",
		Columns:    APIKeysColumns,
		PrimaryKey: []*schema.Column{APIKeysColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "api_keys_users_api_keys",
				Columns:    []*schema.Column{APIKeysColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "apikey_user_id",
				Unique:  false,
				Columns: []*schema.Column{APIKeysColumns[5]},
			},
			{
				Name:    "apikey_key_hash",
				Unique:  false,
				Columns: []*schema.Column{APIKeysColumns[2]},
			},
		},
	}
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"system", "user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "additional_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "thread_id", Type: field.TypeString},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_chat_threads_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[5]},
				RefColumns: []*schema.Column{ChatThreadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_thread_id",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[5]},
			},
			{
				Name:    "chatmessage_thread_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[5], ChatMessagesColumns[4]},
			},
		},
	}
	// ChatThreadsColumns holds the columns for the "chat_threads" table.
	ChatThreadsColumns = []*schema.Column{
		{Name: "thread_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "model_name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
	}
	// ChatThreadsTable holds the schema information for the "chat_threads" table.
	ChatThreadsTable = &schema.Table{
		Name:       "chat_threads",
		Columns:    ChatThreadsColumns,
		PrimaryKey: []*schema.Column{ChatThreadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_threads_users_chat_threads",
				Columns:    []*schema.Column{ChatThreadsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatthread_user_id",
				Unique:  false,
				Columns: []*schema.Column{ChatThreadsColumns[7]},
			},
			{
				Name:    "chatthread_user_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ChatThreadsColumns[7], ChatThreadsColumns[5]},
			},
		},
	}
	// FilesColumns holds the columns for the "files" table.
	FilesColumns = []*schema.Column{
		{Name: "file_id", Type: field.TypeString, Unique: true},
		{Name: "filename", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "content_type", Type: field.TypeString},
		{Name: "size_bytes", Type: field.TypeInt64, Nullable: true},
		{Name: "storage_path", Type: field.TypeString, Nullable: true},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "page_count", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// FilesTable holds the schema information for the "files" table.
	FilesTable = &schema.Table{
		Name:       "files",
		Columns:    FilesColumns,
		PrimaryKey: []*schema.Column{FilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "files_users_files",
				Columns:    []*schema.Column{FilesColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "file_user_id",
				Unique:  false,
				Columns: []*schema.Column{FilesColumns[9]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"decomposing", "in_progress", "completed", "failed"}, Default: "decomposing"},
		{Name: "output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "steps_generated", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_users_tasks",
				Columns:    []*schema.Column{TasksColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_user_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[8]},
			},
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3]},
			},
			{
				Name:    "task_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[8], TasksColumns[6]},
			},
		},
	}
	// TaskCostsColumns holds the columns for the "task_costs" table.
	TaskCostsColumns = []*schema.Column{
		{Name: "cost_id", Type: field.TypeString, Unique: true},
		{Name: "amount_usd", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// TaskCostsTable holds the schema information for the "task_costs" table.
	TaskCostsTable = &schema.Table{
		Name:       "task_costs",
		Columns:    TaskCostsColumns,
		PrimaryKey: []*schema.Column{TaskCostsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_costs_tasks_costs",
				Columns:    []*schema.Column{TaskCostsColumns[3]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskcost_task_id",
				Unique:  false,
				Columns: []*schema.Column{TaskCostsColumns[3]},
			},
		},
	}
	// TaskStepsColumns holds the columns for the "task_steps" table.
	TaskStepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "step_number", Type: field.TypeInt},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "step_type", Type: field.TypeEnum, Enums: []string{"normal", "reevaluate"}, Default: "normal"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "could_not_complete", "failed", "abandoned"}, Default: "pending"},
		{Name: "step_details", Type: field.TypeJSON},
		{Name: "response_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "task_id", Type: field.TypeString},
	}
	// TaskStepsTable holds the schema information for the "task_steps" table.
	TaskStepsTable = &schema.Table{
		Name:       "task_steps",
		Columns:    TaskStepsColumns,
		PrimaryKey: []*schema.Column{TaskStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_steps_tasks_steps",
				Columns:    []*schema.Column{TaskStepsColumns[10]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskstep_task_id",
				Unique:  false,
				Columns: []*schema.Column{TaskStepsColumns[10]},
			},
			{
				Name:    "taskstep_task_id_step_number",
				Unique:  false,
				Columns: []*schema.Column{TaskStepsColumns[10], TaskStepsColumns[1]},
			},
			{
				Name:    "taskstep_task_id_status",
				Unique:  false,
				Columns: []*schema.Column{TaskStepsColumns[10], TaskStepsColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APIKeysTable,
		ChatMessagesTable,
		ChatThreadsTable,
		FilesTable,
		TasksTable,
		TaskCostsTable,
		TaskStepsTable,
		UsersTable,
	}
)

func init() {
	APIKeysTable.ForeignKeys[0].RefTable = UsersTable
	ChatMessagesTable.ForeignKeys[0].RefTable = ChatThreadsTable
	ChatThreadsTable.ForeignKeys[0].RefTable = UsersTable
	FilesTable.ForeignKeys[0].RefTable = UsersTable
	TasksTable.ForeignKeys[0].RefTable = UsersTable
	TaskCostsTable.ForeignKeys[0].RefTable = TasksTable
	TaskStepsTable.ForeignKeys[0].RefTable = TasksTable
}
