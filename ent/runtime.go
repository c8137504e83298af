// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/llimit/gateway/ent/apikey"
	"github.com/llimit/gateway/ent/chatmessage"
	"github.com/llimit/gateway/ent/chatthread"
	"github.com/llimit/gateway/ent/file"
	"github.com/llimit/gateway/ent/schema"
	"github.com/llimit/gateway/ent/task"
	"github.com/llimit/gateway/ent/taskcost"
	"github.com/llimit/gateway/ent/taskstep"
	"github.com/llimit/gateway/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apikeyFields := schema.APIKey{}.Fields()
	_ = apikeyFields
	// apikeyDescCreatedAt is the schema descriptor for created_at field.
	apikeyDescCreatedAt := apikeyFields[4].Descriptor()
	// apikey.DefaultCreatedAt holds the default value on creation for the created_at field.
	apikey.DefaultCreatedAt = apikeyDescCreatedAt.Default.(func() time.Time)
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[5].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	chatthreadFields := schema.ChatThread{}.Fields()
	_ = chatthreadFields
	// chatthreadDescCreatedAt is the schema descriptor for created_at field.
	chatthreadDescCreatedAt := chatthreadFields[5].Descriptor()
	// chatthread.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatthread.DefaultCreatedAt = chatthreadDescCreatedAt.Default.(func() time.Time)
	// chatthreadDescUpdatedAt is the schema descriptor for updated_at field.
	chatthreadDescUpdatedAt := chatthreadFields[6].Descriptor()
	// chatthread.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatthread.DefaultUpdatedAt = chatthreadDescUpdatedAt.Default.(func() time.Time)
	// chatthread.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chatthread.UpdateDefaultUpdatedAt = chatthreadDescUpdatedAt.UpdateDefault.(func() time.Time)
	fileFields := schema.File{}.Fields()
	_ = fileFields
	// fileDescCreatedAt is the schema descriptor for created_at field.
	fileDescCreatedAt := fileFields[9].Descriptor()
	// file.DefaultCreatedAt holds the default value on creation for the created_at field.
	file.DefaultCreatedAt = fileDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescStepsGenerated is the schema descriptor for steps_generated field.
	taskDescStepsGenerated := taskFields[6].Descriptor()
	// task.DefaultStepsGenerated holds the default value on creation for the steps_generated field.
	task.DefaultStepsGenerated = taskDescStepsGenerated.Default.(bool)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[7].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	taskcostFields := schema.TaskCost{}.Fields()
	_ = taskcostFields
	// taskcostDescCreatedAt is the schema descriptor for created_at field.
	taskcostDescCreatedAt := taskcostFields[3].Descriptor()
	// taskcost.DefaultCreatedAt holds the default value on creation for the created_at field.
	taskcost.DefaultCreatedAt = taskcostDescCreatedAt.Default.(func() time.Time)
	taskstepFields := schema.TaskStep{}.Fields()
	_ = taskstepFields
	// taskstepDescCreatedAt is the schema descriptor for created_at field.
	taskstepDescCreatedAt := taskstepFields[8].Descriptor()
	// taskstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	taskstep.DefaultCreatedAt = taskstepDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[1].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
