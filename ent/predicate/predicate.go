// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// APIKey is the predicate function for apikey builders.
type APIKey func(*sql.Selector)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// ChatThread is the predicate function for chatthread builders.
type ChatThread func(*sql.Selector)

// File is the predicate function for file builders.
type File func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskCost is the predicate function for taskcost builders.
type TaskCost func(*sql.Selector)

// TaskStep is the predicate function for taskstep builders.
type TaskStep func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
