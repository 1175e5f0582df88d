// Package lib provides a Go SDK to manage tasker tasks programmatically.
//
// It uses the same storage and rules as the tasker CLI, so both can be used
// over the same tasks file or database.
//
// # Quick Start
//
//	client, err := lib.New(ctx, lib.Config{TasksFile: "tasks.json"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	task, _ := client.AddTask(ctx, "buy milk")
//	client.MarkTask(ctx, task.ID, lib.TaskStatusDone)
//	done := lib.TaskStatusDone
//	tasks, _ := client.ListTasks(ctx, &lib.ListTasksOpts{Status: &done})
//
// # Storage
//
//   - [StorageFile]: The tasks file format shared with the CLI (default).
//   - [StorageSQLite]: A SQLite database.
//
// # Error Handling
//
// All methods return errors that can be inspected with [errors.Is]:
//
//   - [ErrNotFound]: The task does not exist.
//   - [ErrNotValid]: Invalid input or invalid persisted tasks.
//
// # Thread Safety
//
// Every call loads and saves the whole task list, a [Client] shouldn't be used
// concurrently with mutations from other clients or processes.
package lib
