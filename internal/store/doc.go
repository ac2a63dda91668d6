// Package store defines the persistence interfaces for the task API's
// entities (users, subjects, tasks, history) together with the shared
// error sentinels and transaction helper. Concrete implementations live
// in internal/platform/postgres.
package store
