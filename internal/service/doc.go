// Package service contains the application services coordinating store
// operations. Task mutations and their audit-log appends are wrapped in
// a single database transaction here, and subject-reference ownership is
// enforced before a task may point at a subject.
package service
