// Package postgres implements the store interfaces on top of a
// PostgreSQL database accessed through database/sql with the pgx driver.
// Every task/subject/history query carries the owner ID in its WHERE
// clause, so ownership filtering happens in SQL rather than in Go.
package postgres
