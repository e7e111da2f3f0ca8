// Package postgres implements the store interfaces on PostgreSQL,
// translating database errors into the shared store error taxonomy.
package postgres
