// Package plan computes destination paths for classified files, including
// optional YYYY-MM date partitioning by modification time.
package plan
