// Package dupes resolves destination-path collisions. It distinguishes
// confirmed content duplicates from same-name clashes via streamed SHA-256
// hashing and applies the configured rename, skip, or replace strategy.
package dupes
