// Command tidy is a one-shot batch utility that relocates files from a
// source tree into category subfolders based on their extension, with
// optional YYYY-MM date partitioning and configurable handling of
// duplicate-content collisions.
package main
