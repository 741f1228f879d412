// Package category maps file extensions to named buckets using an ordered,
// immutable table constructed from configuration.
package category
