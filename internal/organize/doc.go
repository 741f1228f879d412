// Package organize walks a source tree, classifies each file by extension,
// plans its destination, resolves collisions, and moves it — sequentially,
// one file fully handled before the next. Per-file failures are counted and
// logged; the run continues.
package organize
