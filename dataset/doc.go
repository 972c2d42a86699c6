// Package dataset provides the numeric table type consumed by the clustering
// engine, CSV loading, and complete-case filtering.
//
// Tables are immutable once constructed. Row selection and incomplete-row
// filtering are expressed with roaring bitmaps over row indices, so a filter
// result can be carried alongside the original table and re-applied to
// parallel data (e.g. label columns).
//
// The package also bundles a small penguin morphometry sample (333 complete
// observations, 4 numeric measurements) used throughout the examples and
// tests.
package dataset
