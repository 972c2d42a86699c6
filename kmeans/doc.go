// Package kmeans implements Lloyd's algorithm for partitional clustering of
// numeric tables.
//
// A fit is a pure function of the input table, k, the options, and the seed:
// the engine keeps no state between calls, never mutates the caller's table,
// and isolates all randomness in centroid initialization. Ties in the
// assignment step go to the lowest centroid index, so two fits from the same
// initial centroids always produce identical results.
//
// Empty clusters are an explicit condition with a selectable policy (freeze
// the previous centroid, reseed from a random observation, or fail); an
// undefined centroid value is never propagated into the result.
package kmeans
