// Package clusterkit is an embedded cluster-analysis toolkit for Go.
//
// It bundles a k-means engine, PCA projection, and clustering quality
// metrics behind a single Analyzer facade, with optional persistence of
// results to local or object storage and a registry of completed runs.
//
// Quick start:
//
//	table, _ := dataset.Penguins()
//	a := clusterkit.New(clusterkit.WithDatasetName("penguins"))
//
//	analysis, err := a.Run(ctx, table, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("wcss=%.1f silhouette=%.3f\n", analysis.WCSS, analysis.Silhouette)
//
// Use Sweep to compare cluster counts:
//
//	sweep, _ := a.Sweep(ctx, table, 2, 7)
//	for _, p := range sweep.Series() {
//	    fmt.Printf("k=%d wcss=%.1f silhouette=%.3f\n", p.K, p.WCSS, p.Silhouette)
//	}
//
// The subpackages are usable on their own: kmeans for the bare engine,
// dataset for tables and CSV loading, pca and quality for the analysis
// primitives, artifact and registry for persistence.
package clusterkit
