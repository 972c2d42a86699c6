package quality

// Point is one entry of a k-sweep series.
type Point struct {
	K          int     `json:"k"`
	WCSS       float64 `json:"wcss"`
	Silhouette float64 `json:"silhouette"`
	Converged  bool    `json:"converged"`
}

// Series is an ordered sequence of sweep points, ascending in K.
type Series []Point

// NonIncreasingWCSS reports whether WCSS never increases as K grows, the
// shape an elbow plot relies on.
func (s Series) NonIncreasingWCSS() bool {
	for i := 1; i < len(s); i++ {
		if s[i].WCSS > s[i-1].WCSS {
			return false
		}
	}
	return true
}

// BestSilhouette returns the point with the highest silhouette score, or a
// zero Point for an empty series.
func (s Series) BestSilhouette() Point {
	var best Point
	for i, p := range s {
		if i == 0 || p.Silhouette > best.Silhouette {
			best = p
		}
	}
	return best
}
