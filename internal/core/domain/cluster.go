package domain

// ClusterKind distinguishes platform-supplied moments from clusters computed
// by time-gap analysis.
type ClusterKind string

const (
	// KindMoment is a cluster derived from a platform coarse group.
	KindMoment ClusterKind = "moment"
	// KindTime is a cluster computed from capture-timestamp gap analysis.
	KindTime ClusterKind = "time"
)

// Cluster is one browsable tile in the catalog. Clusters are immutable after
// construction; a reload replaces the whole catalog rather than mutating it.
//
// Count is always the number of assets actually reachable under the current
// permission grant, never a platform-reported estimate. For KindTime clusters
// AssetIDs is always populated (newest first); for KindMoment clusters it is
// absent and photos are fetched lazily by time range or album.
type Cluster struct {
	ID          string
	Kind        ClusterKind
	Title       string
	Subtitle    string
	CoverURI    string
	Count       int
	StartTimeMs int64
	EndTimeMs   int64
	AssetIDs    []string
	AlbumID     string
}

// HasTimeBounds reports whether the cluster carries a usable time interval.
// Moment clusters built from coarse groups always do; the album fallback in
// the photo cache only applies when this is false.
func (c Cluster) HasTimeBounds() bool {
	return c.StartTimeMs != 0 || c.EndTimeMs != 0
}
