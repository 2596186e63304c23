package config

// Lumefile represents the structure of the lume.yaml configuration file.
type Lumefile struct {
	Version    string         `yaml:"version"`
	Library    string         `yaml:"library"`
	Clustering *ClusteringDTO `yaml:"clustering"`
	Fetch      *FetchDTO      `yaml:"fetch"`
}

// ClusteringDTO holds the time clustering knobs. Pointer fields distinguish
// "absent" from an explicit zero.
type ClusteringDTO struct {
	TimeGapMinutes *int    `yaml:"timeGapMinutes"`
	MinClusterSize *int    `yaml:"minClusterSize"`
	Timezone       *string `yaml:"timezone"`
}

// FetchDTO holds the working-set and paging knobs.
type FetchDTO struct {
	MaxWorkingSet        *int `yaml:"maxWorkingSet"`
	PageSize             *int `yaml:"pageSize"`
	MomentPaddingSeconds *int `yaml:"momentPaddingSeconds"`
}
