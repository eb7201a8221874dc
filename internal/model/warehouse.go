package model

// Warehouse is one entry of the coverage dataset.
type Warehouse struct {
	Region      string   `json:"region"`
	District    string   `json:"district"`
	City        string   `json:"city"`
	CoveredArea []string `json:"covered_area"`
	Status      string   `json:"status"`
	FlowChart   string   `json:"flowchart"`
	Longitude   float64  `json:"longitude"`
	Latitude    float64  `json:"latitude"`
}

// Image is an uploaded picture hosted in object storage.
type Image struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}
