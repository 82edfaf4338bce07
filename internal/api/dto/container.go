package dto

type ContainerMetricsResponse struct {
	PredictedHours float64 `json:"predicted_hours"`
	BandLowHours   float64 `json:"band_low_hours"`
	BandHighHours  float64 `json:"band_high_hours"`
	OnTime         bool    `json:"on_time"`
	RiskScore      float64 `json:"risk_score"`
	RiskTier       string  `json:"risk_tier"`
}

type ContainerResponse struct {
	ContainerID      string                   `json:"container_id"`
	Carrier          string                   `json:"carrier"`
	OriginPort       string                   `json:"origin_port"`
	DestinationPort  string                   `json:"destination_port"`
	Vessel           string                   `json:"vessel"`
	Region           string                   `json:"region"`
	Lat              float64                  `json:"lat"`
	Lon              float64                  `json:"lon"`
	DistanceNM       float64                  `json:"distance_nm"`
	SpeedKts         float64                  `json:"speed_kts"`
	CongestionFactor float64                  `json:"congestion_factor"`
	WindProxy        float64                  `json:"wind_proxy"`
	NominalHours     float64                  `json:"nominal_hours"`
	Metrics          ContainerMetricsResponse `json:"metrics"`
}

type ListContainersResponse struct {
	Containers []ContainerResponse `json:"containers"`
}

type GetContainerResponse struct {
	Container ContainerResponse `json:"container"`
	Summary   string            `json:"summary"`
}
