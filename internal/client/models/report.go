package models

// Report is the full borehole submission payload. Field names match the wire
// format and the server's CSV headers exactly. Numeric-looking values stay
// strings: the form captures raw operator input and validation parses them.
type Report struct {
	BoreholeID             string `json:"BoreholeID"`
	ProjectName            string `json:"ProjectName"`
	SiteName               string `json:"SiteName"`
	Latitude               string `json:"Latitude"`
	Longitude              string `json:"Longitude"`
	GroundElevation        string `json:"GroundElevation_mRL"`
	StartDate              string `json:"StartDate"`
	EndDate                string `json:"EndDate"`
	DrillingMethod         string `json:"DrillingMethod"`
	BoreholeDiameter       string `json:"BoreholeDiameter_mm"`
	TargetDepth            string `json:"TargetDepth_m"`
	FinalDepth             string `json:"FinalDepth_m"`
	CasingInstalled        string `json:"CasingInstalled_mm"`
	GroundwaterDepth       string `json:"GroundwaterDepth_m"`
	GroundwaterEncountered bool   `json:"GroundwaterEncountered"`
	SoilDescription        string `json:"SoilDescription"`
	USCSClass              string `json:"USCS_Class"`
	AvgSPTN60              string `json:"Avg_SPT_N60"`
	Contractor             string `json:"Contractor"`
	LoggingGeologist       string `json:"LoggingGeologist"`
	Remarks                string `json:"Remarks"`
}
