package entity

// ThreatType is a threat category reported by the Safe Browsing API.
type ThreatType string

const (
	ThreatTypeMalware           ThreatType = "MALWARE"
	ThreatTypeSocialEngineering ThreatType = "SOCIAL_ENGINEERING"
	ThreatTypeUnwantedSoftware  ThreatType = "UNWANTED_SOFTWARE"
)

// CheckedThreatTypes is the set of categories every batch is checked against.
var CheckedThreatTypes = []ThreatType{
	ThreatTypeMalware,
	ThreatTypeSocialEngineering,
	ThreatTypeUnwantedSoftware,
}

// ThreatMatch is a reported association between a URL and a threat
// category. Matches are read-only once returned by the checker.
type ThreatMatch struct {
	URL        string     `json:"url"`
	ThreatType ThreatType `json:"threatType"`
}
