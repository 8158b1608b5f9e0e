package domain

// Targeting describes who should see a campaign
type Targeting struct {
	Locations    []string     `json:"locations"`
	Languages    []string     `json:"languages"`
	Devices      []string     `json:"devices"`
	Demographics Demographics `json:"demographics"`
}

// Demographics narrows targeting to audience segments.
type Demographics struct {
	AgeRanges    []string `json:"ageRanges"`
	Genders      []string `json:"genders"`
	IncomeLevels []string `json:"incomeLevels"`
}
