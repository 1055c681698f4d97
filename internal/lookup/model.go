package lookup

// PublicEducation is the patient-facing projection of a drug education
// record. Ownership columns and timestamps never leave the server.
type PublicEducation struct {
	Title    string  `gorm:"column:title" json:"title"`
	VideoURL *string `gorm:"column:video_url" json:"video_url"`
	Summary  *string `gorm:"column:summary" json:"summary"`
}
