package holiday

// HolidaysResponse - DTO returned by the holiday lookup endpoint
type HolidaysResponse struct {
	Year     int       `json:"year"`
	Source   Origin    `json:"source"`
	Holidays []Holiday `json:"holidays"`
}
