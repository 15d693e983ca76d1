package models

// Photo is a progress photo. Data holds the inline-encoded image payload
// or an external reference; Date/Time record the capture moment.
type Photo struct {
	ID       string `json:"id"`
	Data     string `json:"data"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	FileName string `json:"fileName"`
}
