package models

// Profile extends a User with form-entered fields kept outside the core
// identity record, keyed by user id. Values stay as entered.
type Profile struct {
	UserID     string `json:"userId"`
	Age        string `json:"age"`
	Weight     string `json:"weight"`
	Height     string `json:"height"`
	Goal       string `json:"goal"`
	Experience string `json:"experience"`
	Bio        string `json:"bio"`
}
