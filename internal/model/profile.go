package model

// Profile holds optional descriptive fields for a ticker.
// Empty strings and a zero MarketCap mean the provider did not supply the field.
type Profile struct {
	Name      string
	Sector    string
	Industry  string
	MarketCap int64
	Currency  string
}
