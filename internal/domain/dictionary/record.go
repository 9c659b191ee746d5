package dictionary

// Record is one entry of the garbage-sorting dictionary: an item name,
// its normalized disposal category, the raw category string it came
// from, and free-text disposal instructions.
type Record struct {
	ID           string   `json:"id"`
	Item         string   `json:"item"`
	Category     Category `json:"category"`
	FullCategory string   `json:"fullCategory"`
	Note         string   `json:"note"`
}
