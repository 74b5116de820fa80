package domain

// Template is a reusable response template. Default templates ship with
// the system and cannot be deleted.
type Template struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	IsDefault bool   `json:"isDefault"`
}
