package entities

// Interest is a category a student has declared interest in.
type Interest struct {
	ID   int    `json:"interest_id"`
	Name string `json:"name"`
}
