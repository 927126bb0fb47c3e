package responses

// Affected reports how many rows a write touched, which is how callers learn
// that an update or delete found its target.
type Affected struct {
	Affected int64 `json:"affected"`
}
