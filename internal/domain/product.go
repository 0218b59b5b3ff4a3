package domain

// Record is the raw, stored form of a product as held by the data layer.
// Records are immutable after the seed load; the client-facing shape is
// derived per request by the catalog package.
type Record struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Featured    bool      `json:"featured"`
	ImageURL    string    `json:"imageUrl"`
	Rating      float64   `json:"rating"`
	Tags        []string  `json:"tags"`
	Variants    []Variant `json:"variants"`
}

// Variant is a purchasable option of a record (color, size, finish).
// The pipeline treats it as opaque; only id and label are required.
type Variant struct {
	ID         string            `json:"id"`
	Label      string            `json:"label"`
	Attributes map[string]string `json:"attributes,omitempty"`
}
