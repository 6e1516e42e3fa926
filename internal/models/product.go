package models

// Product represents one entry of the comparison catalog.
type Product struct {
	ID       string   `bson:"_id"      json:"id"       yaml:"id"`
	Name     string   `bson:"name"     json:"name"     yaml:"name"`
	Category string   `bson:"category" json:"category" yaml:"category"`
	Price    float64  `bson:"price"    json:"price"    yaml:"price"`
	Features []string `bson:"features" json:"features" yaml:"features"`
	Pros     []string `bson:"pros"     json:"pros"     yaml:"pros"`
	Cons     []string `bson:"cons"     json:"cons"     yaml:"cons"`
}
