package domain

// Category groups products under a name and a URL slug.
type Category struct {
	ID   int    `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
	Slug string `json:"slug" bson:"slug"`
}
