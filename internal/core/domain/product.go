package domain

// Product is a sellable item. IDs are sequential integers assigned by the
// repository; CategoryID references an existing Category.
//
// The JSON field names are part of the public wire contract; CategoryId
// keeps its historical casing.
type Product struct {
	ID         int    `json:"id" bson:"_id"`
	Name       string `json:"name" bson:"name"`
	ImageURL   string `json:"image_url" bson:"image_url"`
	Price      int    `json:"price" bson:"price"`
	Stock      int    `json:"stock" bson:"stock"`
	Slug       string `json:"slug" bson:"slug"`
	CategoryID int    `json:"CategoryId" bson:"category_id"`
}
