package domain

type Product struct {
	ID          int64  `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Price       Money  `json:"price" bson:"price"`
	ImageURL    string `json:"imageUrl" bson:"image_url"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Category    string `json:"category,omitempty" bson:"category,omitempty"`
}
