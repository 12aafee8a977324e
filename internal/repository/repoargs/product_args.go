package repoargs

type CreateProduct struct {
	Name        string
	Description string
	Price       int64
	Stock       int
	ImageURL    string
}
