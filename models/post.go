package models

// Post categories. The set is advisory: a category outside it is
// stored as-is, but a post always carries one.
const (
	CategoryAgriculture   = "Agriculture"
	CategoryBusiness      = "Business"
	CategoryWeather       = "Weather"
	CategoryArt           = "Art"
	CategoryUncategorised = "Uncategorised"
	CategoryEntertainment = "Entertainment"
	CategoryEducation     = "Education"
)

var Categories = []string{
	CategoryAgriculture,
	CategoryBusiness,
	CategoryWeather,
	CategoryArt,
	CategoryUncategorised,
	CategoryEntertainment,
	CategoryEducation,
}

type EditPostRequest struct {
	Title       string `json:"title" form:"title" conform:"trim"`
	Category    string `json:"category" form:"category" conform:"trim"`
	Description string `json:"description" form:"description"`
}

func (r *EditPostRequest) Conform() error {
	return validateWhiteSpaces(r)
}

// Post is a blog entry. CreatorID is immutable after creation and is
// the only identity allowed to edit or delete the post. Thumbnail is a
// generated filename inside the media store.
type Post struct {
	Model
	Title       string `json:"title" gorm:"not null"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	CreatorID   uint   `json:"creator" gorm:"index"`
}
