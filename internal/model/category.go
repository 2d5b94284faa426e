package model

// Placeholder values shown on the category button before anything is chosen.
const (
	PlaceholderCategoryKey  = "category"
	PlaceholderCategoryName = "Categoria"
)

// Category is an entry of the category catalogue.
type Category struct {
	Key   string
	Name  string
	Color string
}

// DefaultCategories is the catalogue offered by the category picker.
var DefaultCategories = []Category{
	{Key: "purchases", Name: "Compras", Color: "#5636D3"},
	{Key: "food", Name: "Alimentação", Color: "#FF872C"},
	{Key: "salary", Name: "Salário", Color: "#12A454"},
	{Key: "car", Name: "Carro", Color: "#E83F5B"},
	{Key: "leisure", Name: "Lazer", Color: "#26195C"},
	{Key: "studies", Name: "Estudos", Color: "#9C001A"},
}

// FindCategory looks a category up by key in the default catalogue.
func FindCategory(key string) (Category, bool) {
	for _, c := range DefaultCategories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// CategorySelection is either unselected or holds the chosen category.
type CategorySelection struct {
	category Category
	selected bool
}

// Unselected returns the empty selection.
func Unselected() CategorySelection {
	return CategorySelection{}
}

// Selected wraps a chosen category. The placeholder key never counts as a choice.
func Selected(c Category) CategorySelection {
	if c.Key == "" || c.Key == PlaceholderCategoryKey {
		return Unselected()
	}
	return CategorySelection{category: c, selected: true}
}

// IsSelected reports whether a category was chosen.
func (s CategorySelection) IsSelected() bool {
	return s.selected
}

// Category returns the chosen category and whether there is one.
func (s CategorySelection) Category() (Category, bool) {
	return s.category, s.selected
}

// Key returns the chosen key, or the placeholder key when unselected.
func (s CategorySelection) Key() string {
	if !s.selected {
		return PlaceholderCategoryKey
	}
	return s.category.Key
}

// Title is the text shown on the category button.
func (s CategorySelection) Title() string {
	if !s.selected {
		return PlaceholderCategoryName
	}
	return s.category.Name
}
