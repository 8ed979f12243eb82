package menu

import (
	"strconv"
)

const noImageLabel = "no image"

// View is the projection of a snapshot that the console draws.
type View struct {
	Categories    []CategoryRow
	Items         []ItemRow
	FilterOptions []FilterOption
}

// CategoryRow is a rendered category line.
type CategoryRow struct {
	Slug     string
	Title    string
	Badge    string
	Subtitle string
}

// ItemRow is a rendered item line.
type ItemRow struct {
	ID       int64
	Title    string
	Price    string
	Category string
	Subtitle string
	Image    string
}

// Key identifies the row for cursor bookkeeping.
func (r ItemRow) Key() string {
	return strconv.FormatInt(r.ID, 10)
}

// FilterOption is one entry of the category filter. The first option is
// always All with an empty value.
type FilterOption struct {
	Value string
	Label string
}

// Render projects a snapshot through the filter. It is pure and rebuilds
// every row on each call.
func Render(s Snapshot, f Filter) View {
	v := View{
		Categories:    make([]CategoryRow, 0, len(s.Categories)),
		FilterOptions: FilterOptions(s),
	}
	for _, c := range s.Categories {
		v.Categories = append(v.Categories, categoryRow(c))
	}
	items := FilterItems(s.Items, f)
	v.Items = make([]ItemRow, 0, len(items))
	for _, it := range items {
		v.Items = append(v.Items, itemRow(it))
	}
	return v
}

// FilterOptions lists All followed by every category in server order.
func FilterOptions(s Snapshot) []FilterOption {
	opts := make([]FilterOption, 0, len(s.Categories)+1)
	opts = append(opts, FilterOption{Value: "", Label: "All"})
	for _, c := range s.Categories {
		opts = append(opts, FilterOption{Value: c.Slug, Label: c.NameUZ})
	}
	return opts
}

func categoryRow(c Category) CategoryRow {
	return CategoryRow{
		Slug:     c.Slug,
		Title:    c.NameUZ,
		Badge:    c.Slug,
		Subtitle: "RU: " + c.NameRU,
	}
}

func itemRow(it Item) ItemRow {
	image := noImageLabel
	if it.ImageURL != "" {
		image = it.ImageURL
	}
	return ItemRow{
		ID:       it.ID,
		Title:    it.NameUZ,
		Price:    FormatPrice(it.Price),
		Category: "Cat: " + it.CategorySlug,
		Subtitle: "RU: " + it.NameRU,
		Image:    "Img: " + image,
	}
}
