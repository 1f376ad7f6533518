package models

// FoodItem is an orderable catalog entry. Price is a display label, not a number.
type FoodItem struct {
	Name  string
	Price string
	Emoji string
}

// Title renders the item as shown in catalog and cart rows
func (f FoodItem) Title() string {
	return f.Emoji + " " + f.Name
}

// Summary renders the item as listed on the order confirmation
func (f FoodItem) Summary() string {
	return f.Title() + " - " + f.Price
}

// Catalog is the fixed, ordered list of items offered by the app
type Catalog struct {
	items []FoodItem
}

var defaultCatalog = &Catalog{items: []FoodItem{
	{Name: "Pizza", Price: "$12", Emoji: "🍕"},
	{Name: "Burger", Price: "$8", Emoji: "🍔"},
	{Name: "Fries", Price: "$5", Emoji: "🍟"},
	{Name: "Sushi", Price: "$15", Emoji: "🍣"},
	{Name: "Pasta", Price: "$10", Emoji: "🍝"},
	{Name: "Ice Cream", Price: "$6", Emoji: "🍦"},
	{Name: "Salad", Price: "$7", Emoji: "🥗"},
	{Name: "Steak", Price: "$20", Emoji: "🥩"},
	{Name: "Tacos", Price: "$9", Emoji: "🌮"},
	{Name: "Burrito", Price: "$11", Emoji: "🌯"},
	{Name: "Hot Dog", Price: "$5", Emoji: "🌭"},
	{Name: "Ramen", Price: "$12", Emoji: "🍜"},
	{Name: "Donuts", Price: "$4", Emoji: "🍩"},
	{Name: "Curry", Price: "$14", Emoji: "🍛"},
	{Name: "Smoothie", Price: "$7", Emoji: "🥤"},
	{Name: "Cupcakes", Price: "$5", Emoji: "🧁"},
	{Name: "Pancakes", Price: "$8", Emoji: "🥞"},
}}

// DefaultCatalog returns the process-wide catalog shared by every session
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// NewCatalog builds a catalog from the given items. The slice is copied.
func NewCatalog(items []FoodItem) *Catalog {
	return &Catalog{items: append([]FoodItem(nil), items...)}
}

// Items returns a copy of all catalog entries in display order
func (c *Catalog) Items() []FoodItem {
	return append([]FoodItem(nil), c.items...)
}

func (c *Catalog) Len() int {
	return len(c.items)
}

func (c *Catalog) At(i int) FoodItem {
	return c.items[i]
}
