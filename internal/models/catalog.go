package models

import "time"

// Food represents a menu item available in the shop.
type Food struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Description   string   `json:"description,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	Available     bool     `json:"available"`
	Category      Category `json:"category"`
}

// Category is a food category used for shop filtering.
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Chef represents a chef profile shown on the chefs page.
type Chef struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Experience  int    `json:"experience"`
	Specialty   string `json:"specialty"`
	Description string `json:"description,omitempty"`
	Available   bool   `json:"available"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Menu is a curated menu with its sections.
type Menu struct {
	Title    string        `json:"title"`
	ImageURL string        `json:"imageUrl,omitempty"`
	Sections []MenuSection `json:"sections"`
}

// MenuSection groups related menu items under a heading.
type MenuSection struct {
	Title string     `json:"title"`
	Items []MenuItem `json:"items"`
}

// MenuItem is a single dish inside a menu section.
type MenuItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Calories    int     `json:"calories,omitempty"`
	Price       float64 `json:"price"`
}

// Blog is a blog post shown on the marketing pages.
type Blog struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	ImageURL    string    `json:"image,omitempty"`
	Author      string    `json:"author,omitempty"`
	Comments    int       `json:"comments,omitempty"`
	Slug        string    `json:"slug,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Menu        string    `json:"menu,omitempty"`
}
