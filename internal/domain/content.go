package domain

// Page is one informational page of the site.
type Page struct {
	Slug     string    `yaml:"slug"`
	Title    string    `yaml:"title"`
	Lead     string    `yaml:"lead"`
	Sections []Section `yaml:"sections"`
}

// Section is a titled block of paragraphs and bullet items.
type Section struct {
	Heading    string   `yaml:"heading"`
	Paragraphs []string `yaml:"paragraphs"`
	Items      []string `yaml:"items"`
	Link       *Link    `yaml:"link"`
}

// Link is a call-to-action inside a section.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Organization holds the contact details shown on the site.
type Organization struct {
	Name     string   `yaml:"name"`
	Email    string   `yaml:"email"`
	Phone    string   `yaml:"phone"`
	Hours    string   `yaml:"hours"`
	Street   []string `yaml:"street"`
	Locality string   `yaml:"locality"`
	Region   string   `yaml:"region"`
	Postcode string   `yaml:"postcode"`
	Country  string   `yaml:"country"`
	URL      string   `yaml:"url"`
}

// ContentRepository serves static site content.
type ContentRepository interface {
	Organization() Organization
	Page(slug string) (*Page, error)
	Navigation() []Link
}

// Labels resolves UI label strings by message ID. Missing IDs resolve to the ID itself.
type Labels interface {
	Label(id string) string
	Format(id string, data map[string]any) string
}
