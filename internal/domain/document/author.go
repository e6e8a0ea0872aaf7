package document

// Author is the value object describing who wrote a document.
type Author struct {
	id   string
	name string
}

// NewAuthor creates an Author. Uniqueness of author IDs is not enforced here.
func NewAuthor(id, name string) Author {
	return Author{id: id, name: name}
}

// ID returns the author identifier.
func (a Author) ID() string { return a.id }

// Name returns the author display name.
func (a Author) Name() string { return a.name }

// IsZero reports whether the author carries no identity.
func (a Author) IsZero() bool { return a.id == "" }

// Equal reports whether both authors have the same ID and name.
func (a Author) Equal(other Author) bool {
	return a.id == other.id && a.name == other.name
}
