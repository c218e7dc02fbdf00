package store

import "fmt"

// Category names one of the two independently deduplicated content
// namespaces. An id allocated in one category carries no meaning in the
// other.
type Category string

const (
	// CategoryMetadata holds script metadata payloads (name, author, ...).
	CategoryMetadata Category = "metadata"

	// CategoryRoles holds role list payloads.
	CategoryRoles Category = "roles"
)

// Categories lists all known categories in a fixed order.
var Categories = []Category{CategoryMetadata, CategoryRoles}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c == CategoryMetadata || c == CategoryRoles
}

// table returns the content table backing the category. Table names are
// interpolated into SQL, so this is the only place a category may become
// part of a statement.
func (c Category) table() (string, error) {
	switch c {
	case CategoryMetadata:
		return "metadata_data", nil
	case CategoryRoles:
		return "roles_data", nil
	}
	return "", fmt.Errorf("unknown category %q", string(c))
}

// lengthKey returns the config table key holding the category's current
// id length.
func (c Category) lengthKey() string {
	return "id_length." + string(c)
}
