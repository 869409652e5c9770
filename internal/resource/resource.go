// Package resource models brewing equipment and tracks when each piece is
// booked.
package resource

// Resource is a piece of equipment that a phase may need.
type Resource struct {
	ID       int    `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Type     Type   `yaml:"type" json:"type"`
	Capacity string `yaml:"capacity" json:"capacity"`
}

// New creates a Resource.
func New(id int, name string, t Type, capacity string) Resource {
	return Resource{
		ID:       id,
		Name:     name,
		Type:     t,
		Capacity: capacity,
	}
}
