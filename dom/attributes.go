package dom

// Attr represents a single attribute.
type Attr struct {
	Name  string
	Value string
}

// NamedNodeMap is an ordered list of attributes. Duplicates are kept in the order they were added.
type NamedNodeMap []Attr

// Len returns the number of attributes in the list
func (l NamedNodeMap) Len() int {
	return len(l)
}

// Add appends the attribute to the list.
func (l *NamedNodeMap) Add(name, value string) {
	*l = append(*l, Attr{
		Name:  name,
		Value: value,
	})
}

// Get returns the first attribute with the given name, or nil if it does not exist.
func (l NamedNodeMap) Get(name string) *Attr {
	for i := range l {
		if l[i].Name == name {
			return &l[i]
		}
	}

	return nil
}
