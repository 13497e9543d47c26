package domain

// Person is the example domain value shown in the list
type Person struct {
	Name string
}

// String returns the person's display name
func (p Person) String() string {
	return p.Name
}
