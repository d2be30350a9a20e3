package model

// Person keeps its fields unexported; other packages go through the accessors.
type Person struct {
	name string
	age  int
}

// NewPerson constructs a Person.
func NewPerson(name string, age int) *Person {
	return &Person{name: name, age: age}
}

func (p *Person) Name() string        { return p.name }
func (p *Person) SetName(name string) { p.name = name }
func (p *Person) Age() int            { return p.age }
func (p *Person) SetAge(age int)      { p.age = age }
