package model

import "fmt"

// Animal is the base example type: two fields, a constructor and accessors.
type Animal struct {
	name string
	age  int
}

// NewAnimal constructs an Animal.
func NewAnimal(name string, age int) *Animal {
	return &Animal{name: name, age: age}
}

func (a *Animal) Name() string        { return a.name }
func (a *Animal) SetName(name string) { a.name = name }
func (a *Animal) Age() int            { return a.age }
func (a *Animal) SetAge(age int)      { a.age = age }

// MakeSound returns the generic animal sound.
func (a *Animal) MakeSound() string {
	return "Animal makes a sound"
}

// Details describes the animal by name and age.
func (a *Animal) Details() string {
	return fmt.Sprintf("Name: %s, Age: %d", a.name, a.age)
}

// DetailsWith appends extra info to Details. An empty info renders exactly
// like Details.
func (a *Animal) DetailsWith(info string) string {
	if info == "" {
		return a.Details()
	}
	return a.Details() + ", " + info
}

// Dog embeds Animal and adds a breed.
type Dog struct {
	Animal
	breed string
}

// NewDog constructs a Dog; name and age are stored on the embedded Animal.
func NewDog(name string, age int, breed string) *Dog {
	return &Dog{Animal: Animal{name: name, age: age}, breed: breed}
}

func (d *Dog) Breed() string { return d.breed }

// MakeSound shadows Animal.MakeSound.
func (d *Dog) MakeSound() string {
	return "Dog barks"
}

// WagTail only exists on Dog.
func (d *Dog) WagTail() string {
	return "Dog wags tail"
}

// Details returns the embedded Animal's details followed by a breed line.
func (d *Dog) Details() string {
	return d.Animal.Details() + "\nBreed: " + d.breed
}
