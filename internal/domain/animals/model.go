package animals

import "strings"

// Breed define las categorías de animal soportadas.
// @Enum dog, cat, rabbit, hamster, parrot
type Breed string

const (
	BreedDog     Breed = "dog"
	BreedCat     Breed = "cat"
	BreedRabbit  Breed = "rabbit"
	BreedHamster Breed = "hamster"
	BreedParrot  Breed = "parrot"
)

// BreedInfo es la metadata de presentación de cada raza.
type BreedInfo struct {
	Label string // clave del catálogo de mensajes
	Cover string // referencia a la imagen
}

// Orden fijo de presentación; el primero es el default del formulario.
var breedOrder = []Breed{BreedDog, BreedCat, BreedRabbit, BreedHamster, BreedParrot}

var breedTable = map[Breed]BreedInfo{
	BreedDog:     {Label: "breed_dog", Cover: "images/breeds/dog.jpg"},
	BreedCat:     {Label: "breed_cat", Cover: "images/breeds/cat.jpg"},
	BreedRabbit:  {Label: "breed_rabbit", Cover: "images/breeds/rabbit.jpg"},
	BreedHamster: {Label: "breed_hamster", Cover: "images/breeds/hamster.jpg"},
	BreedParrot:  {Label: "breed_parrot", Cover: "images/breeds/parrot.jpg"},
}

// Breeds devuelve todas las razas en orden de presentación.
func Breeds() []Breed {
	out := make([]Breed, len(breedOrder))
	copy(out, breedOrder)
	return out
}

// DefaultBreed es la raza preseleccionada en el formulario de creación.
func DefaultBreed() Breed { return breedOrder[0] }

// ParseBreed es case-insensitive. "" no es válido.
func ParseBreed(s string) (Breed, bool) {
	b := Breed(strings.ToLower(strings.TrimSpace(s)))
	if !b.Valid() {
		return "", false
	}
	return b, true
}

func (b Breed) Valid() bool {
	_, ok := breedTable[b]
	return ok
}

func (b Breed) Info() BreedInfo {
	return breedTable[b]
}

// Animal es un registro creado una única vez por el validador de creación.
// No se actualiza ni se borra.
type Animal struct {
	ID string

	Name  string
	Breed Breed

	Age    int     // años
	Weight float32 // kg
	Height float32 // cm
}
