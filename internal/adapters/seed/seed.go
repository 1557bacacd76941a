// Package seed precarga el store al arrancar. Cada entrada pasa por el
// validador de creación, igual que un formulario.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"animals-safety/internal/domain/animals"

	"gopkg.in/yaml.v3"
)

var ErrInvalidEntry = errors.New("seed: invalid entry")

// Entry es un formulario crudo; los numéricos son texto.
type Entry struct {
	Name   string `yaml:"name"`
	Breed  string `yaml:"breed"`
	Age    string `yaml:"age"`
	Weight string `yaml:"weight"`
	Height string `yaml:"height"`
}

type file struct {
	Animals []Entry `yaml:"animals"`
}

// Sample es el set de demo de la app.
func Sample() []Entry {
	return []Entry{
		{Name: "Milou", Breed: "dog", Age: "6", Weight: "23.2", Height: "42.4"},
		{Name: "Garfield", Breed: "cat", Age: "8", Weight: "7.5", Height: "28"},
		{Name: "Panpan", Breed: "rabbit", Age: "2", Weight: "1.8", Height: "20.5"},
		{Name: "Coco", Breed: "parrot", Age: "15", Weight: "0.4", Height: "33"},
	}
}

// Parse lee el YAML `animals: [{name, breed, age, weight, height}]`.
func Parse(r io.Reader) ([]Entry, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("seed: decode yaml: %w", err)
	}
	return f.Animals, nil
}

func ParseFile(path string) ([]Entry, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed: open %s: %w", path, err)
	}
	defer fh.Close()
	return Parse(fh)
}

// Apply crea cada entrada en orden. Corta en la primera inválida, indicando
// índice y motivo; las anteriores quedan creadas.
func Apply(ctx context.Context, svc *animals.Service, entries []Entry) (int, error) {
	for i, e := range entries {
		var breed animals.Breed
		if e.Breed != "" {
			b, ok := animals.ParseBreed(e.Breed)
			if !ok {
				return i, fmt.Errorf("%w: #%d (%s): unknown breed %q", ErrInvalidEntry, i, e.Name, e.Breed)
			}
			breed = b
		}

		_, err := svc.TryCreate(ctx, animals.CreateInput{
			Name:   e.Name,
			Breed:  breed,
			Age:    e.Age,
			Weight: e.Weight,
			Height: e.Height,
		})
		if err != nil {
			if animals.IsValidationError(err) {
				return i, fmt.Errorf("%w: #%d (%s): %s", ErrInvalidEntry, i, e.Name, animals.KindOf(err))
			}
			return i, err
		}
	}
	return len(entries), nil
}
