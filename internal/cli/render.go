package cli

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

func renderAnimals(out io.Writer, items []animalDTO) {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.AppendHeader(table.Row{"ID", "Name", "Breed", "Age", "Weight", "Height"})
	for _, a := range items {
		tw.AppendRow(table.Row{a.ID, a.Name, a.Breed, a.Age, a.Weight, a.Height})
	}
	tw.AppendFooter(table.Row{"", "", "", "", "Total", len(items)})
	tw.Render()
}

func renderAnimal(out io.Writer, a animalDTO) {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.AppendRows([]table.Row{
		{"ID", a.ID},
		{"Name", a.Name},
		{"Breed", a.Breed},
		{"Age", a.Age},
		{"Weight", a.Weight},
		{"Height", a.Height},
	})
	tw.Render()
}

func renderBreeds(out io.Writer, items []breedDTO) {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.AppendHeader(table.Row{"Breed", "Label", "Cover"})
	for _, b := range items {
		tw.AppendRow(table.Row{b.Breed, b.Label, b.Cover})
	}
	tw.Render()
}
