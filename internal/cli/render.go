package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"shelter-pet-tracker/internal/domain/animals"
)

func printTable(w io.Writer, items []animals.Animal) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "no animals found")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tGENDER\tBREED\tMICROCHIP")
	for _, a := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Kind, a.Gender, a.Breed, a.Microchip)
	}
	return tw.Flush()
}

// printDetails muestra la ficha completa, como la ventana de detalle.
func printDetails(w io.Writer, a animals.Animal) error {
	weight := a.Weight
	if weight != "" {
		weight += " lbs"
	}
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	rows := [][2]string{
		{"ID", a.ID},
		{"Name", a.Name},
		{"Gender", string(a.Gender)},
		{"Type", a.Kind.String()},
		{"Breed", a.Breed},
		{"Weight", weight},
		{"DOB", a.DOB},
		{"Microchip #", a.Microchip},
		{"Health Notes", a.HealthNotes},
		{"Description", a.Description},
		{"Image", a.ImagePath},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1])
	}
	return tw.Flush()
}
