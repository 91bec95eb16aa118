package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"shelter-pet-tracker/internal/domain/animals"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type exportRecord struct {
	ID          string `json:"id" yaml:"id"`
	Type        string `json:"type" yaml:"type"`
	Name        string `json:"name" yaml:"name"`
	Gender      string `json:"gender" yaml:"gender"`
	Breed       string `json:"breed" yaml:"breed"`
	Weight      string `json:"weight" yaml:"weight"`
	DOB         string `json:"dob" yaml:"dob"`
	Microchip   string `json:"microchip" yaml:"microchip"`
	HealthNotes string `json:"health_notes" yaml:"health_notes"`
	Description string `json:"description" yaml:"description"`
	ImagePath   string `json:"image_path,omitempty" yaml:"image_path,omitempty"`
}

func exportCommand(e *env) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all animals to stdout as json or yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeExport(cmd.OutOrStdout(), format, e.app.Service.ListAll(cmd.Context()))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")
	return cmd
}

func writeExport(w io.Writer, format string, items []animals.Animal) error {
	recs := make([]exportRecord, 0, len(items))
	for _, a := range items {
		recs = append(recs, exportRecord{
			ID:          a.ID,
			Type:        a.Kind.String(),
			Name:        a.Name,
			Gender:      string(a.Gender),
			Breed:       a.Breed,
			Weight:      a.Weight,
			DOB:         a.DOB,
			Microchip:   a.Microchip,
			HealthNotes: a.HealthNotes,
			Description: a.Description,
			ImagePath:   a.ImagePath,
		})
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown export format %q (want json or yaml)", format)
	}
}
