package cli

import (
	"errors"
	"strings"
	"time"

	"shelter-pet-tracker/internal/domain/animals"

	"github.com/spf13/cobra"
)

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

func optionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(animals.DateLayout, s); err != nil {
		return errors.New("DOB must be in YYYY-MM-DD format")
	}
	return nil
}

// intakeCommand es el formulario de ingreso interactivo.
func intakeCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "intake",
		Short: "Fill the intake form interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := askDraft(e.opts.Prompter)
			if err != nil {
				return err
			}
			a, err := e.app.Service.Create(cmd.Context(), d)
			if err != nil {
				return err
			}
			cmd.Printf("Animal added successfully! id=%s\n", a.ID)
			return nil
		},
	}
}

func askDraft(p Prompter) (animals.Draft, error) {
	var (
		d   animals.Draft
		err error
	)
	ask := func(dst *string, msg string, validate func(string) error) {
		if err != nil {
			return
		}
		*dst, err = p.Input(msg, "", "", validate)
	}

	ask(&d.Name, "Name:", required("name"))
	if err == nil {
		d.Gender, err = p.Select("Gender:", []string{string(animals.GenderMale), string(animals.GenderFemale)}, "")
	}
	if err == nil {
		d.Kind, err = p.Select("Type:", []string{
			animals.KindDog.String(),
			animals.KindCat.String(),
			animals.KindExotic.String(),
			animals.KindGeneric.String(),
		}, animals.KindDog.String())
	}
	ask(&d.Breed, "Breed:", required("breed"))
	ask(&d.Weight, "Weight (lb.):", nil)
	ask(&d.DOB, "DOB (YYYY-MM-DD):", optionalDate)
	ask(&d.Microchip, "Microchip #:", nil)
	ask(&d.HealthNotes, "Health Notes:", nil)
	ask(&d.Description, "Description:", nil)
	ask(&d.ImagePath, "Image path (optional):", nil)
	if err != nil {
		return animals.Draft{}, err
	}

	ok, err := p.Confirm("Save this animal?", true)
	if err != nil {
		return animals.Draft{}, err
	}
	if !ok {
		return animals.Draft{}, ErrAborted
	}
	return d, nil
}
