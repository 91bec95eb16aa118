package cli

import (
	"errors"
	"fmt"

	"shelter-pet-tracker/internal/domain/animals"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// campos del formulario: flag -> puntero al campo del Draft
type fieldFlag struct {
	name  string
	usage string
	get   func(*animals.Draft) *string
}

var formFields = []fieldFlag{
	{"name", "Animal name", func(d *animals.Draft) *string { return &d.Name }},
	{"gender", "Gender (M/F)", func(d *animals.Draft) *string { return &d.Gender }},
	{"type", "Type (dog, cat, exotic)", func(d *animals.Draft) *string { return &d.Kind }},
	{"breed", "Breed", func(d *animals.Draft) *string { return &d.Breed }},
	{"weight", "Weight (lb.)", func(d *animals.Draft) *string { return &d.Weight }},
	{"dob", "Date of birth (YYYY-MM-DD)", func(d *animals.Draft) *string { return &d.DOB }},
	{"microchip", "Microchip #", func(d *animals.Draft) *string { return &d.Microchip }},
	{"health-notes", "Health notes", func(d *animals.Draft) *string { return &d.HealthNotes }},
	{"description", "Description", func(d *animals.Draft) *string { return &d.Description }},
	{"image", "Path to a profile image (.jpg, .jpeg, .png, .gif)", func(d *animals.Draft) *string { return &d.ImagePath }},
}

func bindFormFlags(fs *pflag.FlagSet, d *animals.Draft) {
	for _, f := range formFields {
		fs.StringVar(f.get(d), f.name, "", f.usage)
	}
}

func addCommand(e *env) *cobra.Command {
	var d animals.Draft
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new animal intake",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.app.Service.Create(cmd.Context(), d)
			if err != nil {
				return err
			}
			cmd.Printf("Animal added successfully! id=%s\n", a.ID)
			return nil
		},
	}
	bindFormFlags(cmd.Flags(), &d)
	return cmd
}

func listCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all animals in intake order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTable(cmd.OutOrStdout(), e.app.Service.ListAll(cmd.Context()))
		},
	}
}

func searchCommand(e *env) *cobra.Command {
	var c animals.Criteria
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search animals; all given filters must match",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTable(cmd.OutOrStdout(), e.app.Service.Search(cmd.Context(), c))
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&c.Name, "name", "", "Name contains (case-insensitive)")
	fs.StringVar(&c.Gender, "gender", "", "Gender M or F")
	fs.StringVar(&c.Kind, "type", "", "Type contains (case-insensitive)")
	fs.StringVar(&c.Breed, "breed", "", "Breed contains (case-insensitive)")
	fs.StringVar(&c.Microchip, "microchip", "", "Microchip contains (case-sensitive)")
	return cmd
}

func showCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|name>",
		Short: "Show the full record of an animal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.app.Service.Resolve(cmd.Context(), args[0])
			if err != nil {
				return keyError(args[0], err)
			}
			return printDetails(cmd.OutOrStdout(), a)
		},
	}
}

func updateCommand(e *env) *cobra.Command {
	var d animals.Draft
	cmd := &cobra.Command{
		Use:   "update <id|name>",
		Short: "Update an animal; only the given flags change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.app.Service.Resolve(cmd.Context(), args[0])
			if err != nil {
				return keyError(args[0], err)
			}

			var in animals.UpdateInput
			changed := 0
			for _, f := range formFields {
				if !cmd.Flags().Changed(f.name) {
					continue
				}
				v := *f.get(&d)
				setUpdateField(&in, f.name, &v)
				changed++
			}
			if changed == 0 {
				return errors.New("nothing to update: pass at least one field flag")
			}

			if _, err := e.app.Service.Update(cmd.Context(), a.ID, in); err != nil {
				return err
			}
			cmd.Println("Animal updated successfully!")
			return nil
		},
	}
	bindFormFlags(cmd.Flags(), &d)
	return cmd
}

func setUpdateField(in *animals.UpdateInput, flag string, v *string) {
	switch flag {
	case "name":
		in.Name = v
	case "gender":
		in.Gender = v
	case "type":
		in.Kind = v
	case "breed":
		in.Breed = v
	case "weight":
		in.Weight = v
	case "dob":
		in.DOB = v
	case "microchip":
		in.Microchip = v
	case "health-notes":
		in.HealthNotes = v
	case "description":
		in.Description = v
	case "image":
		in.ImagePath = v
	}
}

func deleteCommand(e *env) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id|name>",
		Short: "Delete an animal record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.app.Service.Resolve(cmd.Context(), args[0])
			if err != nil {
				return keyError(args[0], err)
			}

			if !yes {
				ok, err := e.opts.Prompter.Confirm(fmt.Sprintf("Delete %s?", a.Name), false)
				if err != nil {
					return err
				}
				if !ok {
					cmd.Println("Delete cancelled.")
					return nil
				}
			}

			if err := e.app.Service.Delete(cmd.Context(), a.ID); err != nil {
				return err
			}
			cmd.Printf("%s has been deleted.\n", a.Name)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func keyError(key string, err error) error {
	switch {
	case errors.Is(err, animals.ErrAmbiguous):
		return fmt.Errorf("%q matches more than one animal, use the id instead: %w", key, err)
	case errors.Is(err, animals.ErrNotFound):
		return fmt.Errorf("no animal with id or name %q: %w", key, err)
	default:
		return err
	}
}
