package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shelter-pet-tracker/internal/domain/animals"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// scriptedPrompter responde en orden lo que tiene cargado.
type scriptedPrompter struct {
	inputs   []string
	selects  []string
	confirms []bool
}

func (p *scriptedPrompter) Input(message, def, help string, validate func(string) error) (string, error) {
	if len(p.inputs) == 0 {
		return "", errors.New("unexpected input prompt: " + message)
	}
	v := p.inputs[0]
	p.inputs = p.inputs[1:]
	if validate != nil {
		if err := validate(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (p *scriptedPrompter) Select(message string, options []string, def string) (string, error) {
	if len(p.selects) == 0 {
		return "", errors.New("unexpected select prompt: " + message)
	}
	v := p.selects[0]
	p.selects = p.selects[1:]
	return v, nil
}

func (p *scriptedPrompter) Confirm(message string, def bool) (bool, error) {
	if len(p.confirms) == 0 {
		return false, errors.New("unexpected confirm prompt: " + message)
	}
	v := p.confirms[0]
	p.confirms = p.confirms[1:]
	return v, nil
}

type harness struct {
	t    *testing.T
	data string
}

func newHarness(t *testing.T) *harness {
	return &harness{t: t, data: filepath.Join(t.TempDir(), "animals.json")}
}

func (h *harness) run(p Prompter, args ...string) (string, error) {
	h.t.Helper()
	var out, errOut bytes.Buffer
	if p == nil {
		p = &scriptedPrompter{}
	}
	root := NewRootCommand(Options{Out: &out, Err: &errOut, Prompter: p, Viper: viper.New()})
	root.SetArgs(append([]string{"--data", h.data, "--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(nil, args...)
	require.NoError(h.t, err, "args=%v", args)
	return out
}

func (h *harness) stored() []map[string]any {
	h.t.Helper()
	b, err := os.ReadFile(h.data)
	require.NoError(h.t, err)
	var recs []map[string]any
	require.NoError(h.t, json.Unmarshal(b, &recs))
	return recs
}

func TestCLI_AddListSearchUpdateDelete(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("add", "--name", "Rex", "--gender", "m", "--type", "dog", "--breed", "Lab", "--dob", "2020-01-01")
	assert.Contains(t, out, "Animal added successfully!")

	out = h.mustRun("list")
	assert.Contains(t, out, "Rex")
	assert.Contains(t, out, "dog")

	h.mustRun("update", "rex", "--name", "Rex2")
	out = h.mustRun("search", "--name", "rex2")
	assert.Contains(t, out, "Rex2")

	recs := h.stored()
	require.Len(t, recs, 1)
	assert.Equal(t, "Rex2", recs[0]["name"])
	assert.Equal(t, "Lab", recs[0]["breed"])

	out = h.mustRun("delete", "Rex2", "--yes")
	assert.Contains(t, out, "Rex2 has been deleted.")
	assert.Empty(t, h.stored())

	out = h.mustRun("list")
	assert.Contains(t, out, "no animals found")
}

func TestCLI_AddRejectsInvalidDate(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(nil, "add", "--name", "Rex", "--gender", "M", "--type", "dog", "--breed", "Lab", "--dob", "2024-13-40")
	var ve *animals.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "dob", ve.Field)

	_, statErr := os.Stat(h.data)
	assert.True(t, os.IsNotExist(statErr), "nothing should be written on validation failure")
}

func TestCLI_Intake(t *testing.T) {
	h := newHarness(t)
	p := &scriptedPrompter{
		inputs:   []string{"Luna", "Bengal", "9", "2022-05-01", "985112", "vaccinated", "shy", ""},
		selects:  []string{"F", "cat"},
		confirms: []bool{true},
	}

	out, err := h.run(p, "intake")
	require.NoError(t, err)
	assert.Contains(t, out, "Animal added successfully!")

	recs := h.stored()
	require.Len(t, recs, 1)
	assert.Equal(t, "cat", recs[0]["type"])
	assert.Equal(t, "F", recs[0]["gender"])
	assert.Equal(t, "985112", recs[0]["microchip"])
}

func TestCLI_IntakeCancelled(t *testing.T) {
	h := newHarness(t)
	p := &scriptedPrompter{
		inputs:   []string{"Luna", "Bengal", "", "", "", "", "", ""},
		selects:  []string{"F", "cat"},
		confirms: []bool{false},
	}

	_, err := h.run(p, "intake")
	assert.ErrorIs(t, err, ErrAborted)
}

func TestCLI_DeleteAsksForConfirmation(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "--name", "Rex", "--gender", "M", "--type", "dog", "--breed", "Lab")

	out, err := h.run(&scriptedPrompter{confirms: []bool{false}}, "delete", "Rex")
	require.NoError(t, err)
	assert.Contains(t, out, "Delete cancelled.")
	assert.Len(t, h.stored(), 1)

	_, err = h.run(&scriptedPrompter{confirms: []bool{true}}, "delete", "Rex")
	require.NoError(t, err)
	assert.Empty(t, h.stored())
}

func TestCLI_DuplicateNamesNeedID(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "--name", "Kira", "--gender", "F", "--type", "dog", "--breed", "Husky")
	h.mustRun("add", "--name", "Kira", "--gender", "F", "--type", "cat", "--breed", "Sphynx")

	_, err := h.run(nil, "show", "kira")
	assert.ErrorIs(t, err, animals.ErrAmbiguous)

	id, _ := h.stored()[1]["id"].(string)
	out := h.mustRun("show", id)
	assert.Contains(t, out, "Sphynx")
	assert.True(t, strings.Contains(out, "Type:") && strings.Contains(out, "cat"))
}

func TestCLI_ExportYAML(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "--name", "Spike", "--gender", "M", "--type", "Exotic", "--breed", "Iguana", "--weight", "3")

	out := h.mustRun("export", "--format", "yaml")
	var recs []exportRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, "exotic", recs[0].Type)
	assert.Equal(t, "3", recs[0].Weight)

	_, err := h.run(nil, "export", "--format", "xml")
	assert.Error(t, err)
}

func TestCLI_CorruptFileWarnsAndStartsEmpty(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(h.data, []byte("{broken"), 0o644))

	var out, errOut bytes.Buffer
	root := NewRootCommand(Options{Out: &out, Err: &errOut, Prompter: &scriptedPrompter{}, Viper: viper.New()})
	root.SetArgs([]string{"--data", h.data, "--log-level", "error", "list"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "no animals found")
	assert.Contains(t, errOut.String(), "warning: stored data could not be read")
}

// idsFor devuelve, en orden, la primera columna de las filas de la tabla con ese nombre.
func idsFor(out, name string) []string {
	var ids []string
	for _, line := range strings.Split(out, "\n") {
		f := strings.Fields(line)
		if len(f) > 1 && f[1] == name {
			ids = append(ids, f[0])
		}
	}
	return ids
}

func TestCLI_DeleteByListedIDOnFileWithoutIDs(t *testing.T) {
	h := newHarness(t)
	legacy := `[
  {"type": "dog", "name": "Bella", "gender": "F", "breed": "Beagle", "weight": "20", "dob": "", "microchip": "", "health_notes": "", "description": "", "image_path": ""},
  {"type": "dog", "name": "Bella", "gender": "F", "breed": "Boxer", "weight": "30", "dob": "", "microchip": "", "health_notes": "", "description": "", "image_path": ""}
]`
	require.NoError(t, os.WriteFile(h.data, []byte(legacy), 0o644))

	listed := idsFor(h.mustRun("list"), "Bella")
	require.Len(t, listed, 2)
	assert.Equal(t, listed, idsFor(h.mustRun("list"), "Bella"), "ids must survive between runs")

	out := h.mustRun("delete", listed[0], "--yes")
	assert.Contains(t, out, "Bella has been deleted.")

	recs := h.stored()
	require.Len(t, recs, 1)
	assert.Equal(t, "Boxer", recs[0]["breed"])
	assert.Equal(t, listed[1], recs[0]["id"])
}

func TestBindFlags(t *testing.T) {
	err := bindFlags(viper.New(), pflag.NewFlagSet("empty", pflag.ContinueOnError))
	assert.Error(t, err, "missing flags must be reported")

	v := viper.New()
	root := NewRootCommand(Options{Out: &bytes.Buffer{}, Err: &bytes.Buffer{}, Prompter: &scriptedPrompter{}, Viper: v})
	require.NoError(t, root.PersistentFlags().Set("backend", "memory"))
	require.NoError(t, bindFlags(v, root.PersistentFlags()))
	assert.Equal(t, "memory", v.GetString("storage.backend"))
}
