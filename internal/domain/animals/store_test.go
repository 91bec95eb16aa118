package animals

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"shelter-pet-tracker/internal/platform/logger"
)

func TestStore_Load_NoDataStartsEmptyWithoutWarning(t *testing.T) {
	var buf bytes.Buffer
	s := NewStore(&testPersister{loadErr: ErrNoData}, logger.New(logger.Options{Output: &buf}))

	if got := s.Load(context.Background()); len(got) != 0 {
		t.Fatalf("expected empty, got %+v", got)
	}
	if s.LoadWarning() != nil || buf.Len() != 0 {
		t.Fatalf("absence should not warn: warning=%v log=%q", s.LoadWarning(), buf.String())
	}
}

func TestStore_Load_CorruptStartsEmptyWithWarning(t *testing.T) {
	var buf bytes.Buffer
	corrupt := errors.New("decode animals.json: unexpected EOF")
	s := NewStore(&testPersister{loadErr: corrupt}, logger.New(logger.Options{Output: &buf}))

	if got := s.Load(context.Background()); len(got) != 0 {
		t.Fatalf("expected empty, got %+v", got)
	}
	if !errors.Is(s.LoadWarning(), corrupt) {
		t.Fatalf("expected load warning, got %v", s.LoadWarning())
	}
	if !strings.Contains(buf.String(), "level=warn") {
		t.Fatalf("expected a warn log line, got %q", buf.String())
	}
}

func TestStore_MutationsKeepOrder(t *testing.T) {
	s := NewStore(&testPersister{}, nil)
	s.Append(Animal{ID: "a"})
	s.Append(Animal{ID: "b"})
	s.Append(Animal{ID: "c"})

	removed, err := s.RemoveAt(1)
	if err != nil || removed.ID != "b" {
		t.Fatalf("RemoveAt: %v %+v", err, removed)
	}
	if got := ids(s.All()); strings.Join(got, ",") != "a,c" {
		t.Fatalf("after remove: %v", got)
	}

	s.Insert(1, removed)
	if got := ids(s.All()); strings.Join(got, ",") != "a,b,c" {
		t.Fatalf("after insert: %v", got)
	}

	if _, err := s.UpdateAt(5, Animal{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for bad index, got %v", err)
	}
	if _, err := s.RemoveAt(-1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for -1, got %v", err)
	}
}

func TestStore_AllReturnsCopy(t *testing.T) {
	s := NewStore(&testPersister{}, nil)
	s.Append(Animal{ID: "a", Name: "Rex"})

	items := s.All()
	items[0].Name = "changed"

	if got, _ := s.At(0); got.Name != "Rex" {
		t.Fatalf("All must not expose internal slice")
	}
}
