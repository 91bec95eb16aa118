package animals

import "testing"

func searchFixture() []Animal {
	return []Animal{
		{ID: "1", Name: "Fluffy", Gender: GenderFemale, Kind: KindCat, Breed: "Persian", Microchip: "AB-100"},
		{ID: "2", Name: "Rex", Gender: GenderMale, Kind: KindDog, Breed: "Labrador", Microchip: "ab-200"},
		{ID: "3", Name: "SuperFluffy", Gender: GenderMale, Kind: KindExotic, Breed: "Chinchilla", Microchip: "CD-300"},
		{ID: "4", Name: "Nube", Gender: GenderFemale, Kind: KindGeneric, Breed: "Mixed"},
	}
}

func ids(items []Animal) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.ID)
	}
	return out
}

func sameIDs(t *testing.T, got []Animal, want ...string) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("got ids %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("got ids %v, want %v", g, want)
		}
	}
}

func TestSearch_EmptyCriteriaReturnsAllInOrder(t *testing.T) {
	got := Search(searchFixture(), Criteria{})
	sameIDs(t, got, "1", "2", "3", "4")
}

func TestSearch_NameIsCaseInsensitiveSubstring(t *testing.T) {
	got := Search(searchFixture(), Criteria{Name: "fluffy"})
	sameIDs(t, got, "1", "3")
}

func TestSearch_Gender(t *testing.T) {
	sameIDs(t, Search(searchFixture(), Criteria{Gender: ""}), "1", "2", "3", "4")
	sameIDs(t, Search(searchFixture(), Criteria{Gender: "f"}), "1", "4")
	sameIDs(t, Search(searchFixture(), Criteria{Gender: "F"}), "1", "4")
}

func TestSearch_KindAndBreedSubstring(t *testing.T) {
	sameIDs(t, Search(searchFixture(), Criteria{Kind: "DO"}), "2")
	sameIDs(t, Search(searchFixture(), Criteria{Kind: "animal"}), "4")
	sameIDs(t, Search(searchFixture(), Criteria{Breed: "lab"}), "2")
}

func TestSearch_MicrochipIsCaseSensitive(t *testing.T) {
	sameIDs(t, Search(searchFixture(), Criteria{Microchip: "AB"}), "1")
	sameIDs(t, Search(searchFixture(), Criteria{Microchip: "ab"}), "2")
}

func TestSearch_CriteriaAreConjunctive(t *testing.T) {
	got := Search(searchFixture(), Criteria{Name: "fluffy", Gender: "M"})
	sameIDs(t, got, "3")

	got = Search(searchFixture(), Criteria{Name: "fluffy", Kind: "dog"})
	sameIDs(t, got)
}

func TestCriteria_IsEmpty(t *testing.T) {
	if !(Criteria{Name: "  "}).IsEmpty() {
		t.Fatalf("whitespace-only criteria should be empty")
	}
	if (Criteria{Breed: "lab"}).IsEmpty() {
		t.Fatalf("breed criterion should not be empty")
	}
}
