package words

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefaultWordsAreUppercaseLetters(t *testing.T) {
	for _, e := range Default() {
		for _, r := range e.Word {
			assert.Truef(t, r >= 'A' && r <= 'Z', "%s contains %q", e.Word, r)
		}
	}
}

func TestPickStaysInCatalog(t *testing.T) {
	cat := Default()
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		e := cat.Pick(r)
		assert.True(t, cat.Contains(e.Word))
	}
}

func TestPickCoversCatalog(t *testing.T) {
	cat := Catalog{{Word: "SOL", Tip: "Estrela"}, {Word: "LUA", Tip: "Satélite"}}
	r := rand.New(rand.NewPCG(7, 7))
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[cat.Pick(r).Word] = true
	}
	assert.Len(t, seen, 2)
}

func TestPickWithoutSource(t *testing.T) {
	cat := Catalog{{Word: "GIRAFA", Tip: "Animal alto"}}
	assert.Equal(t, "GIRAFA", cat.Pick(nil).Word)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		wantErr bool
	}{
		{"empty", Catalog{}, true},
		{"blank word", Catalog{{Word: "  ", Tip: "x"}}, true},
		{"blank tip", Catalog{{Word: "CASA", Tip: ""}}, true},
		{"ok", Catalog{{Word: "CASA", Tip: "Moradia"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.ErrorIs(t, Catalog{}.Validate(), ErrEmptyCatalog)
}
