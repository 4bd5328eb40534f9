// Package words holds the compiled-in catalog of words and hints.
package words

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Entry is a word to be guessed together with the hint shown to the player.
type Entry struct {
	Word string // The hidden word, compared in uppercase
	Tip  string // Hint shown before the first guess
}

// Catalog is an ordered, immutable list of entries.
type Catalog []Entry

// ErrEmptyCatalog is returned by Validate when a catalog has no entries.
var ErrEmptyCatalog = errors.New("word catalog is empty")

var defaultCatalog = Catalog{
	{Word: "GIRAFA", Tip: "Animal alto"},
	{Word: "ELEFANTE", Tip: "Animal com tromba"},
	{Word: "PINGUIM", Tip: "Ave que não voa e vive no frio"},
	{Word: "BANANA", Tip: "Fruta amarela"},
	{Word: "ABACAXI", Tip: "Fruta com coroa"},
	{Word: "MORANGO", Tip: "Fruta vermelha pequena"},
	{Word: "VIOLAO", Tip: "Instrumento de cordas"},
	{Word: "BATERIA", Tip: "Instrumento de percussão"},
	{Word: "CADEIRA", Tip: "Móvel para sentar"},
	{Word: "JANELA", Tip: "Abertura na parede"},
	{Word: "TECLADO", Tip: "Periférico para digitar"},
	{Word: "BICICLETA", Tip: "Veículo de duas rodas"},
	{Word: "HELICOPTERO", Tip: "Aeronave com hélices no topo"},
	{Word: "BIBLIOTECA", Tip: "Lugar cheio de livros"},
	{Word: "PRAIA", Tip: "Areia e mar"},
	{Word: "VULCAO", Tip: "Montanha que pode entrar em erupção"},
	{Word: "FUTEBOL", Tip: "Esporte com bola e gol"},
	{Word: "XADREZ", Tip: "Jogo de tabuleiro com rei e rainha"},
	{Word: "CHOCOLATE", Tip: "Doce feito de cacau"},
	{Word: "REACT", Tip: "Biblioteca para criar interfaces"},
}

// Default returns the built-in catalog.
func Default() Catalog {
	return defaultCatalog
}

// Pick draws one entry uniformly at random.
// The catalog must not be empty.
func (c Catalog) Pick(r *rand.Rand) Entry {
	if r == nil {
		return c[rand.IntN(len(c))]
	}
	return c[r.IntN(len(c))]
}

// Contains reports whether the catalog holds an entry with the given word.
func (c Catalog) Contains(word string) bool {
	for _, e := range c {
		if strings.EqualFold(e.Word, word) {
			return true
		}
	}
	return false
}

// Validate checks that the catalog is usable for a round.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCatalog
	}
	for i, e := range c {
		if strings.TrimSpace(e.Word) == "" {
			return fmt.Errorf("entry %d: empty word", i)
		}
		if strings.TrimSpace(e.Tip) == "" {
			return fmt.Errorf("entry %d (%s): empty tip", i, e.Word)
		}
	}
	return nil
}
