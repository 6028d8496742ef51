package deck

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"sync"
)

//go:embed decks/*.yaml
var builtinFS embed.FS

// DefaultID is the deck used when none is chosen.
const DefaultID = "classic"

// Info contains metadata about a registered deck.
type Info struct {
	ID    string
	Name  string
	Count int
}

var (
	decks = make(map[string]Deck)
	mu    sync.RWMutex
)

func init() {
	files, err := fs.Glob(builtinFS, "decks/*.yaml")
	if err != nil {
		panic(fmt.Sprintf("deck: cannot list built-in decks: %v", err))
	}
	for _, f := range files {
		data, err := builtinFS.ReadFile(f)
		if err != nil {
			panic(fmt.Sprintf("deck: cannot read %s: %v", f, err))
		}
		d, err := ParseYAML(data)
		if err != nil {
			panic(fmt.Sprintf("deck: built-in %s: %v", f, err))
		}
		Register(d)
	}
}

// Register adds a deck to the registry.
// Panics if a deck with the same ID is already registered.
func Register(d Deck) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := decks[d.ID]; exists {
		panic(fmt.Sprintf("deck: %q already registered", d.ID))
	}
	decks[d.ID] = d
}

// List returns information about all registered decks, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(decks))
	for id, d := range decks {
		result = append(result, Info{ID: id, Name: d.Name, Count: d.Len()})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Get returns a registered deck by ID.
func Get(id string) (Deck, error) {
	mu.RLock()
	defer mu.RUnlock()

	d, ok := decks[id]
	if !ok {
		return Deck{}, fmt.Errorf("deck: unknown deck %q", id)
	}
	return d, nil
}

// Exists checks if a deck with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := decks[id]
	return ok
}

// Resolve returns the deck file at path when path is set, otherwise the
// registered deck id (DefaultID when id is empty).
func Resolve(id, path string) (Deck, error) {
	if path != "" {
		return LoadFile(path)
	}
	if id == "" {
		id = DefaultID
	}
	return Get(id)
}
