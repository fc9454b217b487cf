package expand

import (
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru"
)

// Cache memoizes expansion results. Expansion is deterministic for a fixed
// options value and a fixed set of loaded models, so cached entries stay
// valid for the lifetime of one lifecycle token; drop the cache when the
// token is closed.
type Cache struct {
	entries *lru.Cache
}

// NewCache builds a cache holding up to size expansions.
func NewCache(size int) (*Cache, error) {
	entries, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Expand behaves like ExpandWithOptions but serves repeated (text, options)
// pairs from memory. The returned slice is a copy; callers may mutate it.
func (c *Cache) Expand(text string, o Options) ([]string, error) {
	key := cacheKey(text, o)
	if v, ok := c.entries.Get(key); ok {
		cached := v.([]string)
		return append([]string(nil), cached...), nil
	}

	variants, err := ExpandWithOptions(text, o)
	if err != nil {
		return nil, err
	}
	c.entries.Add(key, append([]string(nil), variants...))
	return variants, nil
}

// Len reports the number of cached expansions.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Purge drops every cached entry.
func (c *Cache) Purge() {
	c.entries.Purge()
}

// cacheKey fingerprints the input and every option field. The unit
// separator cannot collide with validated inputs, and inputs that fail
// validation are never cached.
func cacheKey(text string, o Options) string {
	var b strings.Builder
	b.WriteString(text)
	b.WriteByte(0x1f)
	b.WriteString(strconv.FormatUint(uint64(o.Components), 16))
	b.WriteByte(0x1f)
	b.WriteString(strconv.FormatUint(uint64(toggleBits(o)), 16))
	for _, lang := range o.Languages {
		b.WriteByte(0x1f)
		b.WriteString(lang)
	}
	return b.String()
}

func toggleBits(o Options) uint32 {
	toggles := []bool{
		o.LatinASCII, o.Transliterate, o.StripAccents, o.Decompose,
		o.Lowercase, o.TrimString, o.DropParentheticals,
		o.ReplaceNumericHyphens, o.DeleteNumericHyphens,
		o.SplitAlphaFromNumeric, o.ReplaceWordHyphens, o.DeleteWordHyphens,
		o.DeleteFinalPeriods, o.DeleteAcronymPeriods,
		o.DropEnglishPossessives, o.DeleteApostrophes, o.ExpandNumex,
		o.RomanNumerals,
	}
	var bits uint32
	for i, on := range toggles {
		if on {
			bits |= 1 << i
		}
	}
	return bits
}
