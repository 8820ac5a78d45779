package fixture

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yamlLex "github.com/goccy/go-yaml/lexer"
	yamlParse "github.com/goccy/go-yaml/parser"
	"github.com/inoxlang/arrcompat/internal/diag"
	"github.com/inoxlang/arrcompat/internal/probe"
	"github.com/inoxlang/arrcompat/internal/value"
	"github.com/rs/zerolog"
)

const (
	NAME_FIELD        = "name"
	VALUES_FIELD      = "values"
	PROBES_FIELD      = "probes"
	LEFT_FIELD        = "left"
	RIGHT_FIELD       = "right"
	PAIRS_FIELD       = "pairs"
	VARIANT_FIELD     = "variant"
	BOTH_ORDERS_FIELD = "both_orders"

	LOG_SOURCE = "fixture"
)

var (
	ErrInvalidFixture = errors.New("invalid fixture")
	ErrUnknownGroup   = errors.New("unknown value group")
)

// Parse parses a fixture document:
//
//	name: my-matrix
//	values:
//	  legacy: [!array [], !array {a: b}]
//	  hack: [[], !keyset [a]]
//	probes:
//	  - {left: legacy, right: hack, variant: hack-array, both_orders: true}
//	  - variant: non-any-array
//	    pairs: [[!array [], 1]]
//
// The name defaults to defaultName, variant defaults to hack-array.
func Parse(src []byte, defaultName string) (probe.Matrix, error) {
	root, groups, err := parseDocument(src)
	if err != nil {
		return probe.Matrix{}, err
	}

	matrix := probe.Matrix{Name: defaultName}

	if name, ok := root.Lookup(value.StrKey(NAME_FIELD)); ok {
		s, ok := name.(value.Str)
		if !ok {
			return probe.Matrix{}, fmt.Errorf("%w: .%s should be a string", ErrInvalidFixture, NAME_FIELD)
		}
		matrix.Name = string(s)
	}

	rawProbes, ok := root.Lookup(value.StrKey(PROBES_FIELD))
	if !ok {
		return probe.Matrix{}, fmt.Errorf("%w: missing .%s", ErrInvalidFixture, PROBES_FIELD)
	}
	probes, ok := rawProbes.(*value.List)
	if !ok {
		return probe.Matrix{}, fmt.Errorf("%w: .%s should be a sequence", ErrInvalidFixture, PROBES_FIELD)
	}

	for i, rawProbe := range probes.Elements() {
		entry, ok := rawProbe.(*value.Map)
		if !ok {
			return probe.Matrix{}, fmt.Errorf("%w: probe %d should be a mapping", ErrInvalidFixture, i)
		}
		if err := addProbe(&matrix, entry, groups); err != nil {
			return probe.Matrix{}, fmt.Errorf("probe %d: %w", i, err)
		}
	}

	return matrix, nil
}

// ParseValueGroups parses a fixture document and only returns its value groups, the probes are ignored.
func ParseValueGroups(src []byte) (map[string][]value.Value, error) {
	_, groups, err := parseDocument(src)
	return groups, err
}

func parseDocument(src []byte) (*value.Map, map[string][]value.Value, error) {
	tokens := yamlLex.Tokenize(string(src))
	file, err := yamlParse.Parse(tokens, 0)
	if err != nil {
		return nil, nil, err
	}

	if len(file.Docs) != 1 {
		return nil, nil, fmt.Errorf("%w: a single YAML document is expected, got %d", ErrInvalidFixture, len(file.Docs))
	}

	doc, err := newConverter().convert(file.Docs[0])
	if err != nil {
		return nil, nil, err
	}

	root, ok := doc.(*value.Map)
	if !ok {
		return nil, nil, fmt.Errorf("%w: the document should be a mapping", ErrInvalidFixture)
	}

	groups := map[string][]value.Value{}

	if rawGroups, ok := root.Lookup(value.StrKey(VALUES_FIELD)); ok {
		groupMap, ok := rawGroups.(*value.Map)
		if !ok {
			return nil, nil, fmt.Errorf("%w: .%s should be a mapping", ErrInvalidFixture, VALUES_FIELD)
		}
		it := groupMap.Iterator()
		for it.Next() {
			name := value.ToString(it.Key())
			list, ok := it.Value().(*value.List)
			if !ok {
				return nil, nil, fmt.Errorf("%w: value group %s should be a sequence", ErrInvalidFixture, name)
			}
			groups[name] = list.Elements()
		}
	}

	return root, groups, nil
}

func addProbe(matrix *probe.Matrix, entry *value.Map, groups map[string][]value.Value) error {
	variant := diag.HackArrayBoundary
	if rawVariant, ok := entry.Lookup(value.StrKey(VARIANT_FIELD)); ok {
		v, err := diag.ParseVariant(value.ToString(rawVariant))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidFixture, err)
		}
		variant = v
	}

	bothOrders := false
	if rawBothOrders, ok := entry.Lookup(value.StrKey(BOTH_ORDERS_FIELD)); ok {
		b, ok := rawBothOrders.(value.Bool)
		if !ok {
			return fmt.Errorf("%w: .%s should be a boolean", ErrInvalidFixture, BOTH_ORDERS_FIELD)
		}
		bothOrders = bool(b)
	}

	add := func(a, b value.Value) {
		if bothOrders {
			matrix.AddBothOrders(a, b, variant)
		} else {
			matrix.Add(a, b, variant)
		}
	}

	if rawPairs, ok := entry.Lookup(value.StrKey(PAIRS_FIELD)); ok {
		pairs, ok := rawPairs.(*value.List)
		if !ok {
			return fmt.Errorf("%w: .%s should be a sequence", ErrInvalidFixture, PAIRS_FIELD)
		}
		for _, rawPair := range pairs.Elements() {
			pair, ok := rawPair.(*value.List)
			if !ok || pair.Len() != 2 {
				return fmt.Errorf("%w: each pair should be a sequence of two values", ErrInvalidFixture)
			}
			add(pair.At(0), pair.At(1))
		}
		return nil
	}

	left, err := lookupGroup(entry, LEFT_FIELD, groups)
	if err != nil {
		return err
	}
	right, err := lookupGroup(entry, RIGHT_FIELD, groups)
	if err != nil {
		return err
	}

	for _, a := range left {
		for _, b := range right {
			add(a, b)
		}
	}
	return nil
}

func lookupGroup(entry *value.Map, field string, groups map[string][]value.Value) ([]value.Value, error) {
	rawName, ok := entry.Lookup(value.StrKey(field))
	if !ok {
		return nil, fmt.Errorf("%w: missing .%s (or .%s)", ErrInvalidFixture, field, PAIRS_FIELD)
	}
	name := value.ToString(rawName)
	group, ok := groups[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGroup, name)
	}
	return group, nil
}

// LoadFile reads and parses a fixture file, the default name of the matrix is the file name without extension.
func LoadFile(path string, logger zerolog.Logger) (probe.Matrix, error) {
	logger = diag.ChildLoggerForSource(logger, LOG_SOURCE)

	content, err := os.ReadFile(path)
	if err != nil {
		return probe.Matrix{}, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	matrix, err := Parse(content, name)
	if err != nil {
		return probe.Matrix{}, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug().Str("matrix", matrix.Name).Int("cases", len(matrix.Cases)).Msg("fixture loaded")
	return matrix, nil
}

// LoadValueGroupsFile reads a fixture file and returns its value groups.
func LoadValueGroupsFile(path string, logger zerolog.Logger) (map[string][]value.Value, error) {
	logger = diag.ChildLoggerForSource(logger, LOG_SOURCE)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	groups, err := ParseValueGroups(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug().Int("groups", len(groups)).Msg("value groups loaded")
	return groups, nil
}
