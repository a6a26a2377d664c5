package locale

import (
	"fmt"
	"strings"
)

// Default option values.
const (
	DefaultKeyColumn     = "key"
	DefaultSeparator     = "."
	DefaultCommentPrefix = "#"
)

// Format selects the shape of the produced trees.
type Format string

const (
	// FormatNested expands dotted keys into nested branches.
	FormatNested Format = "nested"

	// FormatFlat keeps every key as a single top-level entry.
	FormatFlat Format = "flat"
)

// ParseFormat converts a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatNested, "":
		return FormatNested, nil
	case FormatFlat:
		return FormatFlat, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Options controls how a table is turned into locale trees.
type Options struct {
	// KeyColumn is the header of the key column. Default: "key".
	KeyColumn string

	// AllowLanguages restricts language columns to these exact header values.
	// Empty means every column is used.
	AllowLanguages []string

	// CommentPrefix marks rows to skip. Empty disables skipping.
	CommentPrefix string

	// Separator is the path delimiter for FormatNested. Default: ".".
	Separator string

	// Format selects nested or flat trees. The zero value is FormatNested.
	Format Format

	// IncludeMissingAsEmpty writes "" for empty cells instead of leaving the key out.
	IncludeMissingAsEmpty bool

	// Strict makes the first path collision abort the build.
	// When false, colliding keys replace each other (last write wins).
	Strict bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		KeyColumn:             DefaultKeyColumn,
		CommentPrefix:         DefaultCommentPrefix,
		Separator:             DefaultSeparator,
		Format:                FormatNested,
		IncludeMissingAsEmpty: true,
	}
}

// Validate reports option combinations that cannot produce output.
func (o Options) Validate() error {
	if _, err := ParseFormat(string(o.Format)); err != nil {
		return &ConfigurationError{Reason: ReasonInvalidOption, Message: err.Error()}
	}
	if o.Nested() && o.Separator == "" {
		return &ConfigurationError{Reason: ReasonInvalidOption, Message: "separator cannot be empty in nested format"}
	}
	return nil
}

// Nested reports whether keys are expanded into nested branches.
func (o Options) Nested() bool {
	return o.Format != FormatFlat
}

// Stats counts what happened to the rows of a table.
type Stats struct {
	Rows     int `json:"rows"`     // data rows, header excluded
	Skipped  int `json:"skipped"`  // rows without a usable key
	Comments int `json:"comments"` // rows skipped by CommentPrefix
	Entries  int `json:"entries"`  // values written across all languages
}

// Result holds one tree per detected language.
// Trees must not be modified once returned.
type Result struct {
	Trees     map[string]*Branch
	Languages []string
	Stats     Stats
}

// Tree returns the tree built for lang.
func (r *Result) Tree(lang string) (*Branch, bool) {
	t, ok := r.Trees[lang]
	return t, ok
}

// Transform normalizes rows, resolves the header and builds the trees.
func Transform(rows Table, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	table := NormalizeRows(rows)

	mapping, err := ResolveHeader(table, opts.KeyColumn, opts.AllowLanguages)
	if err != nil {
		return nil, err
	}

	return Build(table, mapping, opts)
}

// Build fills one tree per language of mapping from the data rows of table.
// Rows are processed in order, so a repeated key keeps the value of its last row.
func Build(table Table, mapping *Mapping, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		Trees:     make(map[string]*Branch),
		Languages: mapping.Languages(),
	}
	for _, lang := range res.Languages {
		res.Trees[lang] = NewBranch()
	}

	// Non-strict unless asked: a key may turn an existing leaf into a branch
	// or replace a whole branch with a leaf.
	expander := NewExpander(opts.Separator, opts.Strict)
	columns := mapping.Columns()
	keyIndex := mapping.KeyIndex()

	if len(table) < 2 {
		return res, nil
	}

	for _, row := range table[1:] {
		res.Stats.Rows++

		if keyIndex >= len(row) {
			res.Stats.Skipped++
			continue
		}
		key := strings.TrimSpace(row[keyIndex])
		if key == "" {
			res.Stats.Skipped++
			continue
		}
		if opts.CommentPrefix != "" && strings.HasPrefix(key, opts.CommentPrefix) {
			res.Stats.Comments++
			continue
		}
		// A key made only of separators has no path to write to.
		if opts.Nested() && len(expander.Segments(key)) == 0 {
			res.Stats.Skipped++
			continue
		}

		for _, col := range columns {
			var value string
			if col.Index < len(row) {
				value = strings.TrimSpace(row[col.Index])
			}
			if value == "" && !opts.IncludeMissingAsEmpty {
				continue
			}

			tree := res.Trees[col.Language]
			if opts.Nested() {
				if err := expander.Assign(tree, key, value); err != nil {
					return nil, fmt.Errorf("language %q: %w", col.Language, err)
				}
			} else {
				tree.Set(key, Leaf(value))
			}
			res.Stats.Entries++
		}
	}

	return res, nil
}
