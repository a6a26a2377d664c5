package locale

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for locale building.
var (
	// ErrConfiguration is wrapped by every *ConfigurationError.
	ErrConfiguration = errors.New("locale: invalid configuration")

	// ErrKeyCollision is wrapped by every *KeyCollisionError.
	ErrKeyCollision = errors.New("locale: key collision")

	// ErrEmptyKey is returned by Expander.Assign when a key has no path segments.
	ErrEmptyKey = errors.New("locale: key has no path segments")

	// ErrUnknownEncoding is returned by EncoderFor for unsupported encodings.
	ErrUnknownEncoding = errors.New("locale: unknown encoding")

	// ErrUnknownFormat is returned by ParseFormat for values other than nested or flat.
	ErrUnknownFormat = errors.New("locale: unknown format")
)

// Reason classifies a ConfigurationError.
type Reason string

// Configuration error reasons.
const (
	ReasonEmptyHeader      Reason = "empty_header"
	ReasonMissingKeyColumn Reason = "missing_key_column"
	ReasonNoLanguages      Reason = "no_languages"
	ReasonInvalidOption    Reason = "invalid_option"
)

// ConfigurationError reports a table or option problem that prevents any
// output from being produced.
type ConfigurationError struct {
	Reason  Reason
	Column  string   // requested key column, for ReasonMissingKeyColumn
	Header  []string // observed (trimmed) header row
	Message string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return "locale: " + e.Message
}

// Unwrap allows errors.Is(err, ErrConfiguration).
func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

func missingKeyColumn(column string, header []string) *ConfigurationError {
	quoted := make([]string, len(header))
	for i, h := range header {
		quoted[i] = fmt.Sprintf("%q", h)
	}
	return &ConfigurationError{
		Reason:  ReasonMissingKeyColumn,
		Column:  column,
		Header:  header,
		Message: fmt.Sprintf("key column %q not found in header: [%s]", column, strings.Join(quoted, ", ")),
	}
}

// CollisionKind tells which side of a leaf/branch conflict was hit.
type CollisionKind int

const (
	// CollisionLeafOverBranch: the last segment would replace a branch with a leaf.
	CollisionLeafOverBranch CollisionKind = iota + 1

	// CollisionBranchOverLeaf: an intermediate segment resolves to a leaf.
	CollisionBranchOverLeaf
)

// KeyCollisionError is returned by a strict Expander when a key conflicts
// with the shape of the tree built so far.
type KeyCollisionError struct {
	Key     string // full key being assigned
	Segment string // segment where the conflict was found
	Kind    CollisionKind
}

// Error implements the error interface.
func (e *KeyCollisionError) Error() string {
	if e.Kind == CollisionLeafOverBranch {
		return fmt.Sprintf("locale: key collision: %q, path already holds an object", e.Key)
	}
	return fmt.Sprintf("locale: key collision on path %q, non-object encountered at %q", e.Key, e.Segment)
}

// Unwrap allows errors.Is(err, ErrKeyCollision).
func (e *KeyCollisionError) Unwrap() error {
	return ErrKeyCollision
}
