package dictionary

import (
	"context"
	"fmt"
	"strings"

	"github.com/at-ishikawa/wordlens/internal/config"
)

const (
	schemaReasonNoTables      = "no tables"
	schemaReasonMissingFields = "missing fields"
)

var (
	headwordColumnKeywords    = []string{"word", "english", "vocab"}
	translationColumnKeywords = []string{"trans", "chinese", "mean"}
)

// Schema names the dictionary table and the two columns queries use.
type Schema struct {
	Table             string
	HeadwordColumn    string
	TranslationColumn string
}

func (s Schema) validate() error {
	if s.Table == "" || s.HeadwordColumn == "" || s.TranslationColumn == "" {
		return &SchemaError{Reason: schemaReasonMissingFields, Schema: s}
	}
	return nil
}

func (s Schema) column(field Field) string {
	if field == FieldTranslation {
		return s.TranslationColumn
	}
	return s.HeadwordColumn
}

// SchemaError reports that no usable dictionary table or columns were found.
type SchemaError struct {
	Reason string
	Schema Schema
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dictionary schema: %s (table=%q headword=%q translation=%q)",
		e.Reason, e.Schema.Table, e.Schema.HeadwordColumn, e.Schema.TranslationColumn)
}

// Detector resolves the Schema of a dictionary source.
type Detector interface {
	Detect(ctx context.Context) (Schema, error)
}

// NewDetector returns the detector selected by the schema strategy.
func NewDetector(cfg config.SchemaConfig, source Source) Detector {
	if cfg.Strategy == config.SchemaStrategyExplicit {
		return ExplicitDetector{Schema: Schema{
			Table:             cfg.Table,
			HeadwordColumn:    cfg.HeadwordColumn,
			TranslationColumn: cfg.TranslationColumn,
		}}
	}
	return NewHeuristicDetector(source)
}

// ExplicitDetector returns a fixed schema.
type ExplicitDetector struct {
	Schema Schema
}

func (d ExplicitDetector) Detect(_ context.Context) (Schema, error) {
	if err := d.Schema.validate(); err != nil {
		return Schema{}, err
	}
	return d.Schema, nil
}

// HeuristicDetector guesses the schema from table sizes and column names.
//
// The table with the most rows is assumed to be the dictionary, so large
// auxiliary or log tables can be picked by mistake. Use ExplicitDetector for
// sources with such tables.
type HeuristicDetector struct {
	source Source
}

func NewHeuristicDetector(source Source) *HeuristicDetector {
	return &HeuristicDetector{source: source}
}

func (d *HeuristicDetector) Detect(ctx context.Context) (Schema, error) {
	tables, err := d.source.Tables(ctx)
	if err != nil {
		return Schema{}, fmt.Errorf("source.Tables > %w", err)
	}
	if len(tables) == 0 {
		return Schema{}, &SchemaError{Reason: schemaReasonNoTables}
	}

	var schema Schema
	var maxRows int64
	for _, table := range tables {
		count, err := d.source.CountRows(ctx, table)
		if err != nil {
			return Schema{}, fmt.Errorf("source.CountRows(%s) > %w", table, err)
		}
		// strictly greater: the first table wins ties and empty tables never qualify
		if count > maxRows {
			maxRows = count
			schema.Table = table
		}
	}
	if schema.Table == "" {
		return Schema{}, &SchemaError{Reason: schemaReasonMissingFields, Schema: schema}
	}

	columns, err := d.source.Columns(ctx, schema.Table)
	if err != nil {
		return Schema{}, fmt.Errorf("source.Columns(%s) > %w", schema.Table, err)
	}
	for _, column := range columns {
		name := strings.ToLower(column)
		if containsAny(name, headwordColumnKeywords) {
			schema.HeadwordColumn = column
		} else if containsAny(name, translationColumnKeywords) {
			schema.TranslationColumn = column
		}
	}

	if err := schema.validate(); err != nil {
		return Schema{}, err
	}
	return schema, nil
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
