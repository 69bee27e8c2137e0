package config

import (
	"bytes"
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/aledsdavies/picireny/pierrors"
)

// fileSchema is the JSON Schema a --config file must satisfy before its
// values are unmarshaled onto Config. Validating before unmarshaling
// gives users a precise error for typo'd keys or wrong-typed values
// instead of a zero-valued field silently falling through to Default().
const fileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "input": {"type": "string", "minLength": 1},
    "builder": {"type": "string", "minLength": 1},
    "grammar": {"type": "string"},
    "language": {"type": "string"},
    "out": {"type": "string", "minLength": 1},
    "reducer": {"type": "string"},
    "tester": {"type": "string"},
    "cache": {"type": "string", "enum": ["null", "disk"]},
    "phases": {"type": "array", "items": {"type": "string"}, "minItems": 1},
    "star": {"type": "boolean"},
    "flattenRecursion": {"type": "boolean"},
    "squeezeTree": {"type": "boolean"},
    "skipUnremovable": {"type": "boolean"},
    "skipWhitespace": {"type": "boolean"},
    "withWhitespace": {"type": "boolean"},
    "logLevel": {"type": "string", "enum": ["debug", "info", "warn", "error"]},
    "minGrammarVersion": {"type": "string"},
    "grammarVersion": {"type": "string"}
  }
}`

// fileConfig mirrors Config with JSON tags; kept separate from Config so
// Config's Go-idiomatic field names don't have to carry json struct tags
// throughout the rest of the engine.
type fileConfig struct {
	Input             string   `json:"input"`
	Builder           string   `json:"builder"`
	Grammar           string   `json:"grammar"`
	Language          string   `json:"language"`
	Out               string   `json:"out"`
	Reducer           string   `json:"reducer"`
	Tester            string   `json:"tester"`
	Cache             string   `json:"cache"`
	Phases            []string `json:"phases"`
	Star              bool     `json:"star"`
	FlattenRecursion  bool     `json:"flattenRecursion"`
	SqueezeTree       bool     `json:"squeezeTree"`
	SkipUnremovable   bool     `json:"skipUnremovable"`
	SkipWhitespace    bool     `json:"skipWhitespace"`
	WithWhitespace    bool     `json:"withWhitespace"`
	LogLevel          string   `json:"logLevel"`
	MinGrammarVersion string   `json:"minGrammarVersion"`
	GrammarVersion    string   `json:"grammarVersion"`
}

// LoadFile validates raw JSON config bytes against fileSchema, then
// overlays the file's non-empty string and list fields onto base. A
// boolean field set to true turns that setting on; a boolean set to false
// leaves base's value unchanged, as does an empty string.
func LoadFile(base Config, raw []byte) (Config, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("config.json", bytes.NewReader([]byte(fileSchema))); err != nil {
		return base, pierrors.Wrap(pierrors.KindInconsistency, "config: compiling schema", err)
	}
	schema, err := compiler.Compile("config.json")
	if err != nil {
		return base, pierrors.Wrap(pierrors.KindInconsistency, "config: compiling schema", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return base, pierrors.Wrap(pierrors.KindInconsistency, "config: parsing json", err)
	}
	if err := schema.Validate(doc); err != nil {
		return base, pierrors.Wrap(pierrors.KindInconsistency, "config: invalid config file", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(raw, &fc); err != nil {
		return base, pierrors.Wrap(pierrors.KindInconsistency, "config: decoding json", err)
	}
	return overlay(base, fc), nil
}

func overlay(c Config, fc fileConfig) Config {
	if fc.Input != "" {
		c.Input = fc.Input
	}
	if fc.Builder != "" {
		c.Builder = fc.Builder
	}
	if fc.Grammar != "" {
		c.Grammar = fc.Grammar
	}
	if fc.Language != "" {
		c.Language = fc.Language
	}
	if fc.Out != "" {
		c.Out = fc.Out
	}
	if fc.Reducer != "" {
		c.Reducer = fc.Reducer
	}
	if fc.Tester != "" {
		c.Tester = fc.Tester
	}
	if fc.Cache != "" {
		c.Cache = fc.Cache
	}
	if len(fc.Phases) > 0 {
		c.Phases = fc.Phases
	}
	c.Star = fc.Star || c.Star
	c.FlattenRecursion = fc.FlattenRecursion || c.FlattenRecursion
	c.SqueezeTree = fc.SqueezeTree || c.SqueezeTree
	c.SkipUnremovable = fc.SkipUnremovable || c.SkipUnremovable
	c.SkipWhitespace = fc.SkipWhitespace || c.SkipWhitespace
	c.WithWhitespace = fc.WithWhitespace || c.WithWhitespace
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.MinGrammarVersion != "" {
		c.MinGrammarVersion = fc.MinGrammarVersion
	}
	if fc.GrammarVersion != "" {
		c.GrammarVersion = fc.GrammarVersion
	}
	return c
}
