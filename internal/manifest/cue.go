package manifest

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/enumconform/enum"
)

const cueSchemaFile = "schema/manifest.cue"

// ParseCUE parses a CUE manifest. source names the document in errors.
//
// The document is unified with #Manifest, so misspelled fields and
// wrongly typed values are rejected with their CUE position.
func ParseCUE(data []byte, source string) (*Manifest, error) {
	schemaSrc, err := schemaFS.ReadFile(cueSchemaFile)
	if err != nil {
		return nil, fmt.Errorf("read manifest schema: %w", err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileBytes(schemaSrc, cue.Filename(cueSchemaFile))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile manifest schema: %w", err)
	}

	v := ctx.CompileBytes(data, cue.Filename(source))
	if err := v.Err(); err != nil {
		return nil, cueError(source, ErrCodeParse, err)
	}

	v = schema.LookupPath(cue.ParsePath("#Manifest")).Unify(v)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, cueError(source, ErrCodeSchema, err)
	}

	m := &Manifest{Source: source}
	enums := v.LookupPath(cue.ParsePath("enum"))
	if enums.Exists() {
		iter, err := enums.Fields()
		if err != nil {
			return nil, cueError(source, ErrCodeParse, err)
		}
		for iter.Next() {
			e, err := parseCUEEnum(iter.Label(), iter.Value())
			if err != nil {
				return nil, cueError(source, ErrCodeInvalidCase, err)
			}
			m.Enums = append(m.Enums, e)
		}
	}

	if err := m.normalize(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseCUEEnum(name string, v cue.Value) (Enum, error) {
	e := Enum{Name: name}

	kind, err := v.LookupPath(cue.ParsePath("kind")).String()
	if err != nil {
		return e, err
	}
	e.Kind = enum.Kind(kind)

	if lv := v.LookupPath(cue.ParsePath("labels")); lv.Exists() {
		if e.Labels, err = lv.Bool(); err != nil {
			return e, err
		}
	}

	list, err := v.LookupPath(cue.ParsePath("cases")).List()
	if err != nil {
		return e, err
	}
	for list.Next() {
		c, err := parseCUECase(list.Value())
		if err != nil {
			return e, err
		}
		e.Cases = append(e.Cases, c)
	}
	return e, nil
}

func parseCUECase(v cue.Value) (Case, error) {
	var c Case
	var err error

	if c.Name, err = v.LookupPath(cue.ParsePath("name")).String(); err != nil {
		return c, err
	}

	value := v.LookupPath(cue.ParsePath("value"))
	switch value.IncompleteKind() {
	case cue.StringKind:
		c.Value, err = value.String()
	case cue.IntKind:
		c.Value, err = value.Int64()
	default:
		err = fmt.Errorf("case %s: value must be a string or an int", c.Name)
	}
	if err != nil {
		return c, err
	}

	if lv := v.LookupPath(cue.ParsePath("label")); lv.Exists() {
		if c.Label, err = lv.String(); err != nil {
			return c, err
		}
	}
	return c, nil
}
