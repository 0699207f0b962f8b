package emit

import (
	"bytes"
	"fmt"
	"strings"

	"schemagen/internal/rules"
)

const header = "// Code generated by schemagen. DO NOT EDIT.\n"

// Render serializes all artifacts into the single output unit. Rendering is
// idempotent: identical input produces byte-identical output, which the
// change detector relies on for safe diffing.
func Render(artifacts []Artifact, imports []rules.ImportSpec) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)

	for _, g := range groupImports(imports) {
		fmt.Fprintf(&buf, "\nimport { %s } from '%s'\n", strings.Join(g.Names, ", "), g.From)
	}

	for i := range artifacts {
		writeArtifact(&buf, &artifacts[i])
	}

	return buf.Bytes()
}

func writeArtifact(buf *bytes.Buffer, a *Artifact) {
	fmt.Fprintf(buf, "\nexport const %sColumns = [\n", a.VarBase)
	for _, c := range a.Columns {
		fmt.Fprintf(buf, "  '%s',\n", c.Name)
	}
	buf.WriteString("] as const\n")

	fmt.Fprintf(buf, "\nexport interface %s {\n", a.ClassName)
	for _, c := range a.Columns {
		fmt.Fprintf(buf, "  %s: %s\n", c.Name, c.FieldType())
	}
	buf.WriteString("}\n")

	fmt.Fprintf(buf, "\nexport const %sMeta = {\n", a.VarBase)
	fmt.Fprintf(buf, "  table: '%s',\n", a.Table)
	fmt.Fprintf(buf, "  primaryKey: '%s',\n", a.PrimaryKey)
	buf.WriteString("  columns: {\n")
	for _, c := range a.Columns {
		fmt.Fprintf(buf, "    %s: %s,\n", c.Name, c.Meta())
	}
	buf.WriteString("  },\n} as const\n")
}

// importGroup collects the names imported from one source module.
type importGroup struct {
	From  string
	Names []string
}

// groupImports merges specs sharing a source module into one import line,
// preserving first-seen order of both modules and names.
func groupImports(specs []rules.ImportSpec) []importGroup {
	var groups []importGroup
	index := make(map[string]int)
	for _, s := range specs {
		i, ok := index[s.From]
		if !ok {
			i = len(groups)
			index[s.From] = i
			groups = append(groups, importGroup{From: s.From})
		}
		groups[i].Names = append(groups[i].Names, s.Name)
	}
	return groups
}
