package emit_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemagen/internal/emit"
	"schemagen/internal/rules"
)

func TestCamelCase(t *testing.T) {
	cases := []struct{ in, want string }{
		{"created_at", "createdAt"},
		{"id", "id"},
		{"user_profile_id", "userProfileId"},
		// Already-camelCase names round-trip verbatim.
		{"createdAt", "createdAt"},
		{"HTMLBody", "HTMLBody"},
		{"a__b", "aB"},
	}
	for _, c := range cases {
		if got := emit.CamelCase(c.in); got != c.want {
			t.Errorf("CamelCase(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPascalCase(t *testing.T) {
	cases := []struct{ in, want string }{
		{"posts", "Posts"},
		{"user_profiles", "UserProfiles"},
	}
	for _, c := range cases {
		if got := emit.PascalCase(c.in); got != c.want {
			t.Errorf("PascalCase(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func postsArtifact() emit.Artifact {
	return emit.NewArtifact("posts", []emit.Column{
		{Name: "id", SourceName: "id", Type: "number", Decorator: "column", IsPrimary: true},
		{Name: "title", SourceName: "title", Type: "string", Decorator: "column"},
		{Name: "createdAt", SourceName: "created_at", Type: "DateTime", Decorator: "column.dateTime", AutoCreate: true},
	})
}

func TestRender_ArtifactShape(t *testing.T) {
	out := string(emit.Render(
		[]emit.Artifact{postsArtifact()},
		[]rules.ImportSpec{{Name: "DateTime", From: "luxon"}},
	))

	assert.Contains(t, out, "// Code generated by schemagen. DO NOT EDIT.")
	assert.Contains(t, out, "import { DateTime } from 'luxon'")
	assert.Contains(t, out, "export const postsColumns = [")
	assert.Contains(t, out, "export interface PostsSchema {")
	assert.Contains(t, out, "  id: number\n")
	assert.Contains(t, out, "  title: string\n")
	assert.Contains(t, out, "  createdAt: DateTime\n")
	assert.Contains(t, out, "primaryKey: 'id'")
	assert.Contains(t, out, "isPrimary: true")
	assert.Contains(t, out, "column: 'created_at'")
	assert.Contains(t, out, "autoCreate: true")

	// The column tuple preserves catalog order.
	cols := out[strings.Index(out, "postsColumns"):]
	require.True(t, strings.Index(cols, "'id'") < strings.Index(cols, "'title'"))
	require.True(t, strings.Index(cols, "'title'") < strings.Index(cols, "'createdAt'"))
}

func TestRender_NullableWidening(t *testing.T) {
	a := emit.NewArtifact("posts", []emit.Column{
		{Name: "subtitle", SourceName: "subtitle", Type: "string", Decorator: "column", Nullable: true},
	})
	out := string(emit.Render([]emit.Artifact{a}, nil))
	assert.Contains(t, out, "subtitle: string | null")
}

func TestRender_Idempotent(t *testing.T) {
	artifacts := []emit.Artifact{postsArtifact()}
	imports := []rules.ImportSpec{{Name: "DateTime", From: "luxon"}}

	first := emit.Render(artifacts, imports)
	second := emit.Render(artifacts, imports)
	if !bytes.Equal(first, second) {
		t.Fatal("rendering the same input twice must be byte-identical")
	}
}

func TestRender_ImportGrouping(t *testing.T) {
	out := string(emit.Render(nil, []rules.ImportSpec{
		{Name: "DateTime", From: "luxon"},
		{Name: "JSON", From: "../types"},
		{Name: "Duration", From: "luxon"},
	}))
	assert.Contains(t, out, "import { DateTime, Duration } from 'luxon'")
	assert.Contains(t, out, "import { JSON } from '../types'")
	// Modules appear in first-seen order.
	assert.Less(t, strings.Index(out, "'luxon'"), strings.Index(out, "'../types'"))
	assert.Equal(t, 1, strings.Count(out, "from 'luxon'"), "imports from one module merge into one line")
}

func TestNewArtifact_NoPrimaryKey(t *testing.T) {
	a := emit.NewArtifact("audit_log", []emit.Column{
		{Name: "event", SourceName: "event", Type: "string", Decorator: "column"},
	})
	assert.Equal(t, "", a.PrimaryKey)
	assert.Equal(t, "auditLog", a.VarBase)
	assert.Equal(t, "AuditLogSchema", a.ClassName)
}
