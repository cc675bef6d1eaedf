package scanner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contents(fragments []Fragment) []string {
	out := make([]string, 0, len(fragments))
	for _, f := range fragments {
		out = append(out, f.Content)
	}
	return out
}

func fragmentFor(t *testing.T, fragments []Fragment, content string) Fragment {
	t.Helper()
	for _, f := range fragments {
		if f.Content == content {
			return f
		}
	}
	t.Fatalf("no fragment %q in %v", content, contents(fragments))
	return Fragment{}
}

func TestExtractGo(t *testing.T) {
	src := []byte(`package sample

import "fmt"

type Recievr struct {
	Feild string ` + "`json:\"feild\"`" + `
}

func (r Recievr) Hndle(cnt int) (reslt string) {
	for idx, itm := range []string{"frst"} {
		tmp := itm
		_ = idx
		_ = tmp
	}
	return fmt.Sprint(cnt)
}
`)
	fragments, err := ExtractGo("sample.go", src)
	require.NoError(t, err)

	got := contents(fragments)
	for _, want := range []string{"Recievr", "Feild", "Hndle", "r", "cnt", "reslt", "idx", "itm", "tmp", `"frst"`} {
		assert.Contains(t, got, want)
	}
	assert.NotContains(t, got, `"fmt"`)
	assert.NotContains(t, got, "`json:\"feild\"`")
	assert.NotContains(t, got, "_")

	f := fragmentFor(t, fragments, "Hndle")
	assert.Equal(t, FragmentIdentifier, f.Kind)
	assert.Equal(t, &Position{Line: 9, Column: 18}, f.Position)
	assert.Equal(t, FragmentString, fragmentFor(t, fragments, `"frst"`).Kind)
}

func TestExtractGoSyntaxError(t *testing.T) {
	_, err := ExtractGo("broken.go", []byte("package\n"))
	assert.Error(t, err)
}

func TestExtractPython(t *testing.T) {
	src := []byte("def calculate_totl(itemz, dflt=1):\n    mesage = \"helo\"\n    return mesage\n\nclass Invntory:\n    pass\n")
	fragments, err := ExtractTreeSitter(context.Background(), "python", src)
	require.NoError(t, err)

	got := contents(fragments)
	for _, want := range []string{"calculate_totl", "itemz", "dflt", "mesage", `"helo"`, "Invntory"} {
		assert.Contains(t, got, want)
	}
	f := fragmentFor(t, fragments, "mesage")
	assert.Equal(t, &Position{Line: 2, Column: 5}, f.Position)
}

func TestExtractJavaScript(t *testing.T) {
	src := []byte("function fetchDta(usrName) {\n  const reslt = \"ok\";\n  return { statsu: reslt };\n}\n")
	fragments, err := ExtractTreeSitter(context.Background(), "javascript", src)
	require.NoError(t, err)

	got := contents(fragments)
	for _, want := range []string{"fetchDta", "usrName", "reslt", `"ok"`, "statsu"} {
		assert.Contains(t, got, want)
	}
}

func TestExtractTypeScript(t *testing.T) {
	src := []byte("interface Usr {\n  nme: string;\n}\nconst grettng: string = `hi`;\n")
	fragments, err := ExtractTreeSitter(context.Background(), "typescript", src)
	require.NoError(t, err)

	got := contents(fragments)
	for _, want := range []string{"Usr", "nme", "grettng", "`hi`"} {
		assert.Contains(t, got, want)
	}
}

func TestExtractTreeSitterUnknownLanguage(t *testing.T) {
	_, err := ExtractTreeSitter(context.Background(), "cobol", []byte("x"))
	assert.Error(t, err)
}

func TestExtractSwift(t *testing.T) {
	src := []byte("class Helpr {\n    let greetng = \"Helo there\"\n}\n")
	fragments, err := ExtractSwift(context.Background(), src)
	require.NoError(t, err)

	got := contents(fragments)
	assert.Contains(t, got, "Helpr")
	assert.Contains(t, got, `"Helo there"`)
	assert.Equal(t, FragmentIdentifier, fragmentFor(t, fragments, "Helpr").Kind)
}

func TestExtractSwiftSubscript(t *testing.T) {
	src := []byte("struct Grid {\n    subscript(rw: Indx, column col: Int) -> Vlue {\n        fatalError()\n    }\n}\n")
	fragments, err := ExtractSwift(context.Background(), src)
	require.NoError(t, err)

	got := contents(fragments)
	assert.Contains(t, got, "Indx")
	assert.Contains(t, got, "Int")
	assert.Contains(t, got, "Vlue")
	assert.Contains(t, got, "rw")
	assert.Contains(t, got, "column")
	assert.Equal(t, 2, fragmentFor(t, fragments, "Indx").Position.Line)
}

func TestExtractComments(t *testing.T) {
	src := []byte(`#!/usr/bin/env swift
/// Documnted type
let x = "/* not a comment"
/* Block one
 * secnd line
 */
// Copyright 2024 Someone
`)
	text := newSourceText(src)

	scan := extractComments(text, cStyleComments, true, false)
	assert.Equal(t, []string{"Documnted type"}, contents(scan.fragments))
	assert.Equal(t, &Position{Line: 2, Column: 1, Synthesized: true}, scan.fragments[0].Position)

	scan = extractComments(text, cStyleComments, false, true)
	assert.Equal(t, []string{"Block one", "secnd line"}, contents(scan.fragments))
	assert.Equal(t, 5, scan.fragments[1].Position.Line)
	assert.Equal(t, FragmentComment, scan.fragments[1].Kind)
}

func TestExtractCommentsAuthors(t *testing.T) {
	src := []byte("# Created by Jane Doe on 1/1/2024.\n## helpr notes\n")
	scan := extractComments(newSourceText(src), hashComments, true, true)
	assert.Equal(t, []string{"Jane", "Doe"}, scan.authors)
	assert.Equal(t, []string{"helpr notes"}, contents(scan.fragments))
}

func TestExtractJSON(t *testing.T) {
	src := []byte("{\n  \"titel\": \"Helo\",\n  \"items\": [\"frst\", 2]\n}\n")
	fragments, err := ExtractJSON(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"items", "frst", "titel", "Helo"}, contents(fragments))
	assert.Equal(t, 2, fragmentFor(t, fragments, "Helo").Position.Line)
	assert.Equal(t, FragmentConfigValue, fragmentFor(t, fragments, "Helo").Kind)

	_, err = ExtractJSON([]byte("{"))
	assert.Error(t, err)
}

func TestExtractTOML(t *testing.T) {
	src := []byte("[servr]\nnme = \"Primry\"\nport = 80\n")
	fragments, err := ExtractTOML(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"servr", "nme", "Primry", "port"}, contents(fragments))
	assert.Equal(t, 2, fragmentFor(t, fragments, "Primry").Position.Line)
}

func TestExtractYAML(t *testing.T) {
	src := []byte("servr:\n  nme: Primry\n  port: 80\n  tags:\n    - frst\n")
	fragments, err := ExtractYAML(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"servr", "nme", "Primry", "port", "tags", "frst"}, contents(fragments))
	assert.Equal(t, &Position{Line: 2, Column: 8}, fragmentFor(t, fragments, "Primry").Position)
}

func TestExtractEnv(t *testing.T) {
	src := []byte("# comment\nexport API_HOST=\"exampel host\"\n\nDEBUG=\nNAME='quoted'\n")
	fragments, err := ExtractEnv(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"API_HOST", "exampel host", "DEBUG", "NAME", "quoted"}, contents(fragments))
	assert.Equal(t, &Position{Line: 2, Column: 8}, fragmentFor(t, fragments, "API_HOST").Position)
}
