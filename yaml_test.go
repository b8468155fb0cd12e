package jdoc

import (
	"errors"
	"strings"
	"testing"
)

func TestFromYAMLBasic(t *testing.T) {
	src := `
name: Ada
age: 36
address:
  city: Oslo
tags:
  - a
  - b
`
	d, err := FromYAML([]byte(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v, _ := d.Get("name"); v.String() != "Ada" {
		t.Errorf("name: got %q", v.String())
	}
	if v, _ := d.Get("age"); v.Int() != 36 {
		t.Errorf("age: got %d", v.Int())
	}
	if v, _ := d.Get("address:city"); v.String() != "Oslo" {
		t.Errorf("address:city: got %q", v.String())
	}
	if v, _ := d.Get("tags[1]"); v.String() != "b" {
		t.Errorf("tags[1]: got %q", v.String())
	}
}

func TestFromYAMLPreservesKeyOrder(t *testing.T) {
	d, err := FromYAML([]byte("z: 1\na: 2\nm: 3\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	keys := d.Root().Keys()
	if len(keys) != 3 || keys[0] != "z" || keys[1] != "a" || keys[2] != "m" {
		t.Errorf("expected document order preserved, got %v", keys)
	}
}

func TestFromYAMLBlankAndInvalid(t *testing.T) {
	d, err := FromYAML(nil)
	if err != nil {
		t.Fatalf("blank: %v", err)
	}
	if d.Len() != 0 {
		t.Error("blank input should yield an empty document")
	}

	if _, err := FromYAML([]byte("{unclosed")); !errors.Is(err, ErrInvalidDocument) {
		t.Errorf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestYAMLOutput(t *testing.T) {
	d := New()
	d.Set("z", 1)
	d.Set("a:nested", "v")
	d.Set("list[0]", "x")

	out, err := d.YAML()
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}
	text := string(out)
	if !strings.Contains(text, "nested: v") {
		t.Errorf("missing nested mapping, got:\n%s", text)
	}
	// Insertion order: z was set first and must come before a.
	if strings.Index(text, "z:") > strings.Index(text, "a:") {
		t.Errorf("expected insertion order, got:\n%s", text)
	}

	back, err := FromYAML(out)
	if err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if v, _ := back.Get("a:nested"); v.String() != "v" {
		t.Errorf("round trip: got %q", v.String())
	}
}
