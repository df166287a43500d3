package parser

import (
	"reflect"
	"testing"
)

func TestParsePythonFromImport(t *testing.T) {
	stmts := ParseImportLine("from pkg.sub import X, Y as Z", 3, LangPython)
	if len(stmts) != 2 {
		t.Fatalf("expected 2 candidates for dotted module, got %d", len(stmts))
	}

	if stmts[0].Module != "pkg.sub" {
		t.Errorf("expected full dotted module pkg.sub, got %q", stmts[0].Module)
	}
	if stmts[1].Module != "sub" {
		t.Errorf("expected last-segment candidate sub, got %q", stmts[1].Module)
	}
	for _, s := range stmts {
		if !reflect.DeepEqual(s.Symbols, []string{"X", "Y"}) {
			t.Errorf("expected alias-stripped symbols [X Y], got %v", s.Symbols)
		}
		if s.IsDefault {
			t.Errorf("from-import must not be default-style")
		}
		if s.Line != 3 {
			t.Errorf("expected line 3, got %d", s.Line)
		}
	}
}

func TestParsePythonBareImport(t *testing.T) {
	stmts := ParseImportLine("import os.path", 1, LangPython)
	if len(stmts) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(stmts))
	}
	if stmts[0].Module != "os.path" || stmts[1].Module != "path" {
		t.Errorf("unexpected modules: %q, %q", stmts[0].Module, stmts[1].Module)
	}
	if !stmts[0].IsDefault {
		t.Errorf("bare import should be default-style")
	}

	single := ParseImportLine("import os", 1, LangPython)
	if len(single) != 1 {
		t.Fatalf("undotted module should yield 1 candidate, got %d", len(single))
	}
	if !reflect.DeepEqual(single[0].Symbols, []string{"os"}) {
		t.Errorf("unexpected symbols: %v", single[0].Symbols)
	}
}

func TestParseScriptImports(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		module    string
		symbols   []string
		isDefault bool
	}{
		{"named", `import { a, b as c } from './mod'`, "./mod", []string{"a", "b"}, false},
		{"default", `import React from 'react'`, "react", []string{"React"}, true},
		{"require destructured", `const { join } = require('./util')`, "./util", []string{"join"}, false},
		{"require default", `const util = require("./util")`, "./util", []string{"util"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts := ParseImportLine(tt.line, 1, LangTypeScript)
			if len(stmts) != 1 {
				t.Fatalf("expected 1 import, got %d", len(stmts))
			}
			s := stmts[0]
			if s.Module != tt.module {
				t.Errorf("expected module %q, got %q", tt.module, s.Module)
			}
			if !reflect.DeepEqual(s.Symbols, tt.symbols) {
				t.Errorf("expected symbols %v, got %v", tt.symbols, s.Symbols)
			}
			if s.IsDefault != tt.isDefault {
				t.Errorf("expected default=%t, got %t", tt.isDefault, s.IsDefault)
			}
		})
	}
}

func TestParseJavaImports(t *testing.T) {
	stmts := ParseImportLine("import java.util.List;", 2, LangJava)
	if len(stmts) != 1 {
		t.Fatalf("expected 1 import, got %d", len(stmts))
	}
	if stmts[0].Module != "java.util.List" {
		t.Errorf("unexpected module %q", stmts[0].Module)
	}
	if !reflect.DeepEqual(stmts[0].Symbols, []string{"List"}) || !stmts[0].IsDefault {
		t.Errorf("non-wildcard import should record last segment as default symbol, got %v", stmts[0].Symbols)
	}

	wildcard := ParseImportLine("import static java.util.*;", 2, LangJava)
	if len(wildcard) != 1 {
		t.Fatalf("expected 1 wildcard import, got %d", len(wildcard))
	}
	if wildcard[0].Module != "java.util" {
		t.Errorf("unexpected wildcard module %q", wildcard[0].Module)
	}
	if !reflect.DeepEqual(wildcard[0].Symbols, []string{"*"}) || wildcard[0].IsDefault {
		t.Errorf("wildcard import should record * and not be default, got %v", wildcard[0].Symbols)
	}
}

func TestParseCSharpUsing(t *testing.T) {
	stmts := ParseImportLine("using System.Text;", 1, LangCSharp)
	if len(stmts) != 1 {
		t.Fatalf("expected 1 using, got %d", len(stmts))
	}
	if stmts[0].Module != "System.Text" || !stmts[0].IsDefault {
		t.Errorf("unexpected statement: %+v", stmts[0])
	}
	if !reflect.DeepEqual(stmts[0].Symbols, []string{"Text"}) {
		t.Errorf("unexpected symbols: %v", stmts[0].Symbols)
	}

	if got := ParseImportLine("using (var f = File.Open(p))", 1, LangCSharp); len(got) != 0 {
		t.Errorf("using statement form should not match, got %v", got)
	}
}

func TestUnknownLanguageYieldsNothing(t *testing.T) {
	if got := ParseImportLine("import something", 1, LangUnknown); got != nil {
		t.Errorf("unknown language should yield no imports, got %v", got)
	}
}
