package alder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyRender(t *testing.T) {
	assert.Equal(t, "", Empty{}.Render())
}

func TestBlockRender(t *testing.T) {
	b := NewBlock(
		&Return{Expr: "0"},
		Empty{},
		&Return{Expr: "1"},
	)

	assert.Equal(t, "return 0;\nreturn 1;\n", b.Render())
}

func TestBlockEmpty(t *testing.T) {
	assert.True(t, (*Block)(nil).Empty())
	assert.True(t, (&Block{}).Empty())
	assert.False(t, NewBlock(&Return{Expr: "0"}).Empty())
	assert.Equal(t, "", (*Block)(nil).Render())
}

func TestVariableRender(t *testing.T) {
	cases := []struct {
		name string
		v    Variable
		want string
	}{
		{
			name: "immutable",
			v:    Variable{Mutable: false, Type: I32, Name: "x", Expr: "1"},
			want: "const int32_t x = 1;",
		},
		{
			name: "mutable",
			v:    Variable{Mutable: true, Type: I32, Name: "x", Expr: "1"},
			want: "int32_t x = 1;",
		},
		{
			name: "with pointer extension",
			v:    Variable{Mutable: true, Type: Char, Extension: "*", Name: "s", Expr: `"hi"`},
			want: `char* s = "hi";`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.v.Render())
		})
	}
}

func TestArrayRenderAttributeOrder(t *testing.T) {
	a := Array{Mutable: true, Type: I32, Extension: "[3]", Name: "xs", Elements: "1, 2, 3"}

	// Unlike Variable, Array puts NAME before the type extension.
	assert.Equal(t, "int32_t xs[3] = { 1, 2, 3 };", a.Render())
}

func TestArrayRenderImmutable(t *testing.T) {
	a := Array{Mutable: false, Type: U8, Extension: "[2]", Name: "bs", Elements: "0, 1"}

	assert.Equal(t, "const uint8_t bs[2] = { 0, 1 };", a.Render())
}

func TestIfRenderWithoutElse(t *testing.T) {
	i := &If{
		Condition: "x < 1",
		Then:      NewBlock(&Return{Expr: "0"}),
	}

	assert.Equal(t, "if (x < 1) {\nreturn 0;\n}\n", i.Render())
}

func TestIfRenderWithElse(t *testing.T) {
	i := &If{
		Condition: "x < 1",
		Then:      NewBlock(&Return{Expr: "0"}),
		Else:      NewBlock(&Return{Expr: "1"}),
	}

	assert.Equal(t, "if (x < 1) {\nreturn 0;\n} else {\nreturn 1;\n}\n", i.Render())
}

func TestPlusEqualRender(t *testing.T) {
	p := &PlusEqual{Name: "x", Expr: "1"}
	assert.Equal(t, "x += 1;", p.Render())
}

func TestWhileRender(t *testing.T) {
	w := &While{Condition: "x < 10", Body: NewBlock(&PlusEqual{Name: "x", Expr: "1"})}
	assert.Equal(t, "while (x < 10) {\nx += 1;\n}\n", w.Render())
}

func TestForRender(t *testing.T) {
	f := &For{
		Init:      &Variable{Mutable: true, Type: I32, Name: "i", Expr: "0"},
		Condition: "i < 10; ",
		Increment: "i += 1",
		Body:      NewBlock(&Expression{Expr: "print(i)"}),
	}

	want := "for (int32_t i = 0;i < 10; i += 1) {\nprint(i);\n}\n"
	assert.Equal(t, want, f.Render())
}

func TestForRenderWithoutInit(t *testing.T) {
	f := &For{
		Condition: "i < 10; ",
		Increment: "i += 1",
		Body:      &Block{},
	}

	assert.Equal(t, "for (i < 10; i += 1) {\n}\n", f.Render())
}

func TestExpressionRender(t *testing.T) {
	e := &Expression{Expr: "print(x)"}
	assert.Equal(t, "print(x);", e.Render())
}

func TestIndexOperatorRender(t *testing.T) {
	i := &IndexOperator{Target: "xs", Index: "0", Expr: "9"}
	assert.Equal(t, "xs[0] = 9;", i.Render())
}

func TestFunctionCallRender(t *testing.T) {
	f := &FunctionCall{Callee: "print", Args: "x, y"}
	assert.Equal(t, "print(x, y);", f.Render())
}

func TestStructRender(t *testing.T) {
	s := &Struct{Name: "Point", Members: []string{"int32_t x", "int32_t y"}}

	want := "typedef struct Point {\n    int32_t x;\n    int32_t y;\n} Point;\n"
	assert.Equal(t, want, s.Render())
}

func TestFunctionRenderNoArgs(t *testing.T) {
	f := &Function{
		Name:       "main",
		ReturnType: I32,
		Body:       NewBlock(&Return{Expr: "0"}),
	}

	want := "int32_t main() {\nreturn 0;\n}\n"
	assert.Equal(t, want, f.Render())
}

func TestFunctionRenderWithArgs(t *testing.T) {
	f := &Function{
		Name:       "add",
		Args:       "i32 a, mut i32 b",
		ReturnType: I32,
		Body:       NewBlock(&Return{Expr: "a + b"}),
	}

	want := "int32_t add(const int32_t a, int32_t b) {\nreturn a + b;\n}\n"
	assert.Equal(t, want, f.Render())
}

func TestFunctionRenderUnknownArgType(t *testing.T) {
	// A non-builtin type name (e.g. a struct) is passed through verbatim.
	f := &Function{
		Name:       "move",
		Args:       "mut Point p",
		ReturnType: Void,
		Body:       &Block{},
	}

	want := "void move(Point p) {\n}\n"
	assert.Equal(t, want, f.Render())
}

func TestModuleRender(t *testing.T) {
	m := &Module{
		Name:     "prog",
		Includes: []string{"<stdio.h>", "<stdint.h>"},
		Structs:  NewBlock(&Struct{Name: "Point", Members: []string{"int32_t x"}}),
		Funcs: NewBlock(&Function{
			Name:       "main",
			ReturnType: I32,
			Body:       NewBlock(&Return{Expr: "0"}),
		}),
	}

	want := "#include <stdio.h>\n#include <stdint.h>\n\n" +
		"typedef struct Point {\n    int32_t x;\n} Point;\n\n\n" +
		"int32_t main() {\nreturn 0;\n}\n\n"
	assert.Equal(t, want, m.Render())
}

func TestModuleRenderNoIncludes(t *testing.T) {
	m := &Module{
		Name:    "empty",
		Structs: &Block{},
		Funcs:   &Block{},
	}

	assert.Equal(t, "\n\n", m.Render())
}
