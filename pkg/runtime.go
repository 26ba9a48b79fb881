package alder

// RuntimePrelude returns a small hand-written C snippet defining the
// language's one builtin, print(int32_t), in terms of printf, together
// with the headers it needs. Earlier pipelines in this lineage built the
// same function directly as LLVM IR instructions; here it is emitted as
// literal C text instead, since this package's backend is C source, not
// an IR module. Compiler.Build prepends it to every Module's render.
func RuntimePrelude() string {
	return "#include <stdint.h>\n" +
		"#include <stdio.h>\n" +
		"\n" +
		"static void print(int32_t v) {\n" +
		"    printf(\"%d\\n\", v);\n" +
		"}\n"
}
