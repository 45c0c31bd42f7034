// Package escfmt renders arbitrary byte slices as printable text using the
// ASCII-default escaping convention, without building the escaped string
// first.
//
// # Escaping table
//
//   - \t, \r and \n for tab, carriage return and line feed.
//   - \\, \' and \" for backslash, single quote and double quote.
//   - Printable ASCII (0x20 through 0x7e) passes through unchanged.
//   - Every other byte becomes \xHH with two lowercase hex digits.
//
// The table is built once at package initialisation and checked there: every
// entry consists of printable ASCII only, so rendered output never contains
// control characters or bytes above 0x7e.
//
// # Design overview
//
//   - Borrowed input: Wrap stores the slice header and nothing else. The
//     caller keeps ownership and must not mutate the slice during a render.
//   - Streaming output: Renderer.WriteTo hands unescaped runs to the sink as
//     sub-slices of the input and escape sequences from the static table, so
//     rendering allocates nothing of its own.
//   - Chunk-aware scans: the search for the next byte needing escaping walks
//     8-byte words, so long printable runs cost one write.
//   - Fail fast: the first sink error stops rendering and is returned wrapped
//     in a *WriteError. Nothing is rolled back.
//
// # Usage
//
//	fmt.Println(escfmt.Wrap(payload))               // streams into fmt
//	s := escfmt.EscapeString([]byte("\t\nx\r\n"))  // `\t\nx\r\n`
//	_, err := escfmt.Wrap(payload).WriteTo(os.Stdout)
//
// For streams, NewWriter returns an io.Writer that escapes everything written
// through it; it can highlight escape sequences with an ansi.Palette when the
// output is a terminal.
//
// The escfmt command under cmd/escfmt exposes the same rendering for files
// and standard input.
package escfmt
