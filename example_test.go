package escfmt_test

import (
	"fmt"
	"os"

	"pkt.systems/escfmt"
)

func ExampleWrap() {
	payload := []byte("\t\nsometext\r\n")
	fmt.Println(escfmt.Wrap(payload))
	fmt.Printf("%q\n", escfmt.Wrap([]byte{0x00, '\\', 0xff}))

	// Output:
	// \t\nsometext\r\n
	// "\x00\\\xff"
}

func ExampleRenderer_WriteTo() {
	if _, err := escfmt.Wrap([]byte("it's \"raw\"\x1b[0m")).WriteTo(os.Stdout); err != nil {
		fmt.Println("write failed:", err)
	}
	fmt.Println()

	// Output:
	// it\'s \"raw\"\x1b[0m
}

func ExampleEscapeString() {
	fmt.Println(escfmt.EscapeString([]byte{0x09, 0x0d, 0x0a}))
	fmt.Println(escfmt.EscapeString([]byte{0x5c}))

	// Output:
	// \t\r\n
	// \\
}

func ExampleNewWriter() {
	w := escfmt.NewWriter(os.Stdout, escfmt.WithLineBreaks())
	fmt.Fprintf(w, "col1\tcol2\n")
	fmt.Fprintf(w, "bell\a\n")

	// Output:
	// col1\tcol2
	// bell\x07
}
