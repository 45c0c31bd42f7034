package escfmt

import "fmt"

const lowerhex = "0123456789abcdef"

// escapeSeq is the rendered form of one input byte. Sequences are at most
// four bytes long (\xHH).
type escapeSeq struct {
	n   uint8
	buf [4]byte
}

func (s *escapeSeq) bytes() []byte {
	return s.buf[:s.n]
}

// escapeTable maps every byte value to its ASCII-default escaped form.
var escapeTable = func() [256]escapeSeq {
	var table [256]escapeSeq
	for i := range table {
		c := byte(i)
		e := &table[i]
		switch c {
		case '\\', '\'', '"':
			e.n, e.buf[0], e.buf[1] = 2, '\\', c
		case '\t':
			e.n, e.buf[0], e.buf[1] = 2, '\\', 't'
		case '\r':
			e.n, e.buf[0], e.buf[1] = 2, '\\', 'r'
		case '\n':
			e.n, e.buf[0], e.buf[1] = 2, '\\', 'n'
		default:
			if c >= 0x20 && c < 0x7f {
				e.n, e.buf[0] = 1, c
				continue
			}
			e.n = 4
			e.buf = [4]byte{'\\', 'x', lowerhex[c>>4], lowerhex[c&0x0f]}
		}
	}
	return table
}()

// needsEscape reports, per byte, whether the rendered form differs from the
// byte itself.
var needsEscape = func() [256]bool {
	var table [256]bool
	for i := range escapeTable {
		e := &escapeTable[i]
		table[i] = e.n != 1 || e.buf[0] != byte(i)
	}
	return table
}()

func init() {
	if err := validateEscapeTable(&escapeTable); err != nil {
		panic(err)
	}
}

// validateEscapeTable checks that every sequence is non-empty printable ASCII
// and that anything longer than one byte is introduced by a backslash. Only
// the backslash byte itself may produce a lone backslash pair.
func validateEscapeTable(table *[256]escapeSeq) error {
	for i := range table {
		e := &table[i]
		if e.n == 0 || int(e.n) > len(e.buf) {
			return fmt.Errorf("escfmt: escape for 0x%02x has invalid length %d", i, e.n)
		}
		for _, b := range e.bytes() {
			if b < 0x20 || b > 0x7e {
				return fmt.Errorf("escfmt: escape for 0x%02x contains non-printable byte 0x%02x", i, b)
			}
		}
		if e.n == 1 && e.buf[0] == '\\' {
			return fmt.Errorf("escfmt: escape for 0x%02x is a bare backslash", i)
		}
		if e.n > 1 && e.buf[0] != '\\' {
			return fmt.Errorf("escfmt: escape for 0x%02x does not start with a backslash", i)
		}
		if e.n == 2 && e.buf[1] == '\\' && i != '\\' {
			return fmt.Errorf("escfmt: escape for 0x%02x collides with the backslash escape", i)
		}
	}
	return nil
}
