package syntax

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dhamidi/rsyn/rust/tokens"
)

type LitKind int

const (
	LitStr LitKind = iota
	LitByteStr
	LitByte
	LitChar
	LitInt
	LitFloat
	LitBool
)

var litKindNames = map[LitKind]string{
	LitStr:     "Str",
	LitByteStr: "ByteStr",
	LitByte:    "Byte",
	LitChar:    "Char",
	LitInt:     "Int",
	LitFloat:   "Float",
	LitBool:    "Bool",
}

func (k LitKind) String() string {
	if name, ok := litKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Lit is a literal exactly as written, suffix included.
type Lit struct {
	Kind LitKind
	Text string
	Span Span
}

func litKindOf(k tokens.LitKind) LitKind {
	switch k {
	case tokens.LitStr:
		return LitStr
	case tokens.LitByteStr:
		return LitByteStr
	case tokens.LitByte:
		return LitByte
	case tokens.LitChar:
		return LitChar
	case tokens.LitFloat:
		return LitFloat
	}
	return LitInt
}

func (l *Lit) tokenKind() tokens.LitKind {
	switch l.Kind {
	case LitStr:
		return tokens.LitStr
	case LitByteStr:
		return tokens.LitByteStr
	case LitByte:
		return tokens.LitByte
	case LitChar:
		return tokens.LitChar
	case LitFloat:
		return tokens.LitFloat
	}
	return tokens.LitInt
}

// Suffix returns the type suffix of a numeric literal, e.g. "u8".
func (l *Lit) Suffix() string {
	switch l.Kind {
	case LitInt, LitFloat:
	default:
		return ""
	}
	text := l.Text
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0o") || strings.HasPrefix(text, "0b") {
		for i := 2; i < len(text); i++ {
			c := text[i]
			if c == 'i' || c == 'u' {
				return text[i:]
			}
		}
		return ""
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == 'i' || c == 'u' || c == 'f' {
			return text[i:]
		}
	}
	return ""
}

func (l *Lit) digits() string {
	return strings.ReplaceAll(strings.TrimSuffix(l.Text, l.Suffix()), "_", "")
}

// IntValue returns the value of an integer literal.
func (l *Lit) IntValue() (uint64, error) {
	if l.Kind != LitInt {
		return 0, fmt.Errorf("not an integer literal: %s", l.Text)
	}
	digits, base := l.radix()
	return strconv.ParseUint(digits, base, 64)
}

// radix splits an integer literal's digits from its base prefix.
func (l *Lit) radix() (string, int) {
	digits := l.digits()
	switch {
	case strings.HasPrefix(digits, "0x"):
		return digits[2:], 16
	case strings.HasPrefix(digits, "0o"):
		return digits[2:], 8
	case strings.HasPrefix(digits, "0b"):
		return digits[2:], 2
	}
	return digits, 10
}

func (l *Lit) FloatValue() (float64, error) {
	if l.Kind != LitFloat {
		return 0, fmt.Errorf("not a float literal: %s", l.Text)
	}
	return strconv.ParseFloat(l.digits(), 64)
}

func (l *Lit) BoolValue() bool {
	return l.Kind == LitBool && l.Text == "true"
}

// StrValue returns the contents of a string or byte string literal with
// escapes resolved.
func (l *Lit) StrValue() (string, error) {
	switch l.Kind {
	case LitStr, LitByteStr:
	default:
		return "", fmt.Errorf("not a string literal: %s", l.Text)
	}
	text := strings.TrimPrefix(l.Text, "b")
	if strings.HasPrefix(text, "r") {
		text = strings.TrimLeft(text[1:], "#")
		end := strings.LastIndexByte(text, '"')
		return text[1:end], nil
	}
	end := strings.LastIndexByte(text, '"')
	return unescape(text[1:end])
}

// CharValue returns the value of a char or byte literal.
func (l *Lit) CharValue() (rune, error) {
	switch l.Kind {
	case LitChar, LitByte:
	default:
		return 0, fmt.Errorf("not a character literal: %s", l.Text)
	}
	text := strings.TrimPrefix(l.Text, "b")
	end := strings.LastIndexByte(text, '\'')
	s, err := unescape(text[1:end])
	if err != nil {
		return 0, err
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("character literal must contain exactly one character: %s", l.Text)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func unescape(s string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("dangling backslash")
		}
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '0':
			b.WriteByte(0)
		case '\\', '\'', '"':
			b.WriteByte(s[i])
		case '\n':
			for i+1 < len(s) && strings.IndexByte(" \t\r\n", s[i+1]) >= 0 {
				i++
			}
		case 'x':
			if i+2 >= len(s) {
				return "", fmt.Errorf("truncated \\x escape")
			}
			v, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err != nil {
				return "", fmt.Errorf("invalid \\x escape: %w", err)
			}
			b.WriteByte(byte(v))
			i += 2
		case 'u':
			end := strings.IndexByte(s[i:], '}')
			if i+1 >= len(s) || s[i+1] != '{' || end < 0 {
				return "", fmt.Errorf("invalid \\u escape")
			}
			hex := strings.ReplaceAll(s[i+2:i+end], "_", "")
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil || !utf8.ValidRune(rune(v)) {
				return "", fmt.Errorf("invalid unicode escape \\u{%s}", hex)
			}
			b.WriteRune(rune(v))
			i += end
		default:
			return "", fmt.Errorf("unknown escape \\%c", s[i])
		}
	}
	return b.String(), nil
}

var intSuffixBits = map[string]int{
	"u8": 8, "u16": 16, "u32": 32, "u64": 64, "u128": 128, "usize": 64,
	"i8": 7, "i16": 15, "i32": 31, "i64": 63, "i128": 127, "isize": 63,
}

// validate rejects literals that are well-formed tokens but not valid values:
// integers that overflow their suffix type and bad character literals.
func (l *Lit) validate() error {
	switch l.Kind {
	case LitInt:
		suffix := l.Suffix()
		bits, known := intSuffixBits[suffix]
		if suffix != "" && !known {
			return fmt.Errorf("invalid suffix `%s` for number literal", suffix)
		}
		v, err := l.IntValue()
		switch {
		case err == nil:
		case !errors.Is(err, strconv.ErrRange):
			return fmt.Errorf("invalid integer literal `%s`", l.Text)
		case suffix == "" || suffix == "u128" || suffix == "i128":
			return l.validateWide(suffix)
		default:
			return fmt.Errorf("integer literal is too large")
		}
		if known && bits < 64 && v >= 1<<uint(bits) {
			return fmt.Errorf("integer literal is out of range for `%s`", suffix)
		}
	case LitFloat:
		if s := l.Suffix(); s != "" && s != "f32" && s != "f64" {
			return fmt.Errorf("invalid suffix `%s` for float literal", s)
		}
	case LitChar, LitByte:
		r, err := l.CharValue()
		if err != nil {
			return err
		}
		if l.Kind == LitByte && r > 0x7f && !strings.Contains(l.Text, `\x`) {
			return fmt.Errorf("non-ASCII character in byte literal")
		}
	case LitStr, LitByteStr:
		if _, err := l.StrValue(); err != nil {
			return err
		}
	}
	return nil
}

// validateWide checks a literal too large for 64 bits against the 128-bit
// range of its suffix; unsuffixed literals may be as wide as u128.
func (l *Lit) validateWide(suffix string) error {
	digits, base := l.radix()
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return fmt.Errorf("invalid integer literal `%s`", l.Text)
	}
	bits := 128
	if suffix == "i128" {
		bits = 127
	}
	if v.BitLen() > bits {
		if suffix == "" {
			return fmt.Errorf("integer literal is too large")
		}
		return fmt.Errorf("integer literal is out of range for `%s`", suffix)
	}
	return nil
}
