// Package wkt holds the text grammar shared by every geometry literal:
//
//	KEYWORD ( NUM NUM , NUM NUM , ... )
//	KEYWORD (( NUM NUM , ... ))
//	KEYWORD EMPTY
//
// Keywords are case-insensitive and whitespace inside the parentheses is free.
package wkt

import (
	"math"
	"strconv"
	"strings"
)

// Literal is one decoded geometry literal.
type Literal struct {
	Keyword string
	// Empty is set for the "KEYWORD EMPTY" form, which has no vertices.
	Empty bool
	// Ring is set when the vertex list was wrapped in a second pair of
	// parentheses, as polygons are.
	Ring     bool
	Vertices [][2]float64
	// Decimals is the largest number of significant decimal places seen in
	// any coordinate token.
	Decimals int
}

// Parse decodes text without checking its keyword.
func Parse(text string) (lit Literal, err error) {
	defer func() {
		recoveredErr := HandleSyntaxPanicRecover(recover())
		if recoveredErr != nil {
			lit = Literal{}
			err = recoveredErr
		}
	}()
	return parse(text), nil
}

// Expect decodes text and checks that its keyword is keyword and that it has
// exactly n vertices. A negative n accepts any vertex count of at least -n.
func Expect(text, keyword string, n int) (lit Literal, err error) {
	defer func() {
		recoveredErr := HandleSyntaxPanicRecover(recover())
		if recoveredErr != nil {
			lit = Literal{}
			err = recoveredErr
		}
	}()
	lit = parse(text)
	if lit.Keyword != keyword {
		fatalf("keyword %q is not %s", lit.Keyword, keyword)
	}
	if lit.Empty {
		return lit, nil
	}
	count := len(lit.Vertices)
	switch {
	case n >= 0 && count != n:
		fatalf("%s needs %d vertices, got %d", keyword, n, count)
	case n < 0 && count < -n:
		fatalf("%s needs at least %d vertices, got %d", keyword, -n, count)
	}
	return lit, nil
}

func parse(text string) Literal {
	open := strings.IndexByte(text, '(')
	if open < 0 {
		if keyword, ok := emptyKeyword(text); ok {
			return Literal{Keyword: keyword, Empty: true}
		}
		fatalf("missing '('")
	}

	keyword := strings.ToUpper(strings.TrimSpace(text[:open]))
	if keyword == "" {
		fatalf("missing keyword")
	}
	if strings.ContainsAny(keyword, " \t\r\n") {
		fatalf("malformed keyword %q", keyword)
	}

	end := matchingParen(text, open)
	if rest := strings.TrimSpace(text[end+1:]); rest != "" {
		fatalf("unexpected %q after ')'", rest)
	}

	lit := Literal{Keyword: keyword}
	body := strings.TrimSpace(text[open+1 : end])
	if strings.HasPrefix(body, "(") {
		if !strings.HasSuffix(body, ")") {
			fatalf("unterminated ring")
		}
		lit.Ring = true
		body = body[1 : len(body)-1]
	}
	if strings.ContainsAny(body, "()") {
		fatalf("only a single ring is supported")
	}

	for _, vertex := range strings.Split(body, ",") {
		lit.Vertices = append(lit.Vertices, lit.parseVertex(vertex))
	}
	return lit
}

func (lit *Literal) parseVertex(vertex string) [2]float64 {
	fields := strings.Fields(vertex)
	if len(fields) != 2 {
		fatalf("vertex %q has %d numbers, want 2", strings.TrimSpace(vertex), len(fields))
	}
	var xy [2]float64
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			fatalf("invalid number %q", field)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			fatalf("non-finite number %q", field)
		}
		xy[i] = v
		if d := decimalPlaces(field); d > lit.Decimals {
			lit.Decimals = d
		}
	}
	return xy
}

func emptyKeyword(text string) (string, bool) {
	fields := strings.Fields(strings.ToUpper(text))
	if len(fields) == 2 && fields[1] == "EMPTY" {
		return fields[0], true
	}
	return "", false
}

// Index of the ')' closing the '(' at open.
func matchingParen(text string, open int) int {
	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	fatalf("missing ')'")
	return -1
}

// Trailing zeros don't count: "1.500" has one decimal place.
func decimalPlaces(token string) int {
	if strings.ContainsAny(token, "eE") {
		v, _ := strconv.ParseFloat(token, 64)
		token = strconv.FormatFloat(v, 'f', -1, 64)
	}
	dot := strings.IndexByte(token, '.')
	if dot < 0 {
		return 0
	}
	return len(strings.TrimRight(token[dot+1:], "0"))
}
