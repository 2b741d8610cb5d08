package lisp

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

func ParseFile(filename string) ([]Expression, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Multiparse(string(b))
}

// Multiparse reads every top-level expression in program.
func Multiparse(program string) ([]Expression, error) {
	tokens := Tokenize(program)
	list := []Expression{}
	for len(tokens) > 0 {
		e, rest, err := Parse(tokens)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
		tokens = rest
	}
	return list, nil
}

func Tokenize(s string) []string {
	s = strings.ReplaceAll(s, "(", " ( ")
	s = strings.ReplaceAll(s, ")", " ) ")
	return strings.Fields(s)
}

// Parse reads one expression from the front of tokens and returns it
// together with the tokens it did not consume.
func Parse(tokens []string) (Expression, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, parseErrorf("unexpected end of input")
	}
	token := tokens[0]
	tokens = tokens[1:]
	switch token {
	case "(":
		list := List{}
		for {
			if len(tokens) == 0 {
				return nil, nil, parseErrorf("missing ')'")
			}
			if tokens[0] == ")" {
				return list, tokens[1:], nil
			}
			e, rest, err := Parse(tokens)
			if err != nil {
				return nil, nil, err
			}
			list = append(list, e)
			tokens = rest
		}
	case ")":
		return nil, nil, parseErrorf("unexpected ')'")
	default:
		return atom(token), tokens, nil
	}
}

func atom(token string) Expression {
	switch token {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	// overflowing tokens parse to ±Inf together with ErrRange
	if n, err := strconv.ParseFloat(token, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return Number(n)
	}
	return Symbol(token)
}

func mustParse(program string) Expression {
	e, _, err := Parse(Tokenize(program))
	if err != nil {
		panic(err)
	}
	return e
}
