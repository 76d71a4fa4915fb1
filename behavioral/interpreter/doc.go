// Package interpreter evaluates arithmetic expressions over named
// variables. Parse turns text into an Expression tree; each node
// interprets itself against a Context.
//
// Grammar:
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = "-" unary | primary
//	primary = number | identifier | "(" expr ")"
package interpreter
