// Package factory shows the three factory shapes side by side on one
// domain, a candy shop:
//
//   - simple factory: NewCandy picks a concrete Candy from a Kind
//   - factory method: a Confectioner decides which Candy its shop sells
//   - abstract factory: a Factory produces a matching Candy and Wrapper family
//
// Abstract factories are registered by name so a family can be chosen from
// configuration.
package factory
