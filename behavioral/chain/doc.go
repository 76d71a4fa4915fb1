// Package chain passes expense requests along a chain of approvers until
// one has the authority to decide. Each handler knows only its successor.
package chain
