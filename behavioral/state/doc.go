// Package state models an order whose behaviour depends on its lifecycle
// stage. Each stage is a State value that decides which actions are legal
// and what the next stage is; the Order only delegates.
//
//	Pending --Pay--> Paid --Ship--> Shipped --Deliver--> Delivered
//	   |               |
//	   +----Cancel-----+--> Cancelled
//
// Illegal actions return a *TransitionError and leave the order unchanged.
package state
