// Package order contains the Order aggregate and its Status state machine.
// The status chain is strictly forward and single-step:
//
//	Paid -> InPrep -> Ready -> Served
//
// Paid is set at creation (never entered by a transition) and Served is
// terminal. The aggregate validates every mutation; the application layer is
// responsible for persistence and for broadcasting committed transitions.
package order
