// Package services contains stateless domain services that coordinate rules
// spanning more than one aggregate: occupancy derivation across a table and
// its orders, and cross-waiter routing across an order and the staff
// assignments.
package services
