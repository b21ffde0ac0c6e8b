// Package staff holds the role enum shared by broadcasting and the
// waiter-to-table assignments consumed by the cross-role notification router.
package staff
