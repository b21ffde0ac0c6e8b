// Package kernel contains shared domain primitives used across aggregates.
// It currently provides the UUID value object that identifies orders, staff
// members, and menu items throughout the core.
package kernel
