// Package collections provides the sorted, duplicate-free set used as the
// collision pool for component identifiers and GUIDs.
//
// Items are kept in ascending order according to a total-order comparator,
// so enumeration is always sorted and independent of insertion order. The
// zero value of the item type is the null sentinel and is rejected by Add,
// Has and Remove.
package collections
