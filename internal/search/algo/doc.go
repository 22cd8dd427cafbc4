// Package algo provides the search strategies. Each strategy registers
// itself with the registry from init(); import the package for its side
// effect to make them available by name.
package algo
