// Package main provides the entry point for the airbasectl CLI.
//
// airbasectl materializes full collections from a paginated Airbase base
// and renders them as tables.
//
// Usage:
//
//	airbasectl fetch scorer
//	airbasectl kinds
//	airbasectl invalidate --session user@example.com
//
// See --help for all available options.
package main

// main is the entry point for airbasectl.
func main() {
	Execute()
}
