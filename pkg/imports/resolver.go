// Package imports rewrites contract import placeholders in cadence templates.
//
// A placeholder has the literal form
//
//	{{ import "ArenaToken" }}
//
// and is replaced with a fully qualified import pointing at the deployed address:
//
//	import "ArenaToken" from 0xf8d6e0586b0a20c7
//
// Matching is plain string replacement. Nothing is parsed, escaped or expanded recursively.
package imports

import (
	"fmt"
	"regexp"
	"strings"
)

// Contract pairs a contract name with the address it is deployed to
type Contract struct {
	Name    string
	Address string
}

// Mapping is an ordered list of contracts to resolve. Names must be unique.
type Mapping []Contract

// Placeholder returns the literal placeholder used for the named contract
func Placeholder(name string) string {
	return fmt.Sprintf(`{{ import "%s" }}`, name)
}

// Statement returns the import statement a placeholder is replaced with
func Statement(name, address string) string {
	return fmt.Sprintf(`import "%s" from %s`, name, NormalizeAddress(address))
}

// NormalizeAddress ensures address has 0x prefix
func NormalizeAddress(address string) string {
	if strings.HasPrefix(address, "0x") {
		return address
	}
	return "0x" + address
}

// Resolve replaces every placeholder that has an entry in mapping.
// Entries without a placeholder in template are ignored, and placeholders
// for names missing from mapping are left as they are.
func Resolve(template string, mapping Mapping) string {
	for _, c := range mapping {
		template = strings.ReplaceAll(template, Placeholder(c.Name), Statement(c.Name, c.Address))
	}
	return template
}

var placeholderPattern = regexp.MustCompile(`\{\{ import "([^"]*)" \}\}`)

// Unresolved lists the contract names of placeholders still present in template,
// in order of first appearance
func Unresolved(template string) []string {
	seen := map[string]bool{}
	names := []string{}
	for _, m := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		names = append(names, m[1])
	}
	return names
}
