/*
Package search filters the lines of a text that contain a query.

Matching is plain substring containment. Returned lines are substrings of the
input, so they share its backing memory and keep the caller's contents alive
for as long as they are held.

Basic usage:

	for _, line := range search.Search("duct", contents) {
		fmt.Println(line)
	}

	match := search.For(cfg.CaseSensitive)
	lines := match(cfg.Query, contents)
*/
package search

import "strings"

// Func is the signature shared by Search and SearchCaseInsensitive.
type Func func(query, contents string) []string

// Search returns, in order, every line of contents that contains query.
// An empty query matches every line.
func Search(query, contents string) []string {
	var results []string

	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}

	return results
}

// SearchCaseInsensitive is Search with both sides lowercased for the
// comparison. Lines are returned with their original casing.
func SearchCaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)

	var results []string

	for _, line := range Lines(contents) {
		if strings.Contains(strings.ToLower(line), query) {
			results = append(results, line)
		}
	}

	return results
}

// For returns Search when caseSensitive is set and SearchCaseInsensitive otherwise.
func For(caseSensitive bool) Func {
	if caseSensitive {
		return Search
	}
	return SearchCaseInsensitive
}
