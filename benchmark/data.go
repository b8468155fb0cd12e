// Package benchmark holds comparative benchmarks for jdoc against
// other JSON manipulation libraries. It is a separate module so the
// comparison dependencies stay out of the library's go.mod.
package benchmark

import (
	"fmt"
	"strings"
)

var smallJSON = []byte(`{"name":"John","age":30,"city":"New York"}`)

var mediumJSON = []byte(`{
  "name": "John Smith",
  "age": 35,
  "address": {
    "street": "123 Main St",
    "city": "San Francisco",
    "state": "CA",
    "zip": "94103"
  },
  "phones": [
    {"type": "home", "number": "555-1234"},
    {"type": "work", "number": "555-5678"}
  ],
  "email": "john@example.com",
  "active": true,
  "scores": [95, 87, 92, 78, 85]
}`)

func generateName(i int) string {
	firstNames := []string{"Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry", "Ivy", "Jack"}
	lastNames := []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"}
	return firstNames[i%len(firstNames)] + " " + lastNames[(i*7)%len(lastNames)]
}

func generateCity(i int) string {
	cities := []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia", "San Antonio", "San Diego", "Dallas", "Austin"}
	return cities[i%len(cities)]
}

// generateLargeJSON builds a deterministic user list document of the
// given size.
func generateLargeJSON(count int) []byte {
	var b strings.Builder
	b.WriteString(`{"users":[`)
	for i := 0; i < count; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b,
			`{"id":%d,"name":"%s","email":"user%d@example.com","active":%t,"profile":{"city":"%s","score":%d.%d}}`,
			i, generateName(i), i, i%3 != 0, generateCity(i), i%100, i%10)
	}
	b.WriteString(`]}`)
	return []byte(b.String())
}
