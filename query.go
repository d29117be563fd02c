package placid

import (
	"github.com/jmespath/go-jmespath"
)

// Query evaluates a JMESPath expression against a decoded dynamic value
// graph.
func Query(doc interface{}, expr string) (interface{}, error) {
	return jmespath.Search(expr, doc)
}

// QueryBytes decodes data dynamically and evaluates expr against the result.
func QueryBytes(data []byte, expr string) (interface{}, error) {
	return jmespath.Search(expr, Decode(data))
}
