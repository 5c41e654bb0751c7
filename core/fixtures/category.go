package fixtures

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/donedone/dod-core/core/models"
)

//go:embed schemas/ticket.schema.json
var ticketSchemaJSON string

//go:embed schemas/merge_request.schema.json
var mergeRequestSchemaJSON string

// Category binds a fixture family to its typed predicate and JSON Schema.
// Both validators must agree for a fixture to count as valid.
type Category struct {
	Name      string
	Predicate func([]byte) models.Result
	Schema    *jsonschema.Schema
}

var compileTicketSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return compileSchema("ticket.schema.json", ticketSchemaJSON)
})

var compileMergeRequestSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return compileSchema("merge_request.schema.json", mergeRequestSchemaJSON)
})

// TicketCategory returns the category for Jira ticket fixtures.
func TicketCategory() (Category, error) {
	schema, err := compileTicketSchema()
	if err != nil {
		return Category{}, err
	}
	return Category{
		Name:      "ticket",
		Predicate: models.ValidateTicket,
		Schema:    schema,
	}, nil
}

// MergeRequestCategory returns the category for merge-request fixtures.
func MergeRequestCategory() (Category, error) {
	schema, err := compileMergeRequestSchema()
	if err != nil {
		return Category{}, err
	}
	return Category{
		Name:      "merge_request",
		Predicate: models.ValidateMergeRequest,
		Schema:    schema,
	}, nil
}

func compileSchema(name, src string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, strings.NewReader(src)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource %s: %w", name, err)
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
	}
	return schema, nil
}
