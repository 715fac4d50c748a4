package strategies

import "github.com/JaimeStill/drinkchain/pkg/openapi"

var strategyEnum = []string{"DEFAULT", "COST", "UNIQUE", "QUALITY", "CUSTOM"}

type spec struct {
	List      *openapi.Operation
	Create    *openapi.Operation
	Types     *openapi.Operation
	Active    *openapi.Operation
	Select    *openapi.Operation
	Directive *openapi.Operation
	Find      *openapi.Operation
	Delete    *openapi.Operation
	Schemas   map[string]*openapi.Schema
}

// Spec documents the strategy endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary: "List saved strategies",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSONArray("Saved strategies in insertion order", "CustomStrategy"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Save a strategy and make it active",
		RequestBody: openapi.RequestBodyJSON("CreateStrategy", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Saved strategy and resulting selection", "SavedStrategy"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Types: &openapi.Operation{
		Summary: "List strategy types with their directives",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSONArray("Strategy types", "StrategyType"),
		},
	},
	Active: &openapi.Operation{
		Summary: "Resolved active selection",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Active selection", "ActiveStrategy"),
		},
	},
	Select: &openapi.Operation{
		Summary:     "Apply a selection event",
		RequestBody: openapi.RequestBodyJSON("SelectStrategy", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Active selection", "ActiveStrategy"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Directive: &openapi.Operation{
		Summary: "Directive of the active selection",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Directive text", "Directive"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Find a saved strategy",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Saved strategy ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Saved strategy", "CustomStrategy"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete a saved strategy",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Saved strategy ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Resulting selection", "ActiveStrategy"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Schemas: map[string]*openapi.Schema{
		"CustomStrategy": openapi.Object([]string{"id", "name", "factors"}, map[string]*openapi.Schema{
			"id":      {Type: "string", Format: "uuid"},
			"name":    {Type: "string"},
			"factors": {Type: "array", Items: &openapi.Schema{Type: "string"}, Description: "Three prioritized factors; the first is never blank"},
		}),
		"CreateStrategy": openapi.Object([]string{"name", "factors"}, map[string]*openapi.Schema{
			"name":    {Type: "string"},
			"factors": {Type: "array", Items: &openapi.Schema{Type: "string"}, Description: "One to three prioritized factors"},
		}),
		"SelectStrategy": openapi.Object(nil, map[string]*openapi.Schema{
			"type":    openapi.StringEnum(strategyEnum...),
			"id":      {Type: "string", Description: "Saved strategy ID; wins when it names a saved strategy"},
			"context": {Type: "string", Description: "Ephemeral CUSTOM context"},
			"factors": {Type: "array", Items: &openapi.Schema{Type: "string"}},
		}),
		"Selection": openapi.Object([]string{"kind", "strategy"}, map[string]*openapi.Schema{
			"kind":     openapi.StringEnum("system", "saved", "ephemeral"),
			"strategy": openapi.StringEnum(strategyEnum...),
			"id":       {Type: "string"},
			"context":  {Type: "string"},
		}),
		"ActiveStrategy": openapi.Object([]string{"selection", "strategy", "directive"}, map[string]*openapi.Schema{
			"selection": openapi.SchemaRef("Selection"),
			"strategy":  openapi.StringEnum(strategyEnum...),
			"context":   {Type: "string"},
			"name":      {Type: "string"},
			"directive": {Type: "string"},
		}),
		"SavedStrategy": openapi.Object([]string{"strategy", "active"}, map[string]*openapi.Schema{
			"strategy": openapi.SchemaRef("CustomStrategy"),
			"active":   openapi.SchemaRef("ActiveStrategy"),
		}),
		"StrategyType": openapi.Object([]string{"type", "system", "directive"}, map[string]*openapi.Schema{
			"type":      openapi.StringEnum(strategyEnum...),
			"system":    {Type: "boolean"},
			"directive": {Type: "string"},
		}),
		"Directive": openapi.Object([]string{"directive"}, map[string]*openapi.Schema{
			"directive": {Type: "string"},
		}),
	},
}
