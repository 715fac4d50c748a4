package supply

import "github.com/JaimeStill/drinkchain/pkg/openapi"

type spec struct {
	List    *openapi.Operation
	Publish *openapi.Operation
	Refresh *openapi.Operation
	Schemas map[string]*openapi.Schema
}

func itemProperties() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"id":          {Type: "string"},
		"type":        openapi.StringEnum("SUPPLY", "DEMAND"),
		"product":     {Type: "string"},
		"companyName": {Type: "string"},
		"price":       {Type: "string", Example: "¥25/kg"},
		"location":    {Type: "string"},
		"verified":    {Type: "boolean"},
		"createdAt":   {Type: "string", Format: "date-time"},
		"expiresAt":   {Type: "string", Format: "date-time"},
	}
}

var itemRequired = []string{"id", "type", "product", "companyName", "price", "location", "verified", "createdAt", "expiresAt"}

func entrySchema() *openapi.Schema {
	props := itemProperties()
	props["remainingDays"] = &openapi.Schema{Type: "integer"}
	return openapi.Object(append(itemRequired, "remainingDays"), props)
}

// TypeFilterParam is the listing type query parameter.
var TypeFilterParam = openapi.QueryParam("type", "string", "ALL (default), SUPPLY or DEMAND", false)

// CategoryParam is the synthesis category query parameter.
var CategoryParam = openapi.QueryParam("category", "string", "Listing category (default: general)", false)

// Spec documents the supply board endpoints.
// Zero selects DefaultValidityDays.
var minValidity, maxValidity float64 = 0, MaxValidityDays

var Spec = spec{
	List: &openapi.Operation{
		Summary:    "List visible listings",
		Parameters: []*openapi.Parameter{TypeFilterParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSONArray("Unexpired listings", "SupplyEntry"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Publish: &openapi.Operation{
		Summary:     "Publish a listing",
		RequestBody: openapi.RequestBodyJSON("PublishListing", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Published listing", "SupplyItem"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Refresh: &openapi.Operation{
		Summary:    "Synthesize a listing batch",
		Parameters: []*openapi.Parameter{CategoryParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Synthesized batch", "SupplyBatch"),
		},
	},
	Schemas: map[string]*openapi.Schema{
		"SupplyItem":  openapi.Object(itemRequired, itemProperties()),
		"SupplyEntry": entrySchema(),
		"SupplyBatch": openapi.Object([]string{"category", "directive", "items", "recovered"}, map[string]*openapi.Schema{
			"category":  {Type: "string"},
			"directive": {Type: "string"},
			"items":     openapi.ArrayOf("SupplyItem"),
			"recovered": {Type: "boolean"},
			"stale":     {Type: "boolean", Description: "A newer refresh superseded this one"},
		}),
		"PublishListing": openapi.Object([]string{"type", "product", "companyName", "price", "location"}, map[string]*openapi.Schema{
			"type":         openapi.StringEnum("SUPPLY", "DEMAND"),
			"product":      {Type: "string"},
			"companyName":  {Type: "string"},
			"price":        {Type: "string"},
			"location":     {Type: "string"},
			"validityDays": {Type: "integer", Default: 7, Minimum: &minValidity, Maximum: &maxValidity},
		}),
	},
}
