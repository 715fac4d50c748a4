package trends

import "github.com/JaimeStill/drinkchain/pkg/openapi"

type spec struct {
	Refresh *openapi.Operation
	Current *openapi.Operation
	Schemas map[string]*openapi.Schema
}

// Spec documents the trend endpoints.
var Spec = spec{
	Refresh: &openapi.Operation{
		Summary:     "Synthesize trends under the active lens",
		Description: "Always 200. A failed synthesis returns the recovery analysis with recovered set.",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Analysis or recovery value", "TrendResult"),
		},
	},
	Current: &openapi.Operation{
		Summary: "Latest accepted analysis",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Latest analysis", "TrendResult"),
			204: {Description: "No analysis yet"},
		},
	},
	Schemas: map[string]*openapi.Schema{
		"DataSource": openapi.Object([]string{"type", "name"}, map[string]*openapi.Schema{
			"type":    openapi.StringEnum("WEB", "DB", "AI"),
			"name":    {Type: "string"},
			"factors": {Type: "array", Items: &openapi.Schema{Type: "string"}, Description: "AI sources only"},
		}),
		"TrendItem": openapi.Object(
			[]string{"id", "title", "description", "growthRate", "category", "source"},
			map[string]*openapi.Schema{
				"id":          {Type: "string"},
				"title":       {Type: "string"},
				"description": {Type: "string"},
				"growthRate":  {Type: "string", Example: "+15%"},
				"category":    {Type: "string"},
				"imageUrl":    {Type: "string"},
				"source":      openapi.SchemaRef("DataSource"),
			},
		),
		"TrendAnalysis": openapi.Object(
			[]string{"marketAnalysis", "strategicConclusion", "source", "items"},
			map[string]*openapi.Schema{
				"marketAnalysis":      {Type: "string"},
				"strategicConclusion": {Type: "string"},
				"source":              openapi.SchemaRef("DataSource"),
				"items":               openapi.ArrayOf("TrendItem"),
				"warnings":            {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		),
		"TrendResult": openapi.Object([]string{"directive", "analysis", "recovered"}, map[string]*openapi.Schema{
			"directive": {Type: "string"},
			"analysis":  openapi.SchemaRef("TrendAnalysis"),
			"recovered": {Type: "boolean"},
			"stale":     {Type: "boolean", Description: "A newer refresh superseded this one"},
		}),
	},
}
