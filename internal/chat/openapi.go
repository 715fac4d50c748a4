package chat

import "github.com/JaimeStill/drinkchain/pkg/openapi"

type spec struct {
	Open    *openapi.Operation
	Find    *openapi.Operation
	Send    *openapi.Operation
	Schemas map[string]*openapi.Schema
}

// Spec documents the advisor session endpoints.
var Spec = spec{
	Open: &openapi.Operation{
		Summary: "Open an advisor session",
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("New session seeded with the greeting", "ChatSession"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Session transcript",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Session ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Session", "ChatSession"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Send: &openapi.Operation{
		Summary:     "Send a message",
		Description: "Backend failures reply with the apology message. A send while a reply is pending is rejected.",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Session ID")},
		RequestBody: openapi.RequestBodyJSON("SendMessage", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Advisor reply", "ChatMessage"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Schemas: map[string]*openapi.Schema{
		"ChatMessage": openapi.Object([]string{"id", "role", "text", "timestamp"}, map[string]*openapi.Schema{
			"id":        {Type: "string"},
			"role":      openapi.StringEnum("user", "model"),
			"text":      {Type: "string"},
			"timestamp": {Type: "string", Format: "date-time"},
		}),
		"ChatSession": openapi.Object([]string{"id", "awaiting", "transcript"}, map[string]*openapi.Schema{
			"id":         {Type: "string", Format: "uuid"},
			"awaiting":   {Type: "boolean"},
			"transcript": openapi.ArrayOf("ChatMessage"),
		}),
		"SendMessage": openapi.Object([]string{"text"}, map[string]*openapi.Schema{
			"text": {Type: "string"},
		}),
	},
}
