package httpapi

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPIVersion is the document version reported in /openapi.json.
const OpenAPIVersion = "1.0.0"

func specSchema() *openapi3.Schema {
	lazyBuilder := openapi3.NewArraySchema().
		WithItems(openapi3.NewSchema()).
		WithMinItems(1).
		WithMaxItems(2)
	lazyBuilder.Description = "[callback, args] where callback has the form <module>:<method>"

	schema := openapi3.NewObjectSchema().
		WithProperty("#lazy_builder", lazyBuilder).
		WithProperty("#create_placeholder", openapi3.NewBoolSchema()).
		WithProperty("#markup", openapi3.NewStringSchema())
	// #lazy_builder is left out of markup-only specs.
	schema.Required = []string{"#create_placeholder", "#markup"}
	return schema
}

// errorSchema matches errorResponse.
func errorSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().
		WithProperty("error", openapi3.NewStringSchema())
	schema.Required = []string{"error"}
	return schema
}

func errorBody(description string) *openapi3.Response {
	return openapi3.NewResponse().
		WithDescription(description).
		WithJSONSchema(errorSchema())
}

// OpenAPIDocument describes the routes served by Server.
func OpenAPIDocument() *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "rendercache",
			Description: "Render specifications with lazy builder placeholders.",
			Version:     OpenAPIVersion,
		},
	}

	list := openapi3.NewOperation()
	list.OperationID = "listBlocks"
	list.Summary = "List registered block names"
	list.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("Sorted block names").
		WithJSONSchema(openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())))
	doc.AddOperation("/blocks", http.MethodGet, list)

	get := openapi3.NewOperation()
	get.OperationID = "getBlock"
	get.Summary = "Build a block and return its render specification"
	get.AddParameter(nameParameter())
	get.AddParameter(openapi3.NewQueryParameter("format").
		WithSchema(openapi3.NewStringSchema().WithEnum("json", "yaml")))
	get.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("Render specification").
		WithContent(openapi3.NewContentWithSchema(specSchema(), []string{"application/json", "application/yaml"})))
	get.AddResponse(http.StatusBadRequest, errorBody("Unsupported format"))
	get.AddResponse(http.StatusNotFound, errorBody("Unknown block"))
	get.AddResponse(http.StatusInternalServerError, errorBody("Block could not be built or encoded"))
	doc.AddOperation("/blocks/{name}", http.MethodGet, get)

	preview := openapi3.NewOperation()
	preview.OperationID = "previewBlock"
	preview.Summary = "Render the placeholder preview of a block"
	preview.AddParameter(nameParameter())
	preview.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("HTML preview").
		WithContent(openapi3.NewContentWithSchema(openapi3.NewStringSchema(), []string{"text/html"})))
	preview.AddResponse(http.StatusNotFound, errorBody("Unknown block"))
	preview.AddResponse(http.StatusUnprocessableEntity, errorBody("Block built an invalid render specification"))
	preview.AddResponse(http.StatusInternalServerError, errorBody("Preview could not be rendered"))
	doc.AddOperation("/blocks/{name}/preview", http.MethodGet, preview)

	return doc
}

func nameParameter() *openapi3.Parameter {
	return openapi3.NewPathParameter("name").WithSchema(openapi3.NewStringSchema())
}
