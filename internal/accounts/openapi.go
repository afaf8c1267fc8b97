package accounts

import "github.com/JaimeStill/account-lab/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Create *openapi.Operation
}

// Spec contains OpenAPI operation definitions for the account endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List accounts",
		Description: "Returns a page of accounts ordered by key",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields. Prefix with - for descending", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated list of accounts", "AccountPageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Find account",
		Description: "Retrieves a single account by key",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Account key (1-9999)"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Account", "Account"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create account",
		Description: "Opens an account under the given key with a non-negative opening balance",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Account key (1-9999)"),
		},
		RequestBody: openapi.RequestBodyJSON("CreateAccountCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Account created", "Account"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Account": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"account_id":              {Type: "integer"},
				"balance_total":           {Type: "string", Description: "Decimal with two fractional digits", Example: "1500.00"},
				"last_credit_transaction": {Type: "integer"},
				"last_debit_transaction":  {Type: "integer"},
				"created_at":              {Type: "string", Format: "date-time"},
				"updated_at":              {Type: "string", Format: "date-time"},
			},
		},
		"CreateAccountCommand": {
			Type:     "object",
			Required: []string{"balance_total"},
			Properties: map[string]*openapi.Schema{
				"balance_total": {Type: "string", Description: "Opening balance as a number or numeric string", Example: "1500.00"},
			},
		},
		"AccountPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Account")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
