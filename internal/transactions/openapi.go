package transactions

import "github.com/JaimeStill/account-lab/pkg/openapi"

type spec struct {
	Create  *openapi.Operation
	List    *openapi.Operation
	Process *openapi.Operation
}

var accountParam = openapi.PathParam("id", "Account key (1-9999)")

// Spec contains OpenAPI operation definitions for the transaction endpoints.
var Spec = spec{
	Create: &openapi.Operation{
		Summary:     "Create transaction",
		Description: "Records a pending transfer from the account to destination_id",
		Parameters:  []*openapi.Parameter{accountParam},
		RequestBody: openapi.RequestBodyJSON("CreateTransactionCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Transaction created", "Transaction"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
	List: &openapi.Operation{
		Summary:     "List transactions",
		Description: "Returns up to 10 credit or debit transactions of the account with ids above start",
		Parameters: []*openapi.Parameter{
			accountParam,
			{
				Name:     "type",
				In:       "query",
				Required: true,
				Schema:   &openapi.Schema{Type: "string", Enum: []string{string(TypeCredit), string(TypeDebit)}},
			},
			openapi.QueryParam("start", "integer", "Return transactions with ids greater than this value", false),
		},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Transactions in ascending id order",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("Transaction")}},
				},
			},
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
	Process: &openapi.Operation{
		Summary:     "Process transactions",
		Description: "Settles the account's pending debits in id order; debits the balance cannot cover are rejected",
		Parameters:  []*openapi.Parameter{accountParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Settlement summary, empty object for unknown accounts", "ProcessResult"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Transaction": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"transaction_id": {Type: "integer"},
				"source_id":      {Type: "integer"},
				"destination_id": {Type: "integer"},
				"amount":         {Type: "string", Example: "25.00"},
				"status":         {Type: "string", Enum: []string{string(StatusPending), string(StatusProcessed), string(StatusRejected)}},
				"created_at":     {Type: "string", Format: "date-time"},
				"processed_at":   {Type: "string", Format: "date-time"},
			},
		},
		"CreateTransactionCommand": {
			Type:     "object",
			Required: []string{"destination_id", "amount"},
			Properties: map[string]*openapi.Schema{
				"destination_id": {Type: "integer"},
				"amount":         {Type: "string", Description: "Positive amount as a number or numeric string", Example: "25.00"},
			},
		},
		"ProcessResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"account_id":    {Type: "integer"},
				"balance_total": {Type: "string"},
				"processed":     {Type: "array", Items: &openapi.Schema{Type: "integer"}},
				"rejected":      {Type: "array", Items: &openapi.Schema{Type: "integer"}},
			},
		},
	}
}
