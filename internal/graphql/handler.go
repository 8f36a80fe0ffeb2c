package graphql

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
)

// request is the standard GraphQL-over-HTTP POST body.
type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler serves the schema at a single POST endpoint. The session placed in
// the request context by the middleware travels into the resolvers via the
// execution context.
func Handler(schema graphql.Schema) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body request
		if err := c.BodyParser(&body); err != nil {
			log.Printf("Error parsing GraphQL request body: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  body.Query,
			VariableValues: body.Variables,
			OperationName:  body.OperationName,
			Context:        c.UserContext(),
		})
		return c.JSON(result)
	}
}
