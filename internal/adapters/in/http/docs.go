// Package http is the HTTP/JSON adapter of the shipping service.
//
// Server implements the generated servers.ServerInterface by calling the
// command and query handlers. NewRouter wires it into echo together with
// request validation against api/openapi.json, the Swagger UI under
// /swagger/ and the /health endpoint.
//
// Use case errors are mapped to statuses by StatusCode:
//
//	validation errors          400
//	insufficient balance       402
//	unknown order              404
//	invalid status change      409
//	anything else              500
//
// Every error body is {"code": <status>, "message": <text>}.
package http
