package http

import (
	"net/http"
	"strings"

	"swiftgo/internal/core/domain/model/profile"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

const (
	// RoleHeader carries the advisory role of the caller.
	RoleHeader = "X-SwiftGo-Role"
	// HomeHeader names the view the caller's role opens by default.
	HomeHeader = "X-SwiftGo-Home"

	adminHome    = "/api/v1/dashboard"
	customerHome = "/api/v1/tracking/recent"
)

// RoleMiddleware reads RoleHeader and advertises the matching home view. It
// never rejects a request.
func RoleMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			home := customerHome
			if profile.ParseRole(c.Request().Header.Get(RoleHeader)) == profile.Admin {
				home = adminHome
			}
			c.Response().Header().Set(HomeHeader, home)
			return next(c)
		}
	}
}

// OpenAPIValidator rejects API requests that do not match doc. Paths the
// document does not describe are passed through.
func OpenAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}
	return openAPIValidator(router), nil
}

func openAPIValidator(router routers.Router) echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !strings.HasPrefix(req.URL.Path, "/api/") {
				return next(c)
			}

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
			}
			return next(c)
		}
	}
}

