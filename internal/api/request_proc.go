package api

import "github.com/labstack/echo/v4"

func ProcessRequest[T any](e echo.Context, req *T, steps ...func(echo.Context, *T) error) error {
	for _, step := range steps {
		if err := step(e, req); err != nil {
			return err
		}
	}
	return nil
}

func bindPathParams[T any](e echo.Context, req *T) error {
	return (&echo.DefaultBinder{}).BindPathParams(e, req)
}

// bindQueryParams binds the query string regardless of method; echo's Bind
// skips it for POST.
func bindQueryParams[T any](e echo.Context, req *T) error {
	return (&echo.DefaultBinder{}).BindQueryParams(e, req)
}
