// Package middleware provides the static-assets dispatch middleware. It sits
// in front of an arbitrary downstream handler: requests whose path is in the
// asset catalog are answered from precomputed data, everything else passes
// through untouched.
//
// The middleware follows a consistent pattern:
//   - Generic functions that accept a handler.Context type parameter
//   - A configuration struct for customization
//   - A default constructor for common use cases
//   - A WithConfig constructor for advanced configuration
//
// # Basic Usage
//
//	catalog, err := static.New("./public", static.WithPrefix("/static"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	r.Use(middleware.StaticAssets[*YourContext](catalog))
//
// # Advanced Configuration
//
//	r.Use(middleware.StaticAssetsWithConfig[*YourContext](middleware.StaticConfig{
//		Catalog: catalog,
//		Skip: func(ctx handler.Context) bool {
//			return strings.HasPrefix(ctx.Request().URL.Path, "/api/")
//		},
//	}))
//
// Hosts that speak plain net/http can use static.Handler instead; the
// dispatch semantics are identical.
package middleware
