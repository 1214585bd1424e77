// Package compress precompresses a static asset tree, producing the .gz
// sibling files the static catalog serves to gzip-capable clients.
//
// It is a build/deploy-time step, not part of the request path:
//
//	if _, err := compress.Compress("./public"); err != nil {
//		log.Fatal(err)
//	}
//	catalog, err := static.New("./public")
//
// Already-compressed formats (images, fonts, archives) are skipped, and a
// variant is only kept when it is meaningfully smaller than the original.
package compress
