// Package cubiomes binds the native cubiomes library as the "cubiomes"
// engine backend. The binding is compiled only with the cubiomes build tag
// and expects the library sources in third_party/cubiomes, built with make:
//
//	go run ./cmd/fetchcubiomes
//	make -C third_party/cubiomes libcubiomes
//	go build -tags cubiomes ./...
//
// Without the tag this package is empty and importing it registers nothing.
package cubiomes
