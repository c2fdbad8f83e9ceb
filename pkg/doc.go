// Package pkg provides the core libraries for noticegen.
//
// # Overview
//
// noticegen collects third-party license notices for Cargo projects. The
// pkg directory is organized by concern:
//
//   - [manifest] - Cargo.toml reading (root package identification)
//   - [cargo] - `cargo metadata` invocation and output decoding
//   - [notice] - License resolution and NOTICE document assembly
//   - [github] - Remote license lookup through repository pages
//   - [httputil] - HTTP response caching and retry
//   - [errors] - Structured error codes
//   - [buildinfo] - Build-time version information
//
// # Data Flow
//
//	Cargo.toml ──► manifest.Load (root package name)
//	                    │
//	cargo metadata ──► cargo.Metadata (resolved package list)
//	                    │
//	               notice.Generator (filter root, resolve licenses
//	                    │            concurrently: local files, then
//	                    │            github.Client, then attribution)
//	                    ▼
//	               NOTICE file
//
// # Quick Start
//
//	gen := notice.NewGenerator(cargo.Metadata, remote)
//	out, err := gen.Run(ctx, notice.Options{Dir: "."})
//
// [manifest]: https://pkg.go.dev/github.com/matzehuels/noticegen/pkg/manifest
// [cargo]: https://pkg.go.dev/github.com/matzehuels/noticegen/pkg/cargo
// [notice]: https://pkg.go.dev/github.com/matzehuels/noticegen/pkg/notice
// [github]: https://pkg.go.dev/github.com/matzehuels/noticegen/pkg/github
// [httputil]: https://pkg.go.dev/github.com/matzehuels/noticegen/pkg/httputil
// [errors]: https://pkg.go.dev/github.com/matzehuels/noticegen/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/noticegen/pkg/buildinfo
package pkg
