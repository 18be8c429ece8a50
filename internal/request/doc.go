// Package request loads project requests from YAML files.
//
// A request file carries the same fields as the create command's arguments:
//
//	path: out/MyApp
//	package: com.example.myapp
//	name: My App
//	shared: false
//	cli: true
//
// Files are checked against an embedded JSON schema before decoding, so a
// typo in a key is reported instead of silently ignored.
package request
