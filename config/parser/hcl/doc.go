// Package hcl provides an HCL parser implementation for the config package.
//
// Only attribute files are accepted, such as:
//
//	name    = "app"
//	servers = [{ host = "a" }, { host = "b" }]
//
// Values are evaluated with github.com/hashicorp/hcl/v2 and converted from
// github.com/zclconf/go-cty values into tree values.
package hcl
