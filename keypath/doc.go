// Package keypath turns keys into paths of segments.
//
// A key is either a delimited string or a flat sequence of segments:
//
//	"api.permissions.admin"              -> [api permissions admin]
//	[]string{"api", "permissions"}       -> [api permissions]
//	[]any{"servers", 0, "host"}          -> [servers 0 host]
//	"api..permissions."                  -> [api permissions]
//
// The delimiter is chosen when a Normalizer is created and never changes
// afterwards. Default returns the "." Normalizer.
package keypath
