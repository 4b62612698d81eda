// Package encode writes answer sets.
//
// # Usage
//
//	// Write an answer file
//	err := encode.WriteXML(c, os.Stdout)
//
//	// Write the JSON model, compact
//	err := encode.Encode(c, w, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true))
//
//	// Human readable listing with colors
//	err := encode.Encode(c, w, encode.EncodeFormat(format.TextFormat), encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/hdanswers/answerset/ans - the answer store
//   - github.com/hdanswers/answerset/parse - read answer sets
package encode
