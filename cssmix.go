// Package cssmix provides the gradient helpers of a stylesheet mixin library
// as Go functions, plus a stylesheet expander built on them.
//
// # Gradients
//
// A linear gradient is emitted in three forms: a flat fallback colour, a
// prefixed legacy gradient and the modern declaration:
//
//	decl, err := cssmix.LinearGradient(
//		cssmix.KeywordDirection(cssmix.ToRight),
//		cssmix.ColorStop{Color: "#E47D7D", Position: "0%"},
//		cssmix.ColorStop{Color: "#4FB4E8", Position: "100%"},
//	)
//	// decl.Fallback: #E47D7D
//	// decl.Legacy:   -webkit-linear-gradient(left, #E47D7D 0%, #4FB4E8 100%)
//	// decl.Modern:   linear-gradient(to right, #E47D7D 0%, #4FB4E8 100%)
//
// Passing a ColorStop as the first argument omits the direction, which then
// defaults to 180deg.
//
// # Stylesheets
//
// Expand rewrites every single-line background or background-image
// declaration that uses linear-gradient() into the three-declaration form:
//
//	result, err := cssmix.Expand(ctx, cssmix.Config{
//		SourceDir: "web/styles",
//		OutputDir: "public/css",
//		Includes:  []string{"**/*.css"},
//	})
//
// Check runs the same scan without writing and reports bad gradients as
// issues.
//
// # CLI Tool
//
//	go install github.com/yacobolo/cssmix/cmd/cssmix@latest
package cssmix
