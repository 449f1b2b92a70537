// Package convert moves graphs between the AST and the object model.
//
// ToModel walks an AST through an ordered list of plugins. Each plugin
// declares which nodes it matches and converts them; the first match wins.
// The default plugins handle every statement kind, and callers may register
// their own ahead of them:
//
//	c := convert.NewConverter(convert.WithLogger(logger))
//	c.Register(convert.NewPlugin(matchFn, convertFn))
//	g, err := c.ToModel(dot)
//
// FromModel projects a model back to an AST that package render can print.
package convert
