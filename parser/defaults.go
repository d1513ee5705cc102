package parser

import svgdom "github.com/RazrFalcon/svgdom"

// pruneDefaults runs spec.md §4.E.5.f's mandatory preprocessor stage:
// discard any attribute whose typed value equals the SVG-defined default
// (identity transforms, empty lists, the other per-type IsDefault cases),
// so the tree Parse returns is already the Glossary's "Normalized DOM" -
// callers inspecting doc directly, not only writer.Write's output, see a
// tree with no default-valued attributes left to prune.
func pruneDefaults(doc *svgdom.Document) {
	elements := append([]*svgdom.Node{doc.Root}, doc.Root.Descendants()...)
	for _, el := range elements {
		if !el.IsElement() {
			continue
		}
		var toRemove []svgdom.QName
		for _, a := range el.Attrs.All() {
			if a.Value.IsDefault() {
				toRemove = append(toRemove, a.Name)
			}
		}
		for _, name := range toRemove {
			el.Attrs.Remove(name)
		}
	}
}
