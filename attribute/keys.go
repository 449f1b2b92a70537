package attribute

import "slices"

var edgeKeys = []string{
	"URL", "arrowhead", "arrowsize", "arrowtail", "color", "colorscheme",
	"comment", "constraint", "decorate", "dir", "edgeURL", "edgehref",
	"edgetarget", "edgetooltip", "fillcolor", "fontcolor", "fontname",
	"fontsize", "headURL", "head_lp", "headclip", "headhref", "headlabel",
	"headport", "headtarget", "headtooltip", "href", "id", "label", "labelURL",
	"labelangle", "labeldistance", "labelfloat", "labelfontcolor",
	"labelfontname", "labelfontsize", "labelhref", "labeltarget",
	"labeltooltip", "layer", "len", "lhead", "lp", "ltail", "minlen",
	"nojustify", "penwidth", "pos", "samehead", "sametail", "showboxes",
	"style", "tailURL", "tail_lp", "tailclip", "tailhref", "taillabel",
	"tailport", "tailtarget", "tailtooltip", "target", "tooltip", "weight",
	"xlabel", "xlp", "_class",
}

var nodeKeys = []string{
	"URL", "area", "color", "colorscheme", "comment", "distortion",
	"fillcolor", "fixedsize", "fontcolor", "fontname", "fontsize",
	"gradientangle", "group", "height", "href", "id", "image", "imagepos",
	"imagescale", "label", "labelloc", "layer", "margin", "nojustify",
	"ordering", "orientation", "penwidth", "peripheries", "pin", "pos",
	"rects", "regular", "root", "samplepoints", "shape", "shapefile",
	"showboxes", "sides", "skew", "sortv", "style", "target", "tooltip",
	"vertices", "width", "xlabel", "xlp", "z", "_class",
}

var rootGraphKeys = []string{
	"Damping", "K", "URL", "_background", "bb", "bgcolor", "center",
	"charset", "clusterrank", "colorscheme", "comment", "compound",
	"concentrate", "defaultdist", "dim", "dimen", "diredgeconstraints", "dpi",
	"epsilon", "esep", "fontcolor", "fontname", "fontnames", "fontpath",
	"fontsize", "forcelabels", "gradientangle", "href", "id", "imagepath",
	"inputscale", "label", "label_scheme", "labeljust", "labelloc",
	"landscape", "layerlistsep", "layers", "layerselect", "layersep",
	"layout", "levels", "levelsgap", "lheight", "lp", "lwidth", "margin",
	"maxiter", "mclimit", "mindist", "mode", "model", "mosek", "newrank",
	"nodesep", "nojustify", "normalize", "notranslate", "nslimit", "nslimit1",
	"ordering", "orientation", "outputorder", "overlap", "overlap_scaling",
	"overlap_shrink", "pack", "packmode", "pad", "page", "pagedir",
	"quadtree", "quantum", "rankdir", "ranksep", "ratio", "remincross",
	"repulsiveforce", "resolution", "root", "rotate", "rotation", "scale",
	"searchsize", "sep", "showboxes", "size", "smoothing", "sortv", "splines",
	"start", "style", "stylesheet", "target", "truecolor", "viewport",
	"voro_margin", "xdotversion", "_class",
}

var clusterKeys = []string{
	"K", "URL", "area", "bgcolor", "color", "colorscheme", "fillcolor",
	"fontcolor", "fontname", "fontsize", "gradientangle", "href", "id",
	"label", "labeljust", "labelloc", "layer", "lheight", "lp", "lwidth",
	"margin", "nojustify", "pencolor", "penwidth", "peripheries", "sortv",
	"style", "target", "tooltip", "_class",
}

var subgraphKeys = append([]string{"rank"}, clusterKeys...)

var keySets = map[Kind]map[string]bool{}

func init() {
	for _, kind := range Kinds() {
		set := make(map[string]bool)
		for _, k := range keyTable(kind) {
			set[k] = true
		}
		keySets[kind] = set
	}
}

func keyTable(kind Kind) []string {
	switch kind {
	case Node:
		return nodeKeys
	case Edge:
		return edgeKeys
	case RootGraph:
		return rootGraphKeys
	case Subgraph:
		return subgraphKeys
	case ClusterSubgraph:
		return clusterKeys
	}
	return nil
}

// Allowed reports whether key may be set on an entity of the given kind.
// Keys are case-sensitive.
func Allowed(kind Kind, key string) bool {
	return keySets[kind][key]
}

// Keys returns the permitted keys for kind in table order. The slice is a
// copy.
func Keys(kind Kind) []string {
	return slices.Clone(keyTable(kind))
}

// ValidateKey returns a *KeyError when key is not permitted for kind.
func ValidateKey(kind Kind, key string) error {
	if Allowed(kind, key) {
		return nil
	}
	return &KeyError{Kind: kind, Key: key}
}

// KindsFor returns every kind that accepts key.
func KindsFor(key string) []Kind {
	var kinds []Kind
	for _, kind := range Kinds() {
		if Allowed(kind, key) {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}
