package attribute

import (
	"regexp"
	"strconv"
	"strings"
)

// Shape names the syntactic form a value takes.
type Shape string

const (
	ShapeString     Shape = "string"
	ShapeEscString  Shape = "escString"
	ShapeLblString  Shape = "lblString"
	ShapeDouble     Shape = "double"
	ShapeInt        Shape = "int"
	ShapeBool       Shape = "bool"
	ShapePoint      Shape = "point"
	ShapeAddDouble  Shape = "addDouble"
	ShapeAddPoint   Shape = "addPoint"
	ShapeRect       Shape = "rect"
	ShapeColor      Shape = "color"
	ShapeColorList  Shape = "colorList"
	ShapeDoubleList Shape = "doubleList"
	ShapePointList  Shape = "pointList"
	ShapePortPos    Shape = "portPos"
	ShapeLayerRange Shape = "layerRange"
	ShapeLayerList  Shape = "layerList"
	ShapeSplineType Shape = "splineType"
	ShapeViewPort   Shape = "viewPort"
	ShapeStyle      Shape = "style"

	ShapeArrowType   Shape = "arrowType"
	ShapeClusterMode Shape = "clusterMode"
	ShapeDirType     Shape = "dirType"
	ShapeOutputMode  Shape = "outputMode"
	ShapePackMode    Shape = "packMode"
	ShapePageDir     Shape = "pagedir"
	ShapeQuadType    Shape = "quadType"
	ShapeRankType    Shape = "rankType"
	ShapeRankDir     Shape = "rankdir"
	ShapeSmoothType  Shape = "smoothType"
	ShapeNodeShape   Shape = "shape"
	ShapeStartType   Shape = "startType"
)

// Spec describes one attribute key.
type Spec struct {
	Key    string
	Shapes []Shape
	Kinds  []Kind
}

var keyShapes = map[string][]Shape{
	"_background":        {ShapeString},
	"_class":             {ShapeString},
	"area":               {ShapeDouble},
	"arrowhead":          {ShapeArrowType},
	"arrowsize":          {ShapeDouble},
	"arrowtail":          {ShapeArrowType},
	"bb":                 {ShapeRect},
	"bgcolor":            {ShapeColor, ShapeColorList},
	"center":             {ShapeBool},
	"charset":            {ShapeString},
	"clusterrank":        {ShapeClusterMode},
	"color":              {ShapeColor, ShapeColorList},
	"colorscheme":        {ShapeString},
	"comment":            {ShapeString},
	"compound":           {ShapeBool},
	"concentrate":        {ShapeBool},
	"constraint":         {ShapeBool},
	"Damping":            {ShapeDouble},
	"decorate":           {ShapeBool},
	"defaultdist":        {ShapeDouble},
	"dim":                {ShapeInt},
	"dimen":              {ShapeInt},
	"dir":                {ShapeDirType},
	"diredgeconstraints": {ShapeString, ShapeBool},
	"distortion":         {ShapeDouble},
	"dpi":                {ShapeDouble},
	"edgehref":           {ShapeEscString},
	"edgetarget":         {ShapeEscString},
	"edgetooltip":        {ShapeEscString},
	"edgeURL":            {ShapeEscString},
	"epsilon":            {ShapeDouble},
	"esep":               {ShapeAddDouble, ShapeAddPoint},
	"fillcolor":          {ShapeColor, ShapeColorList},
	"fixedsize":          {ShapeBool, ShapeString},
	"fontcolor":          {ShapeColor},
	"fontname":           {ShapeString},
	"fontnames":          {ShapeString},
	"fontpath":           {ShapeString},
	"fontsize":           {ShapeDouble},
	"forcelabels":        {ShapeBool},
	"gradientangle":      {ShapeInt},
	"group":              {ShapeString},
	"head_lp":            {ShapePoint},
	"headclip":           {ShapeBool},
	"headhref":           {ShapeEscString},
	"headlabel":          {ShapeLblString},
	"headport":           {ShapePortPos},
	"headtarget":         {ShapeEscString},
	"headtooltip":        {ShapeEscString},
	"headURL":            {ShapeEscString},
	"height":             {ShapeDouble},
	"href":               {ShapeEscString},
	"id":                 {ShapeEscString},
	"image":              {ShapeString},
	"imagepath":          {ShapeString},
	"imagepos":           {ShapeString},
	"imagescale":         {ShapeString, ShapeBool},
	"inputscale":         {ShapeDouble},
	"K":                  {ShapeDouble},
	"label":              {ShapeLblString},
	"label_scheme":       {ShapeInt},
	"labelangle":         {ShapeDouble},
	"labeldistance":      {ShapeDouble},
	"labelfloat":         {ShapeBool},
	"labelfontcolor":     {ShapeColor},
	"labelfontname":      {ShapeString},
	"labelfontsize":      {ShapeDouble},
	"labelhref":          {ShapeEscString},
	"labeljust":          {ShapeString},
	"labelloc":           {ShapeString},
	"labeltarget":        {ShapeEscString},
	"labeltooltip":       {ShapeEscString},
	"labelURL":           {ShapeEscString},
	"landscape":          {ShapeBool},
	"layer":              {ShapeLayerRange},
	"layerlistsep":       {ShapeString},
	"layers":             {ShapeLayerList},
	"layerselect":        {ShapeLayerRange},
	"layersep":           {ShapeString},
	"layout":             {ShapeString},
	"len":                {ShapeDouble},
	"levels":             {ShapeInt},
	"levelsgap":          {ShapeDouble},
	"lhead":              {ShapeString},
	"lheight":            {ShapeDouble},
	"lp":                 {ShapePoint},
	"ltail":              {ShapeString},
	"lwidth":             {ShapeDouble},
	"margin":             {ShapeDouble, ShapePoint},
	"maxiter":            {ShapeInt},
	"mclimit":            {ShapeDouble},
	"mindist":            {ShapeDouble},
	"minlen":             {ShapeInt},
	"mode":               {ShapeString},
	"model":              {ShapeString},
	"mosek":              {ShapeBool},
	"newrank":            {ShapeBool},
	"nodesep":            {ShapeDouble},
	"nojustify":          {ShapeBool},
	"normalize":          {ShapeDouble, ShapeBool},
	"notranslate":        {ShapeBool},
	"nslimit":            {ShapeDouble},
	"nslimit1":           {ShapeDouble},
	"ordering":           {ShapeString},
	"orientation":        {ShapeString, ShapeDouble},
	"outputorder":        {ShapeOutputMode},
	"overlap":            {ShapeString, ShapeBool},
	"overlap_scaling":    {ShapeDouble},
	"overlap_shrink":     {ShapeBool},
	"pack":               {ShapeBool, ShapeInt},
	"packmode":           {ShapePackMode},
	"pad":                {ShapeDouble, ShapePoint},
	"page":               {ShapeDouble, ShapePoint},
	"pagedir":            {ShapePageDir},
	"pencolor":           {ShapeColor},
	"penwidth":           {ShapeDouble},
	"peripheries":        {ShapeInt},
	"pin":                {ShapeBool},
	"pos":                {ShapePoint, ShapeSplineType},
	"quadtree":           {ShapeQuadType, ShapeBool},
	"quantum":            {ShapeDouble},
	"rank":               {ShapeRankType},
	"rankdir":            {ShapeRankDir},
	"ranksep":            {ShapeDouble, ShapeDoubleList},
	"ratio":              {ShapeDouble, ShapeString},
	"rects":              {ShapeRect},
	"regular":            {ShapeBool},
	"remincross":         {ShapeBool},
	"repulsiveforce":     {ShapeDouble},
	"resolution":         {ShapeDouble},
	"root":               {ShapeString, ShapeBool},
	"rotate":             {ShapeInt},
	"rotation":           {ShapeDouble},
	"samehead":           {ShapeString},
	"sametail":           {ShapeString},
	"samplepoints":       {ShapeInt},
	"scale":              {ShapeDouble, ShapePoint},
	"searchsize":         {ShapeInt},
	"sep":                {ShapeAddDouble, ShapeAddPoint},
	"shape":              {ShapeNodeShape},
	"shapefile":          {ShapeString},
	"showboxes":          {ShapeInt},
	"sides":              {ShapeInt},
	"size":               {ShapeDouble, ShapePoint},
	"skew":               {ShapeDouble},
	"smoothing":          {ShapeSmoothType},
	"sortv":              {ShapeInt},
	"splines":            {ShapeBool, ShapeString},
	"start":              {ShapeStartType},
	"style":              {ShapeStyle},
	"stylesheet":         {ShapeString},
	"tail_lp":            {ShapePoint},
	"tailclip":           {ShapeBool},
	"tailhref":           {ShapeEscString},
	"taillabel":          {ShapeLblString},
	"tailport":           {ShapePortPos},
	"tailtarget":         {ShapeEscString},
	"tailtooltip":        {ShapeEscString},
	"tailURL":            {ShapeEscString},
	"target":             {ShapeEscString, ShapeString},
	"tooltip":            {ShapeEscString},
	"truecolor":          {ShapeBool},
	"URL":                {ShapeEscString},
	"vertices":           {ShapePointList},
	"viewport":           {ShapeViewPort},
	"voro_margin":        {ShapeDouble},
	"weight":             {ShapeInt, ShapeDouble},
	"width":              {ShapeDouble},
	"xdotversion":        {ShapeString},
	"xlabel":             {ShapeLblString},
	"xlp":                {ShapePoint},
	"z":                  {ShapeDouble},
}

// Shapes returns the value shapes accepted by key, or nil for an unknown key.
func Shapes(key string) []Shape {
	shapes, ok := keyShapes[key]
	if !ok {
		return nil
	}
	return append([]Shape(nil), shapes...)
}

// Lookup returns everything known about key.
func Lookup(key string) (Spec, bool) {
	shapes, ok := keyShapes[key]
	if !ok {
		return Spec{}, false
	}
	return Spec{
		Key:    key,
		Shapes: append([]Shape(nil), shapes...),
		Kinds:  KindsFor(key),
	}, true
}

// AcceptsHTML reports whether key takes label strings, the only shape that
// admits an HTML-like value.
func AcceptsHTML(key string) bool {
	for _, s := range keyShapes[key] {
		if s == ShapeLblString {
			return true
		}
	}
	return false
}

// CheckValue performs a surface syntax check of value against the shapes
// key accepts. Unknown keys and free-form string shapes accept anything.
func CheckValue(key, value string) error {
	shapes, ok := keyShapes[key]
	if !ok {
		return nil
	}
	for _, s := range shapes {
		if s.Accepts(value) {
			return nil
		}
	}
	return &ValueError{Key: key, Value: value, Shapes: append([]Shape(nil), shapes...)}
}

// Accepts reports whether value has the surface syntax of s.
func (s Shape) Accepts(value string) bool {
	switch s {
	case ShapeDouble:
		return isDouble(value)
	case ShapeInt:
		return isInt(value)
	case ShapeBool:
		return isBool(value)
	case ShapePoint:
		return pointPattern.MatchString(value)
	case ShapeAddDouble:
		return isDouble(strings.TrimPrefix(value, "+"))
	case ShapeAddPoint:
		return pointPattern.MatchString(strings.TrimPrefix(value, "+"))
	case ShapeRect:
		return rectPattern.MatchString(value)
	case ShapeColor:
		return isColor(value)
	case ShapeColorList:
		return isColorList(value)
	case ShapeDoubleList:
		return isDoubleList(value)
	case ShapePointList:
		return isPointList(value)
	case ShapeStyle:
		return isStyle(value)
	case ShapeArrowType:
		return isArrowType(value)
	case ShapePackMode:
		return isPackMode(value)
	case ShapeStartType:
		return isStartType(value)
	}
	if values, ok := enumValues[s]; ok {
		return values[strings.ToLower(value)]
	}
	// string, escString, lblString, portPos, layer and spline forms are
	// free-form at the surface.
	return true
}

const number = `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`

var (
	pointPattern = regexp.MustCompile(`^` + number + `,` + number + `(?:,` + number + `)?!?$`)
	rectPattern  = regexp.MustCompile(`^` + number + `(?:,` + number + `){3}$`)
	hexColor     = regexp.MustCompile(`^#[0-9a-fA-F]{6}(?:[0-9a-fA-F]{2})?$`)
	hsvColor     = regexp.MustCompile(`^` + number + `(?:[, ]+` + number + `){2}$`)
	colorName    = regexp.MustCompile(`^(?:/?(?:[A-Za-z][A-Za-z0-9_]*/)+[A-Za-z0-9][A-Za-z0-9 _]*|[A-Za-z][A-Za-z0-9 _]*)$`)
)

func isDouble(v string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	return err == nil
}

func isInt(v string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(v))
	return err == nil
}

func isBool(v string) bool {
	switch strings.ToLower(v) {
	case "true", "false", "yes", "no":
		return true
	}
	return isInt(v)
}

func isColor(v string) bool {
	return hexColor.MatchString(v) || hsvColor.MatchString(v) || colorName.MatchString(v)
}

// isColorList accepts "color[;frac]:color[;frac]...".
func isColorList(v string) bool {
	for _, part := range strings.Split(v, ":") {
		color, frac, hasFrac := strings.Cut(part, ";")
		if !isColor(color) {
			return false
		}
		if hasFrac && !isDouble(frac) {
			return false
		}
	}
	return true
}

func isDoubleList(v string) bool {
	for _, part := range strings.Split(v, ":") {
		if !isDouble(part) {
			return false
		}
	}
	return true
}

func isPointList(v string) bool {
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if !pointPattern.MatchString(f) {
			return false
		}
	}
	return true
}

var styleNames = map[string]bool{
	"bold": true, "dashed": true, "diagonals": true, "dotted": true,
	"filled": true, "invis": true, "invisible": true, "radial": true,
	"rounded": true, "setlinewidth": true, "solid": true, "striped": true,
	"tapered": true, "wedged": true,
}

// isStyle accepts a comma-separated list of style names, each optionally
// followed by a parenthesized argument list.
func isStyle(v string) bool {
	if strings.TrimSpace(v) == "" {
		return false
	}
	for _, part := range splitStyle(v) {
		name, _, _ := strings.Cut(strings.TrimSpace(part), "(")
		if !styleNames[strings.ToLower(strings.TrimSpace(name))] {
			return false
		}
	}
	return true
}

// splitStyle splits on commas that are not inside parentheses.
func splitStyle(v string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range v {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, v[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, v[start:])
}

var arrowShapes = []string{"box", "crow", "curve", "icurve", "diamond", "dot", "inv", "none", "normal", "tee", "vee"}

var legacyArrows = map[string]bool{
	"ediamond": true, "open": true, "halfopen": true, "empty": true, "invempty": true,
}

// isArrowType accepts up to four arrow shapes, each with optional 'o' and
// 'l'/'r' modifiers, plus the legacy arrow names.
func isArrowType(v string) bool {
	v = strings.ToLower(v)
	if legacyArrows[v] {
		return true
	}
	for count := 0; v != ""; count++ {
		if count == 4 {
			return false
		}
		v = strings.TrimPrefix(v, "o")
		if strings.HasPrefix(v, "l") || strings.HasPrefix(v, "r") {
			v = v[1:]
		}
		matched := false
		for _, shape := range arrowShapes {
			if strings.HasPrefix(v, shape) {
				v = v[len(shape):]
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// isPackMode accepts node, clust, graph and array[_flags][n].
func isPackMode(v string) bool {
	v = strings.ToLower(v)
	switch v {
	case "node", "clust", "graph":
		return true
	}
	rest, ok := strings.CutPrefix(v, "array")
	if !ok {
		return false
	}
	if flags, ok := strings.CutPrefix(rest, "_"); ok {
		rest = strings.TrimLeft(flags, "ctblru")
	}
	return rest == "" || isInt(rest)
}

// isStartType accepts [regular|self|random][seed].
func isStartType(v string) bool {
	v = strings.ToLower(v)
	for _, style := range []string{"regular", "self", "random"} {
		if rest, ok := strings.CutPrefix(v, style); ok {
			v = rest
			break
		}
	}
	return v == "" || isInt(v)
}

var enumValues = map[Shape]map[string]bool{
	ShapeClusterMode: setOf("local", "global", "none"),
	ShapeDirType:     setOf("forward", "back", "both", "none"),
	ShapeOutputMode:  setOf("breadthfirst", "nodesfirst", "edgesfirst"),
	ShapePageDir:     setOf("bl", "br", "tl", "tr", "rb", "rt", "lb", "lt"),
	ShapeQuadType:    setOf("normal", "fast", "none"),
	ShapeRankType:    setOf("same", "min", "source", "max", "sink"),
	ShapeRankDir:     setOf("tb", "lr", "bt", "rl"),
	ShapeSmoothType:  setOf("none", "avg_dist", "graph_dist", "power_dist", "rng", "spring", "triangle"),
	ShapeNodeShape: setOf(
		"box", "polygon", "ellipse", "oval", "circle", "point", "egg",
		"triangle", "plaintext", "plain", "diamond", "trapezium",
		"parallelogram", "house", "pentagon", "hexagon", "septagon",
		"octagon", "doublecircle", "doubleoctagon", "tripleoctagon",
		"invtriangle", "invtrapezium", "invhouse", "mdiamond", "msquare",
		"mcircle", "rect", "rectangle", "square", "star", "none",
		"underline", "cylinder", "note", "tab", "folder", "box3d",
		"component", "promoter", "cds", "terminator", "utr", "primersite",
		"restrictionsite", "fivepoverhang", "threepoverhang", "noverhang",
		"assembly", "signature", "insulator", "ribosite", "rnastab",
		"proteasesite", "proteinstab", "rpromoter", "rarrow", "larrow",
		"lpromoter", "record", "mrecord", "epsf",
	),
}

func setOf(values ...string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}
