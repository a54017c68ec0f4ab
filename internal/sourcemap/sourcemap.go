package sourcemap

import (
	"bytes"
	"encoding/json"
	"path"
	"sort"
	"strings"

	"github.com/webcarrot/tsemit/internal/errors"
	"github.com/webcarrot/tsemit/internal/helpers"
)

// Specification: https://sourcemaps.info/spec.html

type Mapping struct {
	GeneratedLine   int32 // 0-based
	GeneratedColumn int32 // 0-based count of UTF-16 code units

	SourceIndex    int32 // 0-based
	OriginalLine   int32 // 0-based
	OriginalColumn int32 // 0-based count of UTF-16 code units
	OriginalName   int32 // 0-based, or -1 if there is no name
}

type SourceMap struct {
	File           string
	SourceRoot     string
	Sources        []string
	SourcesContent []*string
	Names          []string
	Mappings       []Mapping
}

func (sm *SourceMap) Find(line int32, column int32) *Mapping {
	mappings := sm.Mappings

	// Binary search
	count := len(mappings)
	index := 0
	for count > 0 {
		step := count / 2
		i := index + step
		mapping := mappings[i]
		if mapping.GeneratedLine < line || (mapping.GeneratedLine == line && mapping.GeneratedColumn <= column) {
			index = i + 1
			count -= step + 1
		} else {
			count = step
		}
	}

	// Handle search failure
	if index > 0 {
		mapping := &mappings[index-1]

		// Match the behavior of the popular "source-map" library from Mozilla
		if mapping.GeneratedLine == line {
			return mapping
		}
	}
	return nil
}

var base64 = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/")

// A single base 64 digit can contain 6 bits of data. For the base 64 variable
// length quantities we use in the source map spec, the first bit is the sign,
// the next four bits are the actual value, and the 6th bit is the continuation
// bit. The continuation bit tells us whether there are more digits in this
// value following this digit.
//
//	Continuation
//	|    Sign
//	|    |
//	V    V
//	101011
func encodeVLQ(encoded []byte, value int) []byte {
	var vlq int
	if value < 0 {
		vlq = ((-value) << 1) | 1
	} else {
		vlq = value << 1
	}

	// Handle the common case
	if (vlq >> 5) == 0 {
		digit := vlq & 31
		encoded = append(encoded, base64[digit])
		return encoded
	}

	for {
		digit := vlq & 31
		vlq >>= 5

		// If there are still more digits in this value, we must make sure the
		// continuation bit is marked
		if vlq != 0 {
			digit |= 32
		}

		encoded = append(encoded, base64[digit])

		if vlq == 0 {
			break
		}
	}

	return encoded
}

// DecodeVLQ returns the value and the number of bytes consumed, or false if
// the input does not start with a complete value.
func DecodeVLQ(encoded string) (int, int, bool) {
	n := len(encoded)
	current := 0
	shift := 0
	vlq := 0

	for {
		if current >= n {
			return 0, 0, false
		}
		index := bytes.IndexByte(base64, encoded[current])
		if index < 0 {
			return 0, 0, false
		}

		// Decode a single byte
		vlq |= (index & 31) << shift
		current++
		shift += 5

		// Stop if there's no continuation bit
		if (index & 32) == 0 {
			break
		}
	}

	// Recover the value
	value := vlq >> 1
	if (vlq & 1) != 0 {
		value = -value
	}
	return value, current, true
}

// DecodeMappings parses the "mappings" field of a source map.
func DecodeMappings(mappingsRaw string, sourcesLen int, namesLen int) ([]Mapping, error) {
	var mappings mappingArray
	mappingsLen := len(mappingsRaw)
	generatedLine := 0
	generatedColumn := 0
	sourceIndex := 0
	originalLine := 0
	originalColumn := 0
	originalName := 0
	current := 0
	needSort := false

	for current < mappingsLen {
		// Handle a line break
		if mappingsRaw[current] == ';' {
			generatedLine++
			generatedColumn = 0
			current++
			continue
		}

		// Read the generated column
		generatedColumnDelta, i, ok := DecodeVLQ(mappingsRaw[current:])
		if !ok {
			return nil, errors.Newf("missing generated column at character %d", current)
		}
		if generatedColumnDelta < 0 {
			// This would mess up binary search
			needSort = true
		}
		generatedColumn += generatedColumnDelta
		if generatedColumn < 0 {
			return nil, errors.Newf("invalid generated column value %d at character %d", generatedColumn, current)
		}
		current += i

		// According to the specification, it's valid for a mapping to have 1,
		// 4, or 5 variable-length fields. Having one field means there's no
		// original location information, which is pretty useless. Just ignore
		// those entries.
		if current == mappingsLen {
			break
		}
		switch mappingsRaw[current] {
		case ',':
			current++
			continue
		case ';':
			continue
		}

		// Read the original source
		sourceIndexDelta, i, ok := DecodeVLQ(mappingsRaw[current:])
		if !ok {
			return nil, errors.Newf("missing source index at character %d", current)
		}
		sourceIndex += sourceIndexDelta
		if sourceIndex < 0 || sourceIndex >= sourcesLen {
			return nil, errors.Newf("invalid source index value %d at character %d", sourceIndex, current)
		}
		current += i

		// Read the original line
		originalLineDelta, i, ok := DecodeVLQ(mappingsRaw[current:])
		if !ok {
			return nil, errors.Newf("missing original line at character %d", current)
		}
		originalLine += originalLineDelta
		if originalLine < 0 {
			return nil, errors.Newf("invalid original line value %d at character %d", originalLine, current)
		}
		current += i

		// Read the original column
		originalColumnDelta, i, ok := DecodeVLQ(mappingsRaw[current:])
		if !ok {
			return nil, errors.Newf("missing original column at character %d", current)
		}
		originalColumn += originalColumnDelta
		if originalColumn < 0 {
			return nil, errors.Newf("invalid original column value %d at character %d", originalColumn, current)
		}
		current += i

		// Read the optional name index
		name := int32(-1)
		if current < mappingsLen && mappingsRaw[current] != ',' && mappingsRaw[current] != ';' {
			originalNameDelta, i, ok := DecodeVLQ(mappingsRaw[current:])
			if !ok {
				return nil, errors.Newf("invalid name index at character %d", current)
			}
			originalName += originalNameDelta
			if originalName < 0 || originalName >= namesLen {
				return nil, errors.Newf("invalid name index value %d at character %d", originalName, current)
			}
			name = int32(originalName)
			current += i
		}

		// Handle the next character
		if current < mappingsLen {
			if c := mappingsRaw[current]; c == ',' {
				current++
			} else if c != ';' {
				return nil, errors.Newf("invalid character %q after mapping at character %d", c, current)
			}
		}

		mappings = append(mappings, Mapping{
			GeneratedLine:   int32(generatedLine),
			GeneratedColumn: int32(generatedColumn),
			SourceIndex:     int32(sourceIndex),
			OriginalLine:    int32(originalLine),
			OriginalColumn:  int32(originalColumn),
			OriginalName:    name,
		})
	}

	if needSort {
		// Lines can't be out of order by construction but columns can
		sort.Stable(mappings)
	}
	return mappings, nil
}

// This type is just so we can use Go's native sort function
type mappingArray []Mapping

func (a mappingArray) Len() int          { return len(a) }
func (a mappingArray) Swap(i int, j int) { a[i], a[j] = a[j], a[i] }

func (a mappingArray) Less(i int, j int) bool {
	ai := a[i]
	aj := a[j]
	return ai.GeneratedLine < aj.GeneratedLine || (ai.GeneratedLine == aj.GeneratedLine && ai.GeneratedColumn < aj.GeneratedColumn)
}

type rawSourceMap struct {
	Version        int       `json:"version"`
	File           string    `json:"file"`
	SourceRoot     string    `json:"sourceRoot"`
	Sources        []string  `json:"sources"`
	SourcesContent []*string `json:"sourcesContent"`
	Names          []string  `json:"names"`
	Mappings       string    `json:"mappings"`
	Sections       []any     `json:"sections"`
}

// Parse decodes a version 3 source map. Index maps with "sections" are not
// supported.
func Parse(text string) (*SourceMap, error) {
	var raw rawSourceMap
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, errors.Wrap(err, "invalid source map")
	}
	if raw.Sections != nil {
		return nil, errors.New("source maps with \"sections\" are not supported")
	}
	if raw.Version != 3 {
		return nil, errors.Newf("unsupported source map version %d", raw.Version)
	}
	mappings, err := DecodeMappings(raw.Mappings, len(raw.Sources), len(raw.Names))
	if err != nil {
		return nil, errors.Wrap(err, "bad \"mappings\" data in source map")
	}
	return &SourceMap{
		File:           raw.File,
		SourceRoot:     raw.SourceRoot,
		Sources:        raw.Sources,
		SourcesContent: raw.SourcesContent,
		Names:          raw.Names,
		Mappings:       mappings,
	}, nil
}

type Options struct {
	// The "file" field
	File string

	// The "sourceRoot" field
	SourceRoot string

	// Source names are written relative to this directory when it is set
	SourcesDirectory string
}

// Generator builds a source map while the output is being written. Mappings
// must be added in non-decreasing order of generated position. A mapping at
// the same generated position as the previous one replaces it unless it
// moves backwards in the original source.
type Generator struct {
	options Options

	sources        []string
	sourceToIndex  map[string]int
	sourcesContent []*string
	names          []string
	nameToIndex    map[string]int

	mappings []byte
	entries  []Mapping

	// The last committed mapping, which the next one is encoded relative to
	last         Mapping
	hasLast      bool
	lastNameEver int32

	pending          Mapping
	hasPending       bool
	hasPendingSource bool
	pendingCommitted bool
}

func NewGenerator(options Options) *Generator {
	return &Generator{
		options:       options,
		sourceToIndex: make(map[string]int),
		nameToIndex:   make(map[string]int),
	}
}

func (g *Generator) sourceName(fileName string) string {
	dir := g.options.SourcesDirectory
	if dir == "" {
		return fileName
	}
	fileName = strings.ReplaceAll(fileName, "\\", "/")
	dir = strings.TrimSuffix(strings.ReplaceAll(dir, "\\", "/"), "/")
	if !path.IsAbs(fileName) || !path.IsAbs(dir) {
		return fileName
	}
	return relativePath(dir, fileName)
}

// relativePath returns "target" relative to the directory "base". Both paths
// must be absolute and use forward slashes.
func relativePath(base string, target string) string {
	baseParts := strings.Split(strings.Trim(path.Clean(base), "/"), "/")
	targetParts := strings.Split(strings.Trim(path.Clean(target), "/"), "/")
	if len(baseParts) == 1 && baseParts[0] == "" {
		baseParts = nil
	}
	common := 0
	for common < len(baseParts) && common < len(targetParts)-1 && baseParts[common] == targetParts[common] {
		common++
	}
	sb := strings.Builder{}
	for i := common; i < len(baseParts); i++ {
		sb.WriteString("../")
	}
	sb.WriteString(strings.Join(targetParts[common:], "/"))
	return sb.String()
}

// AddSource returns the index of the source, adding it on first use.
func (g *Generator) AddSource(fileName string) int {
	name := g.sourceName(fileName)
	if index, ok := g.sourceToIndex[name]; ok {
		return index
	}
	index := len(g.sources)
	g.sources = append(g.sources, name)
	g.sourceToIndex[name] = index
	return index
}

func (g *Generator) SetSourceContent(sourceIndex int, content *string) {
	for len(g.sourcesContent) <= sourceIndex {
		g.sourcesContent = append(g.sourcesContent, nil)
	}
	g.sourcesContent[sourceIndex] = content
}

func (g *Generator) AddName(name string) int {
	if index, ok := g.nameToIndex[name]; ok {
		return index
	}
	index := len(g.names)
	g.names = append(g.names, name)
	g.nameToIndex[name] = index
	return index
}

func (g *Generator) Sources() []string {
	return g.sources
}

// AddMapping records that the output at (generatedLine, generatedColumn)
// came from (originalLine, originalColumn) in the given source. A nameIndex
// of -1 means there is no name.
func (g *Generator) AddMapping(generatedLine int, generatedColumn int, sourceIndex int, originalLine int, originalColumn int, nameIndex int) {
	if g.hasPending && (generatedLine < int(g.pending.GeneratedLine) ||
		(generatedLine == int(g.pending.GeneratedLine) && generatedColumn < int(g.pending.GeneratedColumn))) {
		panic("Internal error: source map mappings must not go backwards")
	}
	if generatedColumn < 0 || sourceIndex < 0 || originalLine < 0 || originalColumn < 0 {
		panic("Internal error: source map positions must not be negative")
	}

	isNewGeneratedPosition := !g.hasPending ||
		int(g.pending.GeneratedLine) != generatedLine ||
		int(g.pending.GeneratedColumn) != generatedColumn
	isBacktrackingSourcePosition := g.hasPendingSource &&
		int(g.pending.SourceIndex) == sourceIndex &&
		(int(g.pending.OriginalLine) > originalLine ||
			(int(g.pending.OriginalLine) == originalLine && int(g.pending.OriginalColumn) > originalColumn))

	if isNewGeneratedPosition || isBacktrackingSourcePosition {
		g.commitPendingMapping()
		g.pending.GeneratedLine = int32(generatedLine)
		g.pending.GeneratedColumn = int32(generatedColumn)
		g.hasPending = true
	}

	g.pending.SourceIndex = int32(sourceIndex)
	g.pending.OriginalLine = int32(originalLine)
	g.pending.OriginalColumn = int32(originalColumn)
	g.pending.OriginalName = int32(nameIndex)
	g.hasPendingSource = true
	g.pendingCommitted = false
}

func (g *Generator) commitPendingMapping() {
	if !g.hasPending || !g.hasPendingSource || g.pendingCommitted {
		return
	}
	m := g.pending

	// Line delimiters
	prevLine := int32(0)
	if g.hasLast {
		prevLine = g.last.GeneratedLine
	}
	for line := prevLine; line < m.GeneratedLine; line++ {
		g.mappings = append(g.mappings, ';')
	}
	if g.hasLast && g.last.GeneratedLine < m.GeneratedLine {
		// The column is relative to the start of each line
		g.last.GeneratedColumn = 0
	} else if g.hasLast {
		g.mappings = append(g.mappings, ',')
	}

	g.mappings = encodeVLQ(g.mappings, int(m.GeneratedColumn-g.last.GeneratedColumn))
	g.mappings = encodeVLQ(g.mappings, int(m.SourceIndex-g.last.SourceIndex))
	g.mappings = encodeVLQ(g.mappings, int(m.OriginalLine-g.last.OriginalLine))
	g.mappings = encodeVLQ(g.mappings, int(m.OriginalColumn-g.last.OriginalColumn))
	if m.OriginalName >= 0 {
		g.mappings = encodeVLQ(g.mappings, int(m.OriginalName-g.lastNameEver))
		g.lastNameEver = m.OriginalName
	}

	name := g.lastNameEver
	g.last = m
	g.last.OriginalName = name
	g.hasLast = true
	g.entries = append(g.entries, m)
	g.pendingCommitted = true
}

// AppendSourceMap copies the mappings of an existing source map into this
// one. The existing map's output is assumed to start at (generatedLine,
// generatedColumn), and its sources are resolved relative to the directory
// of "sourceMapPath".
func (g *Generator) AppendSourceMap(generatedLine int, generatedColumn int, sm *SourceMap, sourceMapPath string) {
	sourcesDirectory := path.Dir(strings.ReplaceAll(sourceMapPath, "\\", "/"))
	if sm.SourceRoot != "" {
		sourcesDirectory = path.Join(sourcesDirectory, sm.SourceRoot)
	}

	sourceIndexMap := make(map[int32]int)
	nameIndexMap := make(map[int32]int)
	for _, m := range sm.Mappings {
		newSourceIndex, ok := sourceIndexMap[m.SourceIndex]
		if !ok {
			source := sm.Sources[m.SourceIndex]
			if !path.IsAbs(source) {
				source = path.Join(sourcesDirectory, source)
			}
			newSourceIndex = g.AddSource(source)
			sourceIndexMap[m.SourceIndex] = newSourceIndex
			if int(m.SourceIndex) < len(sm.SourcesContent) && sm.SourcesContent[m.SourceIndex] != nil {
				g.SetSourceContent(newSourceIndex, sm.SourcesContent[m.SourceIndex])
			}
		}

		newNameIndex := -1
		if m.OriginalName >= 0 && int(m.OriginalName) < len(sm.Names) {
			if index, ok := nameIndexMap[m.OriginalName]; ok {
				newNameIndex = index
			} else {
				newNameIndex = g.AddName(sm.Names[m.OriginalName])
				nameIndexMap[m.OriginalName] = newNameIndex
			}
		}

		// Only the first line of the appended output is shifted horizontally
		line := int(m.GeneratedLine) + generatedLine
		column := int(m.GeneratedColumn)
		if m.GeneratedLine == 0 {
			column += generatedColumn
		}
		g.AddMapping(line, column, newSourceIndex, int(m.OriginalLine), int(m.OriginalColumn), newNameIndex)
	}
}

// Mappings returns every mapping committed so far, in order.
func (g *Generator) Mappings() []Mapping {
	g.commitPendingMapping()
	return g.entries
}

func (g *Generator) SourceMap() *SourceMap {
	g.commitPendingMapping()
	return &SourceMap{
		File:           g.options.File,
		SourceRoot:     g.options.SourceRoot,
		Sources:        g.sources,
		SourcesContent: g.sourcesContent,
		Names:          g.names,
		Mappings:       g.entries,
	}
}

// JSON serializes the source map. The output is deterministic: the same
// sequence of calls always produces the same bytes.
func (g *Generator) JSON() []byte {
	g.commitPendingMapping()

	j := helpers.Joiner{}
	j.AddString("{\"version\":3,\"file\":")
	j.AddBytes(helpers.QuoteForJSON(g.options.File, false))
	j.AddString(",\"sourceRoot\":")
	j.AddBytes(helpers.QuoteForJSON(g.options.SourceRoot, false))

	j.AddString(",\"sources\":[")
	for i, source := range g.sources {
		if i > 0 {
			j.AddString(",")
		}
		j.AddBytes(helpers.QuoteForJSON(source, false))
	}
	j.AddString("]")

	j.AddString(",\"names\":[")
	for i, name := range g.names {
		if i > 0 {
			j.AddString(",")
		}
		j.AddBytes(helpers.QuoteForJSON(name, false))
	}
	j.AddString("]")

	j.AddString(",\"mappings\":\"")
	j.AddBytes(g.mappings)
	j.AddString("\"")

	if len(g.sourcesContent) > 0 {
		j.AddString(",\"sourcesContent\":[")
		for i := range g.sources {
			if i > 0 {
				j.AddString(",")
			}
			if i < len(g.sourcesContent) && g.sourcesContent[i] != nil {
				j.AddBytes(helpers.QuoteForJSON(*g.sourcesContent[i], false))
			} else {
				j.AddString("null")
			}
		}
		j.AddString("]")
	}

	j.AddString("}")
	return j.Done()
}

func (g *Generator) String() string {
	return string(g.JSON())
}
