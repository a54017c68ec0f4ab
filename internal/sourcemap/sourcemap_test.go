package sourcemap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVLQ(t *testing.T) {
	for _, value := range []int{0, 1, -1, 15, 16, -16, 123, 1000, -98765} {
		encoded := string(encodeVLQ(nil, value))
		decoded, n, ok := DecodeVLQ(encoded)
		require.True(t, ok)
		require.Equal(t, len(encoded), n)
		require.Equal(t, value, decoded)
	}

	_, _, ok := DecodeVLQ("")
	require.False(t, ok)
	_, _, ok = DecodeVLQ("g") // Continuation bit with nothing after it
	require.False(t, ok)
}

func TestGeneratorMappings(t *testing.T) {
	g := NewGenerator(Options{File: "out.js"})
	a := g.AddSource("a.ts")
	g.AddMapping(0, 0, a, 0, 0, -1)
	g.AddMapping(0, 4, a, 0, 4, -1)
	g.AddMapping(1, 2, a, 1, 0, -1)

	require.Equal(t, `{"version":3,"file":"out.js","sourceRoot":"","sources":["a.ts"],"names":[],"mappings":"AAAA,IAAI;EACJ"}`, g.String())
	require.Len(t, g.Mappings(), 3)
}

func TestGeneratorSamePosition(t *testing.T) {
	g := NewGenerator(Options{})
	a := g.AddSource("a.ts")

	// A later mapping at the same output position wins
	g.AddMapping(0, 0, a, 0, 5, -1)
	g.AddMapping(0, 0, a, 0, 7, -1)
	require.Equal(t, []Mapping{{SourceIndex: 0, OriginalColumn: 7, OriginalName: -1}}, g.Mappings())

	// Unless it goes backwards in the original source
	g = NewGenerator(Options{})
	a = g.AddSource("a.ts")
	g.AddMapping(0, 0, a, 0, 5, -1)
	g.AddMapping(0, 0, a, 0, 3, -1)
	require.Len(t, g.Mappings(), 2)
}

func TestGeneratorMonotonic(t *testing.T) {
	g := NewGenerator(Options{})
	a := g.AddSource("a.ts")
	g.AddMapping(2, 0, a, 0, 0, -1)
	require.Panics(t, func() { g.AddMapping(1, 0, a, 0, 0, -1) })
	require.Panics(t, func() { g.AddMapping(2, -1, a, 0, 0, -1) })
}

func TestGeneratorSourcesContentAndNames(t *testing.T) {
	g := NewGenerator(Options{File: "out.js", SourceRoot: "/src/"})
	a := g.AddSource("a.ts")
	b := g.AddSource("b.ts")
	require.Equal(t, a, g.AddSource("a.ts"))
	content := "let x = \"y\"\n"
	g.SetSourceContent(b, &content)
	g.AddMapping(0, 0, b, 0, 4, g.AddName("x"))

	require.Equal(t, `{"version":3,"file":"out.js","sourceRoot":"/src/","sources":["a.ts","b.ts"],"names":["x"],"mappings":"ACAIA","sourcesContent":[null,"let x = \"y\"\n"]}`, g.String())
}

func TestParseRoundTrip(t *testing.T) {
	g := NewGenerator(Options{File: "out.js"})
	a := g.AddSource("a.ts")
	b := g.AddSource("b.ts")
	g.AddMapping(0, 0, a, 0, 0, -1)
	g.AddMapping(0, 10, b, 3, 2, g.AddName("foo"))
	g.AddMapping(4, 1, a, 1, 1, -1)

	sm, err := Parse(g.String())
	require.NoError(t, err)
	require.Equal(t, "out.js", sm.File)
	require.Equal(t, []string{"a.ts", "b.ts"}, sm.Sources)
	require.Equal(t, []string{"foo"}, sm.Names)
	require.Equal(t, g.Mappings(), sm.Mappings)

	found := sm.Find(0, 12)
	require.NotNil(t, found)
	require.Equal(t, int32(3), found.OriginalLine)
	require.Nil(t, sm.Find(2, 0))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(`{`)
	require.Error(t, err)

	_, err = Parse(`{"version":2,"sources":[],"mappings":""}`)
	require.ErrorContains(t, err, "unsupported source map version 2")

	_, err = Parse(`{"version":3,"sources":["a.ts"],"mappings":"AEAA"}`)
	require.ErrorContains(t, err, "invalid source index value 2")

	_, err = Parse(`{"version":3,"sections":[]}`)
	require.ErrorContains(t, err, "sections")
}

func TestAppendSourceMap(t *testing.T) {
	prepend := &SourceMap{
		Sources: []string{"lib.ts"},
		Mappings: []Mapping{
			{GeneratedLine: 0, GeneratedColumn: 0, OriginalName: -1},
			{GeneratedLine: 1, GeneratedColumn: 3, OriginalLine: 1, OriginalName: -1},
		},
	}

	g := NewGenerator(Options{})
	g.AddSource("main.ts")
	g.AppendSourceMap(2, 5, prepend, "out/lib.js.map")

	require.Equal(t, []string{"main.ts", "out/lib.ts"}, g.Sources())
	require.Equal(t, []Mapping{
		{GeneratedLine: 2, GeneratedColumn: 5, SourceIndex: 1, OriginalName: -1},
		{GeneratedLine: 3, GeneratedColumn: 3, SourceIndex: 1, OriginalLine: 1, OriginalName: -1},
	}, g.Mappings())
}

func TestSourcesDirectory(t *testing.T) {
	g := NewGenerator(Options{SourcesDirectory: "/proj/out"})
	require.Equal(t, 0, g.AddSource("/proj/src/a.ts"))
	require.Equal(t, 1, g.AddSource("relative.ts"))
	require.Equal(t, []string{"../src/a.ts", "relative.ts"}, g.Sources())

	require.Equal(t, "a.ts", relativePath("/proj/src", "/proj/src/a.ts"))
	require.Equal(t, "../../x/y.ts", relativePath("/a/b/c", "/a/x/y.ts"))
}
