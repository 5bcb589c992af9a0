package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoc(t *testing.T, body string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}

func TestTitle(t *testing.T) {
	e := New()
	cases := []struct {
		name string
		html string
		want string
	}{
		{"first h1", `<h1>  Great for review games </h1><h1>second</h1>`, "Great for review games"},
		{"no h1", `<h2>My Take</h2><p>text</p>`, Unknown},
		{"empty h1", `<h1>   </h1>`, Unknown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, e.Title(newDoc(t, c.html)))
		})
	}
}

func TestSubject(t *testing.T) {
	e := New()
	cases := []struct {
		name string
		html string
		want string
	}{
		{
			"anchor wins over page title",
			`<title>Review of Other | Common Sense Education</title>
			<a href="/about">About</a>
			<a href="https://www.commonsense.org/education/app/kahoot"> Kahoot! </a>`,
			"Kahoot!",
		},
		{
			"website path",
			`<a href="/education/website/khan-academy">Khan Academy</a>`,
			"Khan Academy",
		},
		{
			"page title",
			`<title>Teacher Review of Foo | Site</title><a href="/education/articles/x">x</a>`,
			"Foo",
		},
		{
			"empty anchor falls through to page title",
			`<title>Teacher Review of Quizlet | Site</title>
			<a href="/education/app/quizlet"><img src="logo.png"></a>`,
			"Quizlet",
		},
		{
			"page title without separator",
			`<title>Review of Bar</title>`,
			"Bar",
		},
		{
			"nothing",
			`<title>Community reviews</title><p>hello</p>`,
			Unknown,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, e.Subject(newDoc(t, c.html)))
		})
	}
}

func TestDate(t *testing.T) {
	e := New()
	long := strings.Repeat("word ", 30)
	cases := []struct {
		name string
		html string
		want string
	}{
		{
			"datetime attribute has priority",
			`<span>January 10, 2024</span><time datetime="2023-05-01T10:00:00Z">May 1</time>`,
			"2023-05-01T10:00:00Z",
		},
		{
			"time text without attribute",
			`<time> March 3, 2022 </time>`,
			"March 3, 2022",
		},
		{
			"absolute date in short text",
			`<div><span>Posted January 10, 2024</span></div>`,
			"January 10, 2024",
		},
		{
			"submitted phrasing",
			`<span>Submitted 3 months ago</span>`,
			"Submitted 3 months ago",
		},
		{
			"relative phrasing",
			`<p>2 weeks ago</p>`,
			"2 weeks ago",
		},
		{
			"long text is skipped",
			`<p>` + long + `written May 5, 2020 ` + long + `</p><span>June 1, 2021</span>`,
			"June 1, 2021",
		},
		{
			"no date",
			`<p>nothing here</p>`,
			Unknown,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, e.Date(newDoc(t, c.html)))
		})
	}
}

func TestSectionsStopAtMarkerHeading(t *testing.T) {
	doc := newDoc(t, `
		<h2>My Take</h2><p>Good tool.</p>
		<h2>More community reviews</h2><p>X said...</p>
		<h3>How I Use It</h3><p>Should never be read.</p>`)

	sections := New().Sections(doc)
	assert.Equal(t, map[string]string{"My Take": "Good tool."}, sections.Map())
}

func TestSectionsMarkerInContent(t *testing.T) {
	doc := newDoc(t, `
		<h3>My Take</h3>
		<p>First part.</p>
		<div>Nice one. More community reviews below</div>
		<p>After the marker.</p>
		<h3>How I Use It</h3>
		<p>In <b>class</b> every week.</p>`)

	sections := New().Sections(doc)
	require.Len(t, sections, 2)
	assert.Equal(t, Section{Label: "My Take", Content: "First part."}, sections[0])
	assert.Equal(t, Section{Label: "How I Use It", Content: "In class every week."}, sections[1])
}

func TestSectionsCollectsSiblings(t *testing.T) {
	doc := newDoc(t, `
		<h4>Empty</h4>
		<h4>My Take</h4>
		<p>Line one.</p>
		<ul><li>ignored list</li></ul>
		<div>Line two.</div>
		<h5>next</h5>
		<p>not included</p>
		<h2>Whitespace only</h2><p>   </p>`)

	sections := New().Sections(doc)
	require.Len(t, sections, 1)
	assert.Equal(t, "Line one.\nLine two.", sections.Get("My Take"))
	assert.Equal(t, "", sections.Get("Empty"))
}

func TestSectionsDuplicateLabel(t *testing.T) {
	doc := newDoc(t, `
		<h3>A</h3><p>first</p>
		<h3>B</h3><p>b</p>
		<h3>A</h3><p>second</p>`)

	sections := New().Sections(doc)
	require.Len(t, sections, 2)
	assert.Equal(t, Section{Label: "A", Content: "second"}, sections[0])
	assert.Equal(t, "B", sections[1].Label)
}

func TestAssembleBody(t *testing.T) {
	e := New()

	t.Run("sections", func(t *testing.T) {
		doc := newDoc(t, `<h3>My Take</h3><p>Good tool.</p><h3>How I Use It</h3><p>In class.</p>`)
		body := e.AssembleBody(doc, e.Sections(doc))
		assert.Equal(t, "### My Take\nGood tool.\n\n### How I Use It\nIn class.", body)
	})

	t.Run("paragraph fallback", func(t *testing.T) {
		doc := newDoc(t, `
			<p>short</p>
			<p>This paragraph is definitely long enough.</p>
			<p>Exactly twenty chars</p>
			<p>Second paragraph that is long enough.</p>
			<p>More community reviews</p>
			<p>A long paragraph written by somebody else.</p>`)
		body := e.AssembleBody(doc, e.Sections(doc))
		assert.Equal(t, "This paragraph is definitely long enough.\n\nSecond paragraph that is long enough.", body)
	})

	t.Run("nothing", func(t *testing.T) {
		doc := newDoc(t, `<span>hi</span>`)
		assert.Equal(t, "", e.AssembleBody(doc, nil))
	})
}

func TestPostClean(t *testing.T) {
	e := New()
	cases := []struct {
		in   string
		want string
	}{
		{"Good tool.\n\nMore community reviews\nOther", "Good tool."},
		{"Nothing to cut", "Nothing to cut"},
		{"More community reviews at start", ""},
		{"", ""},
	}
	for _, c := range cases {
		once := e.PostClean(c.in)
		assert.Equal(t, c.want, once)
		assert.Equal(t, once, e.PostClean(once))
	}
}

func TestCustomMarkers(t *testing.T) {
	e := New(WithMarkers("", "Other reviews", "Más reseñas"))
	doc := newDoc(t, `
		<h3>My Take</h3><p>Good.</p>
		<h3>Más reseñas</h3><p>ignored</p>`)

	assert.Equal(t, map[string]string{"My Take": "Good."}, e.Sections(doc).Map())
	assert.Equal(t, "a", e.PostClean("a Other reviews b Más reseñas c"))
	// 默认标记被替换
	assert.Equal(t, "x More community reviews y", e.PostClean("x More community reviews y"))
}

func TestExtract(t *testing.T) {
	doc := newDoc(t, `<html><head><title>Review of Kahoot! | Common Sense Education</title></head>
		<body>
		<h1>Fun but noisy</h1>
		<time datetime="2024-01-10">January 10, 2024</time>
		<h3>My Take</h3><p>Students love it.</p>
		<h3>How I Use It</h3><p>Exit tickets.</p>
		<h2>More community reviews</h2>
		<h3>My Take</h3><p>Someone else.</p>
		</body></html>`)

	f := New().Extract(doc)
	assert.Equal(t, "Fun but noisy", f.Title)
	assert.Equal(t, "Kahoot!", f.Subject)
	assert.Equal(t, "2024-01-10", f.Date)
	assert.Equal(t, "### My Take\nStudents love it.\n\n### How I Use It\nExit tickets.", f.Body)
	assert.Equal(t, "Students love it.", f.Sections.Get("My Take"))
}
