package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdidvp/fixspot/internal/domain/extract"
)

func TestTextContent(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{"simple button", `<button class="btn">Click Me</button>`, "Click Me"},
		{"trims whitespace", `<a href="#">  Read more  </a>`, "Read more"},
		{"single char", `<span>x</span>`, ""},
		{"single char after trim", `<span> x </span>`, ""},
		{"ellipsis only", `<span>...</span>`, ""},
		{"punctuation only", `<span>-- !</span>`, ""},
		{"whitespace run first", "<div>\n  <span>Hello</span></div>", ""},
		{"no text", `<img src="a.png" />`, ""},
		{"too long", "<p>aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa</p>", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extract.TextContent(tt.markup))
		})
	}
}

func TestTextContent_NeverShort(t *testing.T) {
	inputs := []string{
		"<b>ab</b>", "<b> a</b>", "<b>. .</b>", "<i>  </i>", "<i>ok</i>", "<<>>", "><", ">a<",
	}
	for _, in := range inputs {
		got := extract.TextContent(in)
		if got == "" {
			continue
		}
		assert.GreaterOrEqual(t, len([]rune(got)), 2, "input %q", in)
		assert.NotRegexp(t, `^[.\s]+$`, got)
	}
}

func TestClassTokens(t *testing.T) {
	got := extract.ClassTokens(".card .btn .btn-primary:hover .hover\\:bg-blue .focus .group-hover .nav-link")
	assert.Equal(t, []string{"card", "btn-primary", "nav-link"}, got)
}

func TestClassTokens_CapsAtFive(t *testing.T) {
	got := extract.ClassTokens(".alpha .bravo .charlie .delta .echo .foxtrot .golf")
	assert.Len(t, got, 5)
	assert.Equal(t, "alpha", got[0])
	assert.Equal(t, "echo", got[4])
}

func TestClassTokens_Malformed(t *testing.T) {
	assert.Empty(t, extract.ClassTokens(""))
	assert.Empty(t, extract.ClassTokens("div > span"))
	assert.Empty(t, extract.ClassTokens("..."))
}

func TestAllClasses(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   []string
	}{
		{"html double quotes", `<div class="card shadow">x</div>`, []string{"card", "shadow"}},
		{"html single quotes", `<div class='card shadow'>x</div>`, []string{"card", "shadow"}},
		{"jsx className", `<div className="card shadow">x</div>`, []string{"card", "shadow"}},
		{"jsx braces", `<div className={"card shadow"}>x</div>`, []string{"card", "shadow"}},
		{"jsx template", "<div className={`card ${active} shadow`}>x</div>", []string{"card", "shadow"}},
		{"duplicates collapse", `<a class="btn btn">x</a>`, []string{"btn"}},
		{"union across elements", `<div class="a b"><span class="b c">x</span></div>`, []string{"a", "b", "c"}},
		{"no classes", `<div id="x">y</div>`, nil},
		{"unterminated", `<div class="broken`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extract.AllClasses(tt.markup))
		})
	}
}

func TestAllClasses_Idempotent(t *testing.T) {
	markup := `<div class="flex items-center flex"><p class="text-sm items-center">Hi</p></div>`
	first := extract.AllClasses(markup)
	second := extract.AllClasses(markup)
	assert.Equal(t, first, second)
	assert.ElementsMatch(t, []string{"flex", "items-center", "text-sm"}, first)
}

func TestSignificantClasses(t *testing.T) {
	markup := `<div class="p-4 mt-2 w-10 flex text-lg bg-white md:grid rounded shadow-lg btn items">x</div>`
	got := extract.SignificantClasses(markup)
	assert.Equal(t, []string{"flex", "text-lg", "bg-white", "md:grid", "rounded", "shadow-lg", "items"}, got)
}

func TestIsSignificant(t *testing.T) {
	assert.True(t, extract.IsSignificant("text-2xl"))
	assert.True(t, extract.IsSignificant("lg:px-8"))
	assert.True(t, extract.IsSignificant("border-gray-200"))
	assert.False(t, extract.IsSignificant("px-4"))
	assert.False(t, extract.IsSignificant("h-12"))
	assert.False(t, extract.IsSignificant("btn"))
	assert.True(t, extract.IsSignificant("navbar"))
}

func TestTagName(t *testing.T) {
	assert.Equal(t, "button", extract.TagName(`<button class="x">Go</button>`))
	assert.Equal(t, "Link", extract.TagName(`  <Link href="/">Home</Link>`))
	assert.Equal(t, "", extract.TagName("plain text"))
	assert.Equal(t, "div", extract.LeadingTagName(`   <div className="a">`))
	assert.Equal(t, "", extract.LeadingTagName(`return <div>`))
}

func TestContainsClass(t *testing.T) {
	line := `<div className="flex flex-col text-lg">`
	assert.True(t, extract.ContainsClass(line, "flex"))
	assert.True(t, extract.ContainsClass(line, "flex-col"))
	assert.True(t, extract.ContainsClass(line, "text-lg"))
	assert.False(t, extract.ContainsClass(line, "col"))
	assert.False(t, extract.ContainsClass(line, "text"))
	assert.False(t, extract.ContainsClass(line, ""))
}

func TestIntersect(t *testing.T) {
	assert.Equal(t, []string{"a", "c"}, extract.Intersect([]string{"a", "b", "c"}, []string{"c", "a"}))
	assert.Empty(t, extract.Intersect(nil, []string{"a"}))
}
