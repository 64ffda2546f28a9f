package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/fixspot/internal/adapters/inbound/cli"
	"github.com/abdidvp/fixspot/internal/domain"
)

const fixtureDir = "../../../../testdata/webapp"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func copyHero(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(fixtureDir, "src/components/Hero.tsx"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "Hero.tsx")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fixspot dev")
}

func TestLocateCommand_JSON(t *testing.T) {
	out, err := run(t, "locate", filepath.Join(fixtureDir, "src/components/Hero.tsx"),
		`<button class="btn-primary">Click Me</button>`, "--json")
	require.NoError(t, err)

	var loc domain.CodeLocation
	require.NoError(t, json.Unmarshal([]byte(out), &loc))
	assert.Equal(t, 10, loc.LineStart)
	assert.Equal(t, domain.LevelHigh, loc.Confidence)
	assert.False(t, loc.IsComment)
}

func TestLocateCommand_DefaultTUI(t *testing.T) {
	out, err := run(t, "locate", filepath.Join(fixtureDir, "src/components/Hero.tsx"),
		`<button class="btn-primary">Click Me</button>`)
	require.NoError(t, err)
	assert.Contains(t, out, "Hero.tsx:10-10")
	assert.Contains(t, out, "2 instances")
}

func TestLocateCommand_MarkupFromFile(t *testing.T) {
	markup := filepath.Join(t.TempDir(), "original.html")
	require.NoError(t, os.WriteFile(markup, []byte("<p class=\"card-text\">Welcome back</p>\n"), 0644))

	out, err := run(t, "locate", filepath.Join(fixtureDir, "src/pages/index.html"), "@"+markup, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"line_start": 5`)
}

func TestLocateCommand_MarkupFromStdin(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetIn(strings.NewReader(`<p class="card-text">Welcome back</p>`))
	cmd.SetArgs([]string{"locate", filepath.Join(fixtureDir, "src/pages/index.html"), "@-", "--json"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"line_start": 5`)
}

func TestLocateCommand_Selector(t *testing.T) {
	hero := filepath.Join(fixtureDir, "src/components/Hero.tsx")

	out, err := run(t, "locate", hero, "<section>Hi</section>", "--json")
	require.NoError(t, err)
	assert.Equal(t, "null", strings.TrimSpace(out))

	out, err = run(t, "locate", hero, "<section>Hi</section>", "--selector", "main > section.items-center.bg-white", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"line_start": 7`)
}

func TestLocateCommand_NoMatchJSONIsNull(t *testing.T) {
	out, err := run(t, "locate", filepath.Join(fixtureDir, "src/util.ts"), `<nav class="menu">Home</nav>`, "--json")
	require.NoError(t, err)
	assert.Equal(t, "null", strings.TrimSpace(out))
}

func TestLocateCommand_MissingFile(t *testing.T) {
	_, err := run(t, "locate", filepath.Join(t.TempDir(), "nope.tsx"), "<p>x</p>")
	assert.Error(t, err)
}

func TestRankCommand_JSON(t *testing.T) {
	out, err := run(t, "rank", `<a class="btn-secondary">Contact us</a>`, "--path", fixtureDir, "--json")
	require.NoError(t, err)

	var ranked []domain.RankedFile
	require.NoError(t, json.Unmarshal([]byte(out), &ranked))
	require.Len(t, ranked, 4)
	assert.Equal(t, "src/components/Footer.jsx", ranked[0].Path)
	assert.True(t, ranked[0].IsBestMatch)
}

func TestRankCommand_DefaultTUI(t *testing.T) {
	out, err := run(t, "rank", `<a class="btn-secondary">Contact us</a>`, "--path", fixtureDir, "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Footer.jsx")
	assert.NotContains(t, out, "util.ts")
}

func TestApplyCommand_PreviewDoesNotWrite(t *testing.T) {
	path := copyHero(t)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	out, err := run(t, "apply", path, `<h1 class="text-4xl font-bold tracking-tight">Ship faster</h1>`,
		"--original", `<h1 class="text-4xl font-bold">Ship faster</h1>`)
	require.NoError(t, err)
	assert.Contains(t, out, "Applied")
	assert.Contains(t, out, "class_pattern")
	assert.Contains(t, out, "tracking-tight")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestApplyCommand_WriteLines(t *testing.T) {
	path := copyHero(t)

	out, err := run(t, "apply", path, `<img src="/hero.png" alt="Hero">`, "--lines", "9", "--write", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"written": true`)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `      <img src="/hero.png" alt="Hero" />`)
}

func TestApplyCommand_Ambiguous(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Cards.jsx")
	source := "<div className=\"card shadow-lg rounded\">A</div>\n<div className=\"card shadow-lg rounded\">B</div>\n"
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))

	out, err := run(t, "apply", path, `<div class="card shadow-lg rounded-xl">New</div>`,
		"--original", `<div class="card shadow-lg rounded">Old</div>`, "--write")
	require.NoError(t, err)
	assert.Contains(t, out, "Not applied")
	assert.Contains(t, out, `className="card shadow-lg rounded-xl"`)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, source, string(data))
}

func TestApplyCommand_RequiresOriginalOrLines(t *testing.T) {
	_, err := run(t, "apply", copyHero(t), "<p>x</p>")
	assert.Error(t, err)
}

func TestApplyCommand_InvalidLines(t *testing.T) {
	for _, lines := range []string{"x", "5-2", "0", "3-y"} {
		_, err := run(t, "apply", copyHero(t), "<p>x</p>", "--lines", lines)
		assert.Error(t, err, lines)
	}
}

func TestApplyCommand_LinesOutOfRange(t *testing.T) {
	_, err := run(t, "apply", copyHero(t), "<p>x</p>", "--lines", "90-99")
	assert.Error(t, err)
}

func TestTransformCommand(t *testing.T) {
	out, err := run(t, "transform", `<input class="field" style="margin-top: 4px">`)
	require.NoError(t, err)
	assert.Equal(t, `<input className="field" style={{ marginTop: "4px" }} />`+"\n", out)
}

func TestPrefsCommands(t *testing.T) {
	prefs := filepath.Join(t.TempDir(), "prefs.json")

	out, err := run(t, "prefs", "get", "https://example.com/about", "--prefs", prefs)
	require.NoError(t, err)
	assert.Contains(t, out, "No repository remembered")

	out, err = run(t, "prefs", "set", "https://example.com/about", "acme/site", "--prefs", prefs)
	require.NoError(t, err)
	assert.Contains(t, out, "acme/site")

	out, err = run(t, "prefs", "get", "example.com", "--prefs", prefs, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"found": true`)
	assert.Contains(t, out, `"repo": "site"`)

	out, err = run(t, "prefs", "list", "--prefs", prefs)
	require.NoError(t, err)
	assert.Contains(t, out, "example.com")
}

func TestPrefsSet_InvalidRepository(t *testing.T) {
	prefs := filepath.Join(t.TempDir(), "prefs.json")
	_, err := run(t, "prefs", "set", "example.com", "no-slash", "--prefs", prefs)
	assert.Error(t, err)
}

func TestPrefsGet_MalformedFileIsNoPreference(t *testing.T) {
	prefs := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(prefs, []byte("{broken"), 0644))

	out, err := run(t, "prefs", "get", "example.com", "--prefs", prefs)
	require.NoError(t, err)
	assert.Contains(t, out, "No repository remembered")
}
