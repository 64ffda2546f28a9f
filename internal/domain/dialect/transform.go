// Package dialect rewrites plain HTML into JSX and substitutes fixed markup
// into source buffers.
package dialect

import (
	"regexp"
	"strings"
)

var (
	classAttrRe = regexp.MustCompile(`(\s)class=`)
	forAttrRe   = regexp.MustCompile(`(\s)for=`)
	styleAttrRe = regexp.MustCompile(`(\s)style=(?:"([^"]*)"|'([^']*)')`)
	voidTagRe   = regexp.MustCompile(`<(img|input|br|hr|meta|link)\b([^>]*)>`)
)

// ToJSX rewrites HTML markup into JSX: class becomes className, for becomes
// htmlFor, inline style strings become object literals with camelCase keys,
// and void elements are self-closed. Running it on its own output changes
// nothing.
func ToJSX(html string) string {
	out := classAttrRe.ReplaceAllString(html, "${1}className=")
	out = forAttrRe.ReplaceAllString(out, "${1}htmlFor=")
	out = styleAttrRe.ReplaceAllStringFunc(out, convertStyleAttr)
	out = voidTagRe.ReplaceAllStringFunc(out, selfClose)
	return out
}

func convertStyleAttr(attr string) string {
	m := styleAttrRe.FindStringSubmatch(attr)
	return m[1] + "style=" + StyleObject(m[2]+m[3])
}

// StyleObject converts "prop: val; prop-two: val2" into
// {{ prop: "val", propTwo: "val2" }}.
func StyleObject(css string) string {
	var entries []string
	for _, decl := range strings.Split(css, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" {
			continue
		}
		value = strings.ReplaceAll(value, `"`, `\"`)
		entries = append(entries, CamelCaseProperty(name)+`: "`+value+`"`)
	}
	if len(entries) == 0 {
		return "{{}}"
	}
	return "{{ " + strings.Join(entries, ", ") + " }}"
}

// CamelCaseProperty turns a hyphenated CSS property into its JSX key:
// background-color -> backgroundColor, -webkit-transition -> WebkitTransition,
// -ms-transform -> msTransform. Custom properties (--name) are returned quoted.
func CamelCaseProperty(name string) string {
	if strings.HasPrefix(name, "--") {
		return `"` + name + `"`
	}
	if rest, ok := strings.CutPrefix(name, "-ms-"); ok {
		name = "ms-" + rest
	}
	parts := strings.Split(name, "-")
	var b strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 {
			b.WriteString(strings.ToLower(p))
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]) + strings.ToLower(p[1:]))
	}
	return b.String()
}

func selfClose(tag string) string {
	m := voidTagRe.FindStringSubmatch(tag)
	attrs := strings.TrimRight(m[2], " \t\n")
	if strings.HasSuffix(attrs, "/") {
		return tag
	}
	return "<" + m[1] + attrs + " />"
}
