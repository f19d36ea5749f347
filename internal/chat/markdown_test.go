package chat

import (
	"testing"

	"github.com/shoenig/test/must"
)

func TestRenderMarkdown(t *testing.T) {
	out := renderMarkdown("# Title\n\nSome **bold** text and a list:\n\n- one\n- two\n", 40)

	must.StrContains(t, out, "Title")
	must.StrContains(t, out, "bold")
	must.StrContains(t, out, "one")
	must.StrContains(t, out, "two")
	must.StrNotContains(t, out, "**")
}
