package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/utility.tools/internal/platform/i18n/catalog"
	"github.com/louisbranch/utility.tools/internal/services/web/routepath"
)

const (
	// ReverseComplementResultID is the element swapped by partial submits.
	ReverseComplementResultID = "revcomp-result"

	lengthKey = "revcomp.input.length"
)

// ReverseComplementView is the tool page model.
type ReverseComplementView struct {
	Sequence string
	Length   int
	Result   string
	Error    string
}

// ReverseComplementFragment renders the tool page body: the base pairing
// explanation, the input form and the result panel.
func ReverseComplementFragment(view ReverseComplementView, page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := page.Loc
		h := newHTMLWriter(w)
		h.raw(`<section id="revcomp-root" class="tool-page"><a class="back-link"`)
		h.href(routepath.Root)
		h.raw(">&larr; ")
		h.text(T(loc, "layout.back_home"))
		h.raw("</a><h1>")
		h.text(T(loc, "revcomp.heading"))
		h.raw("</h1>")

		h.raw(`<section class="about"><h2>`)
		h.text(T(loc, "revcomp.about.heading"))
		h.raw("</h2><p>")
		h.text(T(loc, "revcomp.about.intro"))
		h.raw("</p><ul><li><strong>A &harr; T</strong> ")
		h.text(T(loc, "revcomp.about.pair_at"))
		h.raw("</li><li><strong>G &harr; C</strong> ")
		h.text(T(loc, "revcomp.about.pair_gc"))
		h.raw("</li></ul><p>")
		h.text(T(loc, "revcomp.about.detail"))
		h.raw("</p></section>")

		h.raw(`<form id="revcomp-form" class="revcomp-form" method="post"`)
		h.attr("action", routepath.ReverseComplement)
		h.attr("data-result-target", ReverseComplementResultID)
		h.raw(`><label for="sequence">`)
		h.text(T(loc, "revcomp.input.heading"))
		h.raw(`</label><textarea id="sequence" name="sequence" rows="6" spellcheck="false" autocomplete="off" data-length-target="sequence-length"`)
		h.attr("placeholder", T(loc, "revcomp.input.placeholder"))
		h.raw(">")
		h.text(view.Sequence)
		h.raw(`</textarea><p id="sequence-length" class="sequence-length"`)
		h.attr("data-template", lengthTemplate(page.Lang))
		h.raw(">")
		h.text(T(loc, lengthKey, view.Length))
		h.raw(`</p><div class="actions"><button type="submit">`)
		h.text(T(loc, "revcomp.submit"))
		h.raw(`</button><button type="button" class="secondary" data-action="clear">`)
		h.text(T(loc, "revcomp.clear"))
		h.raw("</button></div></form>")

		h.render(ctx, ReverseComplementResult(view, loc))
		h.raw("</section>")
		return h.err
	})
}

// ReverseComplementResult renders the result panel on its own so HTMX-style
// submits can swap it in place.
func ReverseComplementResult(view ReverseComplementView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<div class="revcomp-result" aria-live="polite"`)
		h.attr("id", ReverseComplementResultID)
		h.raw(">")
		if view.Error != "" {
			h.raw(`<p class="error" role="alert">`)
			h.text(view.Error)
			h.raw("</p>")
		}
		if view.Result != "" {
			h.raw("<h2>")
			h.text(T(loc, "revcomp.result.heading"))
			h.raw(`</h2><pre id="revcomp-output" class="sequence-output">`)
			h.text(view.Result)
			h.raw(`</pre><button type="button" data-action="copy" data-copy-target="revcomp-output"`)
			h.attr("data-copy-success", T(loc, "revcomp.copy.success"))
			h.attr("data-copy-failure", T(loc, "revcomp.copy.failure"))
			h.raw(">")
			h.text(T(loc, "revcomp.copy"))
			h.raw(`</button><p class="copy-status" data-copy-status hidden></p>`)
		}
		h.raw("</div>")
		return h.err
	})
}

// lengthTemplate returns the unformatted length label so the page script can
// update the counter while typing.
func lengthTemplate(lang string) string {
	if value, ok := catalog.Default().Message(strings.TrimSpace(lang), lengthKey); ok {
		return value
	}
	return "%d bp"
}
