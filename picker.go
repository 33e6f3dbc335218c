package localize

import (
	"context"
	"html"
	"strings"
	"sync"

	"github.com/dmitrymomot/localize/pkg/htmldoc"
)

// PickerState tracks whether the dropdown list is visible.
type PickerState int

const (
	PickerClosed PickerState = iota
	PickerOpen
)

const (
	pickerID      = "localize-picker"
	pickerStyleID = "localize-picker-style"
)

// Picker is the built-in language selector widget. It renders a trigger
// showing the active language and a dropdown listing every registered
// language. Rendering is idempotent: each call replaces the previous
// widget, so repeated applications never duplicate markup.
//
// The picker only manages state and markup. Wiring DOM events to Toggle
// and Select is the host application's concern.
type Picker struct {
	ctrl *Controller

	mu    sync.Mutex
	state PickerState
}

func newPicker(c *Controller) *Picker {
	return &Picker{ctrl: c}
}

// State returns whether the dropdown is currently open.
func (p *Picker) State() PickerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Toggle flips the dropdown between open and closed and returns the new state.
func (p *Picker) Toggle() PickerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == PickerOpen {
		p.state = PickerClosed
	} else {
		p.state = PickerOpen
	}
	return p.state
}

// Close collapses the dropdown. Closing an already closed picker is a no-op.
func (p *Picker) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = PickerClosed
}

// Select switches the controller to the chosen language and collapses the
// dropdown. The dropdown closes even when the switch fails, matching how
// a user expects a menu to behave after clicking an entry.
func (p *Picker) Select(ctx context.Context, doc htmldoc.Document, code string) error {
	p.Close()
	return p.ctrl.SetLanguage(ctx, doc, code)
}

// Render injects the picker widget into the document body, replacing any
// previously rendered instance. The stylesheet is injected into the head
// once and reused across renders.
func (p *Picker) Render(doc htmldoc.Document) {
	if el, ok := doc.First("#" + pickerID); ok {
		el.Remove()
	}
	doc.Body().AppendHTML(p.markup())

	if _, ok := doc.First("#" + pickerStyleID); !ok {
		doc.Head().AppendHTML(`<style id="` + pickerStyleID + `">` + pickerCSS + `</style>`)
	}
}

func (p *Picker) markup() string {
	active := p.ctrl.current().lang

	var sb strings.Builder
	sb.WriteString(`<div id="` + pickerID + `" class="localize-picker`)
	if p.State() == PickerOpen {
		sb.WriteString(" open")
	}
	sb.WriteString(`">`)

	sb.WriteString(`<button type="button" class="localize-picker-trigger">`)
	sb.WriteString(active.Flag)
	sb.WriteString(` <span>`)
	sb.WriteString(html.EscapeString(active.Name))
	sb.WriteString(`</span></button>`)

	sb.WriteString(`<ul class="localize-picker-list">`)
	for _, lang := range p.ctrl.Registry().All() {
		sb.WriteString(`<li data-lang="`)
		sb.WriteString(html.EscapeString(lang.Code))
		sb.WriteString(`" class="localize-picker-option`)
		if lang.Code == active.Code {
			sb.WriteString(" active")
		}
		sb.WriteString(`">`)
		sb.WriteString(lang.Flag)
		sb.WriteString(` `)
		sb.WriteString(html.EscapeString(lang.Name))
		sb.WriteString(`</li>`)
	}
	sb.WriteString(`</ul></div>`)

	return sb.String()
}

const pickerCSS = `.localize-picker{position:relative;display:inline-block;font-size:14px}` +
	`.localize-picker-trigger{display:flex;align-items:center;gap:6px;padding:6px 10px;border:1px solid #d1d5db;border-radius:6px;background:#fff;cursor:pointer}` +
	`.localize-picker-list{display:none;position:absolute;right:0;margin:4px 0 0;padding:4px;list-style:none;border:1px solid #d1d5db;border-radius:6px;background:#fff;box-shadow:0 4px 12px rgba(0,0,0,.1);z-index:100}` +
	`.localize-picker.open .localize-picker-list{display:block}` +
	`.localize-picker-option{padding:6px 10px;border-radius:4px;cursor:pointer;white-space:nowrap}` +
	`.localize-picker-option:hover{background:#f3f4f6}` +
	`.localize-picker-option.active{font-weight:600}` +
	`.rtl .localize-picker-list{right:auto;left:0}`
