package dialog

// ButtonSpec describes one dialog button. It is immutable once built.
type ButtonSpec struct {
	label  string
	action Action
	icon   Icon
}

// ButtonOption customizes a ButtonSpec.
type ButtonOption func(*ButtonSpec)

// WithButtonIcon sets the glyph drawn in front of the button label.
func WithButtonIcon(icon Icon) ButtonOption {
	return func(b *ButtonSpec) {
		b.icon = icon
	}
}

// NewButton creates a button spec. A nil action is allowed; pressing the button then only closes the dialog.
func NewButton(label string, action Action, opts ...ButtonOption) ButtonSpec {
	b := ButtonSpec{
		label:  label,
		action: action,
	}

	for _, opt := range opts {
		opt(&b)
	}

	return b
}

func (b ButtonSpec) Label() string  { return b.label }
func (b ButtonSpec) Action() Action { return b.action }
func (b ButtonSpec) Icon() Icon     { return b.icon }

// DisplayLabel is the label as drawn on the slot, prefixed by the icon if any.
func (b ButtonSpec) DisplayLabel() string {
	if b.icon == "" {
		return b.label
	}

	return string(b.icon) + " " + b.label
}

// Content describes what one show-request displays.
type Content struct {
	title   string
	body    string
	icon    Icon
	buttons []ButtonSpec
}

// ContentOption customizes a Content.
type ContentOption func(*Content)

// WithTitle sets the panel header.
func WithTitle(title string) ContentOption {
	return func(c *Content) {
		c.title = title
	}
}

// WithIcon sets the panel icon.
func WithIcon(icon Icon) ContentOption {
	return func(c *Content) {
		c.icon = icon
	}
}

// WithButton appends a button. Buttons keep the order of the options.
func WithButton(label string, action Action, opts ...ButtonOption) ContentOption {
	return func(c *Content) {
		c.buttons = append(c.buttons, NewButton(label, action, opts...))
	}
}

// WithButtons appends already built button specs.
func WithButtons(buttons ...ButtonSpec) ContentOption {
	return func(c *Content) {
		c.buttons = append(c.buttons, buttons...)
	}
}

// NewContent creates the content of a dialog showing body.
func NewContent(body string, opts ...ContentOption) Content {
	c := Content{body: body}

	for _, opt := range opts {
		opt(&c)
	}

	return c
}

func (c Content) Title() string { return c.title }
func (c Content) Body() string  { return c.body }
func (c Content) Icon() Icon    { return c.icon }

// Buttons returns a copy of the button specs in display order.
func (c Content) Buttons() []ButtonSpec {
	out := make([]ButtonSpec, len(c.buttons))
	copy(out, c.buttons)
	return out
}

// Labels returns the button labels in display order.
func (c Content) Labels() []string {
	labels := make([]string, 0, len(c.buttons))
	for _, b := range c.buttons {
		labels = append(labels, b.label)
	}

	return labels
}
