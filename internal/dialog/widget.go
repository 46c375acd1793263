package dialog

// Icon is a terminal image reference, usually a single glyph. The empty Icon means no icon.
type Icon string

// Action is the callback bound to a dialog button.
type Action func()

// SlotWidget is a reusable button placeholder rendered by the UI layer.
type SlotWidget interface {
	SetActive(active bool)
	SetLabel(label string)
	// BindClickHandler replaces the current click handler. A nil handler unbinds it.
	BindClickHandler(handler func())
}

// PanelWidget is the modal panel rendered by the UI layer.
type PanelWidget interface {
	SetVisible(visible bool)
	SetTitle(title string)
	SetBodyText(text string)
	// SetIcon shows icon, or hides the icon when it is empty.
	SetIcon(icon Icon)
}
