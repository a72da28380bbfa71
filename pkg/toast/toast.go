package toast

import "sync"

const ErrorTitle = "Error"
const Destructive = "destructive"

// Toast is a user-visible notification rendered by the page layout.
type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant,omitempty"`
}

func (t Toast) IsDestructive() bool {
	return t.Variant == Destructive
}

func Error(description string) Toast {
	return Toast{
		Title:       ErrorTitle,
		Description: description,
		Variant:     Destructive,
	}
}

type Sink interface {
	Notify(Toast)
}

// Tray collects the toasts raised while a single page is being prepared.
type Tray struct {
	mu     sync.Mutex
	toasts []Toast
}

func NewTray() *Tray {
	return &Tray{}
}

func (t *Tray) Notify(item Toast) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.toasts = append(t.toasts, item)
}

func (t *Tray) All() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Toast, len(t.toasts))
	copy(out, t.toasts)

	return out
}

func (t *Tray) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.toasts)
}
