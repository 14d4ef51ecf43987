package domain

import "context"

// Surface owns the display state. Each call replaces the previous value of the
// region it targets.
type Surface interface {
	SetStatus(status Status)
	ShowDetail(view DetailView)
	ShowGrid(view GridView)
	SetBatchEnabled(enabled bool)
}

type SubmitHandler func(ctx context.Context, query string)

type ActivateHandler func(ctx context.Context)

// ActionSource delivers the two user actions the UI exposes.
type ActionSource interface {
	OnSubmit(handler SubmitHandler)
	OnActivateBatch(handler ActivateHandler)
}
