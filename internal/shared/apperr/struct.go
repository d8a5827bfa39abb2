package apperr

type Kind string

type AppError struct {
	Kind      Kind
	PublicMsg string            // message safe to show the user
	Fields    map[string]string // per-field form errors (optional)
	Err       error             // internal cause, for logs only
}
