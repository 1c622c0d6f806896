package form

// FormOptions holds configuration for form behavior and rendering
type FormOptions struct {
	// Renderer renders every field of the form
	Renderer FieldRenderer
	// Rules validate the form as a whole, after the field rules
	Rules []FormRule
}

type FormOptionFunc func(opts *FormOptions)

func NewFormOptions(funcs ...FormOptionFunc) *FormOptions {
	opts := &FormOptions{
		Renderer: &DefaultFieldRenderer{},
		Rules:    make([]FormRule, 0),
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithRules(rules ...FormRule) FormOptionFunc {
	return func(opts *FormOptions) {
		opts.Rules = append(opts.Rules, rules...)
	}
}
