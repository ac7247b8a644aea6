package header

func WithUserHeader(val string) Option {
	return func(p *Provider) {
		if val != "" {
			p.userHeader = val
		}
	}
}

func WithEmailHeader(val string) Option {
	return func(p *Provider) {
		if val != "" {
			p.emailHeader = val
		}
	}
}
