package credential

// Keys is the optional per-request credential bundle.
type Keys struct {
	Exa    string `json:"exa,omitempty"`
	Gemini string `json:"gemini,omitempty"`
	OpenAI string `json:"openai,omitempty"`
	Grok   string `json:"grok,omitempty"`
}

// Set holds the resolved credentials of a single request. An empty field means
// the credential is unresolved.
type Set struct {
	Exa    string
	Gemini string
	OpenAI string
	Grok   string
}

// Resolve picks the request value for every service independently and falls
// back to the process-wide value when the request omits it.
func Resolve(request *Keys, fallback Set) Set {
	if request == nil {
		request = new(Keys)
	}

	return Set{
		Exa:    resolve(request.Exa, fallback.Exa),
		Gemini: resolve(request.Gemini, fallback.Gemini),
		OpenAI: resolve(request.OpenAI, fallback.OpenAI),
		Grok:   resolve(request.Grok, fallback.Grok),
	}
}

func resolve(request, fallback string) string {
	if request != "" {
		return request
	}

	return fallback
}

// Token returns the credential for the given service id
// ("exa", "gemini", "openai" or "grok").
func (s Set) Token(service string) string {
	switch service {
	case "exa":
		return s.Exa
	case "gemini":
		return s.Gemini
	case "openai":
		return s.OpenAI
	case "grok":
		return s.Grok
	}

	return ""
}

// Presence reports which credentials are resolved without exposing them.
func (s Set) Presence() map[string]bool {
	return map[string]bool{
		"exa":    s.Exa != "",
		"gemini": s.Gemini != "",
		"openai": s.OpenAI != "",
		"grok":   s.Grok != "",
	}
}
