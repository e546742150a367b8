package ruxios

// RequestConfig describes a single request. It is built per call and not
// retained by the client.
type RequestConfig struct {
	// URL is appended to Config.BaseURL without normalization.
	URL string

	// Method is resolved with ParseMethod. Empty means GET.
	Method string

	// Headers are added after the User-Agent header. Nil means none.
	// Values are added, not set, so a header that is already present
	// is sent twice rather than replaced.
	Headers map[string]string
}

// NewRequestConfig returns a GET RequestConfig for url with no headers.
func NewRequestConfig(url string) RequestConfig {
	return RequestConfig{
		URL:    url,
		Method: string(MethodGet),
	}
}

// method returns the resolved method, defaulting to GET when unset.
func (rc RequestConfig) method() Method {
	if rc.Method == "" {
		return MethodGet
	}
	return ParseMethod(rc.Method)
}
